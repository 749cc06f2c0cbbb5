package systems

import "testing"

func TestClampView(t *testing.T) {
	tests := []struct {
		v, half, size, want float64
	}{
		{5, 10, 8, 4},
		{1, 5, 40, 5},
		{39, 5, 40, 35},
		{20, 5, 40, 20},
		{3, 5, 10, 5},
	}
	for _, tt := range tests {
		if got := clampView(tt.v, tt.half, tt.size); got != tt.want {
			t.Errorf("clampView(%v, %v, %v) = %v, want %v", tt.v, tt.half, tt.size, got, tt.want)
		}
	}
}
