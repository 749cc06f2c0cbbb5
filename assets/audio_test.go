package assets

import (
	"math/rand"
	"testing"

	cfg "github.com/automoto/dreadhall/config"
)

func TestSynthesizeLength(t *testing.T) {
	ts := cfg.ToneSpec{Frequency: 440, Duration: 0.5, Decay: 2, Volume: 1}
	pcm := Synthesize(ts, 44100, rand.New(rand.NewSource(1)))
	if want := 22050 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
}

func TestSynthesizeZeroDuration(t *testing.T) {
	if pcm := Synthesize(cfg.ToneSpec{Frequency: 440}, 44100, rand.New(rand.NewSource(1))); pcm != nil {
		t.Errorf("expected no samples, got %d bytes", len(pcm))
	}
}

func TestSynthesizeChannelsMatch(t *testing.T) {
	ts := cfg.Sound.Tones[cfg.SoundTeleport]
	pcm := Synthesize(ts, 22050, rand.New(rand.NewSource(7)))
	for i := 0; i+3 < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("left and right differ at frame %d", i/4)
		}
	}
}
