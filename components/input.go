package components

import (
	cfg "github.com/automoto/dreadhall/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod
	// MouseDX is the horizontal cursor travel since the last frame, in pixels.
	MouseDX    float64
	lastMouseX int
	mouseSeen  bool
}

// TrackMouse records the cursor position and updates MouseDX.
func (in *InputData) TrackMouse(x int) {
	if in.mouseSeen {
		in.MouseDX = float64(x - in.lastMouseX)
	}
	in.lastMouseX = x
	in.mouseSeen = true
}

var Input = donburi.NewComponentType[InputData]()

// ActionState is the state of one action this frame
type ActionState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}
