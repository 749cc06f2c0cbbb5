package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionTurnLeft
	ActionTurnRight
	ActionAttack
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMoveBack: {
				Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionStrafeLeft: {
				Keys: []ebiten.Key{ebiten.KeyA},
			},
			ActionStrafeRight: {
				Keys: []ebiten.Key{ebiten.KeyD},
			},
			ActionTurnLeft: {
				Keys:                   []ebiten.Key{ebiten.KeyQ, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionTurnRight: {
				Keys:                   []ebiten.Key{ebiten.KeyE, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionAttack: {
				Keys:                   []ebiten.Key{ebiten.KeySpace},
				MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
			},
			ActionPause: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionMenuUp: {
				Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionMenuDown: {
				Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionMenuSelect: {
				Keys:                   []ebiten.Key{ebiten.KeyEnter},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
		},
	}
}
