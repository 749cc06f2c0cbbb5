package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BodyData is a simulated rigid body. Kinematic bodies are moved by their
// owner and ignore velocity and gravity.
type BodyData struct {
	Velocity   mgl64.Vec3
	Kinematic  bool
	UseGravity bool
	Grounded   bool
	// Landed is set for one tick when the body touches the floor after falling.
	Landed bool
	// Friction damps horizontal velocity while grounded; 0 keeps velocity.
	Friction float64
}

var Body = donburi.NewComponentType[BodyData]()
