package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DoorData is a hinged door that swings open while the player stands in its
// zone. The entity's Object is the interaction zone; Panel blocks movement
// while the door is mostly closed.
type DoorData struct {
	Name      string
	Hinge     mgl64.Vec3
	ClosedYaw float64
	Width     float64
	OpenAngle float64 // radians
	Speed     float64 // full swings per second
	AutoClose bool
	Locked    bool

	Angle  float64 // current swing in radians, 0 is closed
	Target float64 // angle the running swing ends at
	Open   bool
	Inside bool
	Swing  *gween.Tween
	Panel  *resolv.Object
	// Space is where Panel lives while the door is closed.
	Space *resolv.Space
}

// PanelEnd returns the free end of the door leaf at its current angle.
func (d *DoorData) PanelEnd() mgl64.Vec3 {
	yaw := d.ClosedYaw + d.Angle
	return d.Hinge.Add(mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}.Mul(d.Width))
}

var Door = donburi.NewComponentType[DoorData]()
