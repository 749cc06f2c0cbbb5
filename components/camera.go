package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the center of the top-down view in world XZ meters
type CameraData struct {
	Position math.Vec2
	// Shake is the screen shake offset in pixels for this frame.
	Shake math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()
