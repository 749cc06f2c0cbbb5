package components

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformData is an actor's pose in world space. Y is up; gameplay
// distances are measured on the XZ plane.
type TransformData struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// Yaw returns the rotation about the up axis, in radians. A yaw of 0 faces +Z.
func (t *TransformData) Yaw() float64 {
	f := t.Forward()
	return math.Atan2(f.X(), f.Z())
}

// Forward returns the unit vector the actor is facing.
func (t *TransformData) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
}

// SetYaw replaces the rotation with a pure rotation about the up axis.
func (t *TransformData) SetYaw(yaw float64) {
	t.Rotation = YawRotation(yaw)
}

// YawRotation builds a rotation about the up axis.
func YawRotation(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, mgl64.Vec3{0, 1, 0})
}

// Planar drops the vertical component of v.
func Planar(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// PlanarDistance is the distance between a and b ignoring height.
func PlanarDistance(a, b mgl64.Vec3) float64 {
	return Planar(b.Sub(a)).Len()
}

var Transform = donburi.NewComponentType[TransformData]()
