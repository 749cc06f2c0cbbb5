package components

import (
	cfg "github.com/automoto/dreadhall/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// MotionBackend moves an actor toward a point. One backend is chosen per
// actor when it is built and never changes afterwards.
type MotionBackend interface {
	Kind() cfg.MotionKind
	// Move advances e toward target at speed meters per second for dt seconds.
	Move(e *donburi.Entry, target mgl64.Vec3, speed, dt float64)
	// Halt clears any residual translation.
	Halt(e *donburi.Entry)
}

// FollowData steers an actor toward a tracked target.
type FollowData struct {
	Target donburi.Entity
	// Engaged gates translation. Facing runs regardless.
	Engaged bool
	// Disabled is set on death or when the target disappears; a disabled
	// follower does nothing.
	Disabled bool

	Speed           float64
	TurnRate        float64 // slerp factor per second
	DetectionRadius float64
	YawOffset       float64 // radians added to the facing yaw
	Backend         MotionBackend

	Moving bool
}

var Follow = donburi.NewComponentType[FollowData]()
