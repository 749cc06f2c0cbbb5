package systems

import (
	"log"
	"math"

	"github.com/automoto/dreadhall/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFollow turns every follower toward its target and, when engaged and
// within detection range, moves it there through its motion backend.
// Facing always runs before the movement decision.
func UpdateFollow(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Follow.Each(ecs.World, func(e *donburi.Entry) {
		stepFollow(ecs.World, e, dt)
	})
}

func stepFollow(w donburi.World, e *donburi.Entry, dt float64) {
	f := components.Follow.Get(e)
	if f.Disabled {
		return
	}
	if e.HasComponent(components.Death) {
		return
	}
	if !w.Valid(f.Target) {
		log.Printf("[follow] %v lost its target; disabling", e.Entity())
		f.Disabled = true
		f.Moving = false
		if f.Backend != nil {
			f.Backend.Halt(e)
		}
		return
	}
	target := w.Entry(f.Target)
	if !target.HasComponent(components.Transform) {
		log.Printf("[follow] target of %v has no transform; disabling", e.Entity())
		f.Disabled = true
		return
	}

	t := components.Transform.Get(e)
	targetPos := components.Transform.Get(target).Position

	FaceToward(t, targetPos, f.TurnRate*dt, f.YawOffset)

	if !f.Engaged || f.Backend == nil || target.HasComponent(components.Death) {
		haltFollower(e, f)
		return
	}

	if components.PlanarDistance(t.Position, targetPos) > f.DetectionRadius {
		haltFollower(e, f)
		return
	}
	f.Backend.Move(e, targetPos, f.Speed, dt)
	f.Moving = true
}

func haltFollower(e *donburi.Entry, f *components.FollowData) {
	if f.Backend != nil {
		f.Backend.Halt(e)
	}
	f.Moving = false
}

// FaceToward rotates t toward target on the horizontal plane. step is the
// slerp fraction for this tick, clamped to 1; yawOffset is added to the
// facing yaw for models authored facing another axis.
func FaceToward(t *components.TransformData, target mgl64.Vec3, step, yawOffset float64) {
	dir := components.Planar(target.Sub(t.Position))
	if dir.Len() < 1e-9 {
		return
	}
	yaw := math.Atan2(dir.X(), dir.Z()) + yawOffset
	want := components.YawRotation(yaw)
	if t.Rotation.Dot(want) < 0 {
		want = want.Scale(-1)
	}
	t.Rotation = mgl64.QuatSlerp(t.Rotation, want, math.Min(1, step)).Normalize()
}
