package systems

import (
	"math"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStarfish drives ceiling enemies: hang for a while, drop while
// flipping over, then chase the player once they land.
func UpdateStarfish(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Starfish.Each(ecs.World, func(e *donburi.Entry) {
		stepStarfish(ecs, e, dt)
	})
}

func stepStarfish(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	sf := components.Starfish.Get(e)
	switch sf.Phase {
	case cfg.StarfishWaiting:
		sf.Timer -= dt
		if sf.Timer > 0 {
			return
		}
		if e.HasComponent(components.Body) {
			body := components.Body.Get(e)
			body.Kinematic = false
			body.UseGravity = true
			body.Grounded = false
		}
		sf.Flip = gween.New(0, math.Pi, float32(cfg.Spawn.StarfishFlip), ease.Linear)
		sf.Phase = cfg.StarfishFalling

	case cfg.StarfishFalling:
		if sf.Flip != nil {
			angle, done := sf.Flip.Update(float32(dt))
			setFlip(e, sf.StartYaw, float64(angle))
			if done {
				sf.Flip = nil
			}
		}
		if !e.HasComponent(components.Body) || !components.Body.Get(e).Landed {
			return
		}
		sf.Flip = nil
		setFlip(e, sf.StartYaw, math.Pi)
		sf.Phase = cfg.StarfishFollowing
		PlaySFX(ecs, cfg.SoundLanding)
		if e.HasComponent(components.Follow) {
			follow := components.Follow.Get(e)
			follow.Disabled = false
			follow.Engaged = true
		}
		if e.HasComponent(components.DamageSource) {
			components.DamageSource.Get(e).Enabled = true
		}
	}
}

// setFlip orients e at yaw, rolled over by angle radians about its own
// right axis.
func setFlip(e *donburi.Entry, yaw, angle float64) {
	t := components.Transform.Get(e)
	t.Rotation = components.YawRotation(yaw).Mul(mgl64.QuatRotate(angle, mgl64.Vec3{1, 0, 0})).Normalize()
}
