package systems

import (
	"math"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies integrates every non-kinematic body: gravity, ground
// friction, then a collision-aware move. Bodies rest on the floor plane.
func UpdateBodies(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		stepBody(e, dt)
	})
}

func stepBody(e *donburi.Entry, dt float64) {
	body := components.Body.Get(e)
	body.Landed = false
	if body.Kinematic || !e.HasComponent(components.Transform) {
		return
	}

	v := body.Velocity
	if body.UseGravity && !body.Grounded {
		v[1] = math.Max(v.Y()-cfg.Physics.Gravity*dt, -cfg.Physics.MaxFallSpeed)
	}
	if body.Grounded && body.Friction > 0 {
		damp := math.Max(0, 1-body.Friction*dt)
		v[0] *= damp
		v[2] *= damp
	}

	want := v.Mul(dt)
	applied := motion.Translate(e, want)
	if applied.X() != want.X() {
		v[0] = 0
	}
	if applied.Z() != want.Z() {
		v[2] = 0
	}

	t := components.Transform.Get(e)
	if t.Position.Y() <= cfg.Physics.FloorY {
		t.Position[1] = cfg.Physics.FloorY
		if !body.Grounded {
			body.Landed = true
		}
		body.Grounded = true
		if v.Y() < 0 {
			v[1] = 0
		}
	} else if body.UseGravity {
		body.Grounded = false
	}

	body.Velocity = v
}

// ApplyImpulse adds an instantaneous velocity change to e's body.
func ApplyImpulse(e *donburi.Entry, impulse mgl64.Vec3) {
	if !e.HasComponent(components.Body) {
		return
	}
	body := components.Body.Get(e)
	body.Velocity = body.Velocity.Add(impulse)
	if impulse.Y() > 0 {
		body.Grounded = false
	}
}
