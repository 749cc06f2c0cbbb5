package motion

import (
	"log"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// BodyMotion steers by setting the horizontal velocity of the actor's body.
// The body system integrates it.
type BodyMotion struct {
	warned bool
}

func NewBodyMotion() *BodyMotion {
	return &BodyMotion{}
}

func (m *BodyMotion) Kind() cfg.MotionKind { return cfg.MotionBody }

func (m *BodyMotion) Move(e *donburi.Entry, target mgl64.Vec3, speed, dt float64) {
	body := m.body(e)
	if body == nil {
		return
	}
	dir := PlanarDirection(components.Transform.Get(e).Position, target)
	v := dir.Mul(speed)
	body.Velocity = mgl64.Vec3{v.X(), body.Velocity.Y(), v.Z()}
}

func (m *BodyMotion) Halt(e *donburi.Entry) {
	body := m.body(e)
	if body == nil {
		return
	}
	body.Velocity = mgl64.Vec3{0, body.Velocity.Y(), 0}
}

func (m *BodyMotion) body(e *donburi.Entry) *components.BodyData {
	if !e.HasComponent(components.Body) {
		if !m.warned {
			log.Printf("[motion] entity %v has body motion but no body; not moving", e.Entity())
			m.warned = true
		}
		return nil
	}
	return components.Body.Get(e)
}
