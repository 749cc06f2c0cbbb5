package motion

import (
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// TransformMotion integrates the actor's position directly.
type TransformMotion struct{}

func NewTransformMotion() *TransformMotion {
	return &TransformMotion{}
}

func (m *TransformMotion) Kind() cfg.MotionKind { return cfg.MotionTransform }

func (m *TransformMotion) Move(e *donburi.Entry, target mgl64.Vec3, speed, dt float64) {
	pos := components.Transform.Get(e).Position
	dir := PlanarDirection(pos, target)
	step := speed * dt
	if dist := components.PlanarDistance(pos, target); step > dist {
		step = dist
	}
	Translate(e, dir.Mul(step))
}

// Halt is a no-op: a transform-driven actor has no residual motion.
func (m *TransformMotion) Halt(e *donburi.Entry) {}
