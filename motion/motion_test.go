package motion

import (
	"math"
	"testing"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/nav"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func newActor(w donburi.World, pos mgl64.Vec3, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(append([]donburi.IComponentType{components.Transform}, cs...)...))
	components.Transform.SetValue(e, components.TransformData{Position: pos, Rotation: mgl64.QuatIdent()})
	return e
}

func TestTransformMotionIgnoresHeight(t *testing.T) {
	w := donburi.NewWorld()
	e := newActor(w, mgl64.Vec3{0, 0, 0})

	m := NewTransformMotion()
	m.Move(e, mgl64.Vec3{3, 10, 4}, 5, 0.1)

	pos := components.Transform.Get(e).Position
	if math.Abs(pos.X()-0.3) > 1e-9 || math.Abs(pos.Z()-0.4) > 1e-9 || pos.Y() != 0 {
		t.Errorf("position = %v, want (0.3, 0, 0.4)", pos)
	}
}

func TestTransformMotionDoesNotOvershoot(t *testing.T) {
	w := donburi.NewWorld()
	e := newActor(w, mgl64.Vec3{0, 0, 0})

	NewTransformMotion().Move(e, mgl64.Vec3{0.1, 0, 0}, 5, 1)
	if pos := components.Transform.Get(e).Position; math.Abs(pos.X()-0.1) > 1e-9 {
		t.Errorf("position = %v, want x=0.1", pos)
	}
}

func TestBodyMotionSetsPlanarVelocity(t *testing.T) {
	w := donburi.NewWorld()
	e := newActor(w, mgl64.Vec3{0, 0, 0}, components.Body)
	components.Body.Get(e).Velocity = mgl64.Vec3{0, -2, 0}

	m := NewBodyMotion()
	m.Move(e, mgl64.Vec3{0, 5, 10}, 2, cfg.Dt)
	v := components.Body.Get(e).Velocity
	if v != (mgl64.Vec3{0, -2, 2}) {
		t.Errorf("velocity = %v, want (0, -2, 2)", v)
	}

	m.Halt(e)
	if v := components.Body.Get(e).Velocity; v != (mgl64.Vec3{0, -2, 0}) {
		t.Errorf("velocity after halt = %v, want (0, -2, 0)", v)
	}
}

func TestBodyMotionWithoutBody(t *testing.T) {
	w := donburi.NewWorld()
	e := newActor(w, mgl64.Vec3{0, 0, 0})

	m := NewBodyMotion()
	m.Move(e, mgl64.Vec3{1, 0, 0}, 2, cfg.Dt)
	if pos := components.Transform.Get(e).Position; pos != (mgl64.Vec3{}) {
		t.Errorf("actor without a body moved to %v", pos)
	}
}

func TestNavMotionReachesTarget(t *testing.T) {
	w := donburi.NewWorld()
	e := newActor(w, mgl64.Vec3{0.25, 0, 0.25})

	grid := nav.NewGrid(10, 10, 0.5)
	m := NewNavMotion(grid)
	target := mgl64.Vec3{8, 0, 8}
	for i := 0; i < 60*10; i++ {
		m.Move(e, target, 3, cfg.Dt)
	}

	pos := components.Transform.Get(e).Position
	if d := components.PlanarDistance(pos, target); d > cfg.Enemy.StoppingDistance+0.1 {
		t.Errorf("agent stopped %.2fm from target", d)
	}
}

func TestTranslateSlidesAlongWall(t *testing.T) {
	w := donburi.NewWorld()
	space := resolv.NewSpace(1000, 1000, cfg.CollisionCell, cfg.CollisionCell)
	space.Add(NewRect(2, 0, 1, 10, tags.ResolvSolid))

	e := newActor(w, mgl64.Vec3{1.5, 0, 1}, components.Object)
	obj := NewFootprint(mgl64.Vec3{1.5, 0, 1}, 0.6)
	space.Add(obj)
	components.Object.SetValue(e, components.ObjectData{Object: obj})

	applied := Translate(e, mgl64.Vec3{0.5, 0, 0.5})
	if applied.X() != 0 {
		t.Errorf("moved %v into the wall", applied.X())
	}
	if applied.Z() != 0.5 {
		t.Errorf("slide along the wall = %v, want 0.5", applied.Z())
	}
}
