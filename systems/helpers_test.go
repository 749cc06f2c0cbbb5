package systems

import (
	"math"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	w := donburi.NewWorld()
	RegisterEventHandlers(w)
	GetOrCreateClock(w)
	return ecs.NewECS(w)
}

func newTestSpace(e *ecs.ECS) *resolv.Space {
	entry := e.World.Entry(e.World.Create(components.Space))
	space := resolv.NewSpace(4000, 4000, cfg.CollisionCell, cfg.CollisionCell)
	components.Space.Set(entry, space)
	return space
}

// runFor ticks the given systems for the given number of seconds, the way
// the world scene does: clock first, events last.
func runFor(e *ecs.ECS, seconds float64, systems ...ecs.System) {
	ticks := int(math.Round(seconds / cfg.Dt))
	for i := 0; i < ticks; i++ {
		UpdateClock(e)
		for _, s := range systems {
			s(e)
		}
		ProcessEvents(e)
	}
}

func newTestActor(e *ecs.ECS, pos mgl64.Vec3, cs ...donburi.IComponentType) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(append([]donburi.IComponentType{components.Transform}, cs...)...))
	components.Transform.SetValue(entry, components.TransformData{Position: pos, Rotation: mgl64.QuatIdent()})
	return entry
}

func newTestEnemy(e *ecs.ECS, typeName string, pos mgl64.Vec3, hp int, invincible bool) *donburi.Entry {
	entry := newTestActor(e, pos, tags.Enemy, components.Enemy, components.Health, components.Visual)
	components.Enemy.SetValue(entry, components.EnemyData{Type: typeName})
	components.Health.SetValue(entry, NewHealth(hp, invincible))
	components.Visual.SetValue(entry, components.VisualData{Visible: true, Radius: 0.3})
	return entry
}

func newTestPlayer(e *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	entry := newTestActor(e, pos, tags.Player, components.Player, components.Health)
	components.Health.SetValue(entry, NewHealth(100, false))
	return entry
}

// addFootprint gives entry a square collider of side size in space.
func addFootprint(space *resolv.Space, entry *donburi.Entry, size float64, tag string) *resolv.Object {
	obj := motion.NewFootprint(components.Transform.Get(entry).Position, size, tag)
	obj.Data = entry.Entity()
	space.Add(obj)
	if !entry.HasComponent(components.Object) {
		entry.AddComponent(components.Object)
	}
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

// moveTo teleports entry and its collider.
func moveTo(entry *donburi.Entry, pos mgl64.Vec3) {
	components.Transform.Get(entry).Position = pos
	motion.SyncObject(entry)
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func approxVec(a, b mgl64.Vec3) bool {
	return a.ApproxEqualThreshold(b, 1e-6)
}
