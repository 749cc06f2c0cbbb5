package archetypes

import (
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Object,
		components.Health,
		components.DamageSource,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Object,
		components.Health,
		components.Follow,
		components.DamageSource,
		components.Visual,
		components.Flash,
		components.HealthBar,
	)
	Piece = newArchetype(
		tags.Piece,
		components.Piece,
		components.Transform,
		components.Body,
		components.Object,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
		components.Object,
	)
	Trigger = newArchetype(
		tags.Trigger,
		components.Trigger,
		components.Object,
	)
	Spawner = newArchetype(
		components.Spawner,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	HUD = newArchetype(
		components.HUD,
	)
	Finish = newArchetype(
		components.Finish,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
