package factory

import (
	"math"

	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the collision space for a floor of width by depth
// meters.
func CreateSpace(ecs *ecs.ECS, width, depth float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(math.Ceil(width*cfg.CollisionScale)),
		int(math.Ceil(depth*cfg.CollisionScale)),
		cfg.CollisionCell,
		cfg.CollisionCell,
	)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace puts obj into the world's collision space, if there is one.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) *resolv.Space {
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)
	space.Add(obj)
	return space
}
