package factory

import (
	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	"github.com/automoto/dreadhall/leveldata"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	obj := motion.NewRect(r.X, r.Z, r.W, r.D, tags.ResolvSolid)
	obj.Data = wall.Entity()
	components.Object.SetValue(wall, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return wall
}
