package factory

import (
	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
