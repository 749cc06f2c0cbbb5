package systems

import (
	"github.com/automoto/dreadhall/components"
	"github.com/automoto/dreadhall/motion"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects snaps every moving collision object back onto its
// transform so teleports and direct writes are seen by the space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Transform.Iter(ecs.World) {
		motion.SyncObject(e)
	}
}
