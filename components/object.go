package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's footprint in the collision space. Object.X maps
// to world X and Object.Y maps to world Z, in config.CollisionScale units
// per meter.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
