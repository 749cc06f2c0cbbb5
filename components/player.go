package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// Move is the desired planar movement in the player's local frame.
	Move      mgl64.Vec3
	Attacking bool
	Spawn     mgl64.Vec3
	SpawnYaw  float64
}

var Player = donburi.NewComponentType[PlayerData]()
