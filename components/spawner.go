package components

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type SpawnPoint struct {
	Position mgl64.Vec3
	Yaw      float64
}

// SpawnerData spawns Count enemies of EnemyType, one every Delay seconds,
// at points picked from Points without repeats.
type SpawnerData struct {
	Name      string
	EnemyType string
	Points    []SpawnPoint
	Count     int
	Delay     float64
	// Ceiling spawns drop from above and engage on landing.
	Ceiling bool

	Active bool
	Done   bool
	Timer  float64
	Queue  []SpawnPoint
	Rand   *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
