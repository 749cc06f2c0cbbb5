package systems

import (
	"log"
	"math/rand"

	"github.com/automoto/dreadhall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnEnemyFunc creates one enemy of enemyType at p. Ceiling spawns hang
// above p and drop before engaging.
type SpawnEnemyFunc func(ecs *ecs.ECS, enemyType string, p components.SpawnPoint, ceiling bool) *donburi.Entry

// NewSpawnerSystem returns the system that releases queued spawns through
// spawn, one every spawner Delay.
func NewSpawnerSystem(spawn SpawnEnemyFunc) ecs.System {
	return func(ecs *ecs.ECS) {
		dt := deltaTime(ecs.World)

		type pending struct {
			sp *components.SpawnerData
			p  components.SpawnPoint
		}
		var due []pending
		components.Spawner.Each(ecs.World, func(e *donburi.Entry) {
			sp := components.Spawner.Get(e)
			if !sp.Active || sp.Done {
				return
			}
			sp.Timer -= dt
			if sp.Timer > 0 {
				return
			}
			due = append(due, pending{sp: sp, p: sp.Queue[0]})
			sp.Queue = sp.Queue[1:]
			sp.Timer += sp.Delay
			if len(sp.Queue) == 0 {
				sp.Done = true
			}
		})

		for _, d := range due {
			spawn(ecs, d.sp.EnemyType, d.p, d.sp.Ceiling)
		}
	}
}

// ActivateSpawner starts the spawner called name. Points are drawn without
// repeats, so at most len(Points) enemies appear. Activating a spawner
// twice has no effect.
func ActivateSpawner(ecs *ecs.ECS, name string) bool {
	found := false
	components.Spawner.Each(ecs.World, func(e *donburi.Entry) {
		sp := components.Spawner.Get(e)
		if sp.Name != name {
			return
		}
		found = true
		if sp.Active {
			return
		}
		sp.Active = true
		sp.Timer = 0
		sp.Queue = pickSpawnPoints(sp)
		if len(sp.Queue) == 0 {
			log.Printf("[spawner] %s has no spawn points", name)
			sp.Done = true
		}
	})
	if !found {
		log.Printf("[spawner] no spawner named %q", name)
	}
	return found
}

func pickSpawnPoints(sp *components.SpawnerData) []components.SpawnPoint {
	if sp.Rand == nil {
		sp.Rand = rand.New(rand.NewSource(1))
	}
	points := append([]components.SpawnPoint(nil), sp.Points...)
	sp.Rand.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
	return points[:max(0, min(sp.Count, len(points)))]
}
