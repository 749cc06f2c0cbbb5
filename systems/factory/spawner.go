package factory

import (
	"math/rand"

	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpawner(ecs *ecs.ECS, s leveldata.Spawner, rnd *rand.Rand) *donburi.Entry {
	spawner := archetypes.Spawner.Spawn(ecs)

	count := s.Count
	if count <= 0 {
		count = cfg.Spawn.Count
	}
	delay := s.Delay
	if delay <= 0 {
		delay = cfg.Spawn.Delay
		if s.Ceiling {
			delay = cfg.Spawn.StarfishDelay
		}
	}

	points := make([]components.SpawnPoint, 0, len(s.Points))
	for _, p := range s.Points {
		points = append(points, components.SpawnPoint{Position: p.Position, Yaw: p.Yaw})
	}

	components.Spawner.SetValue(spawner, components.SpawnerData{
		Name:      s.Name,
		EnemyType: s.EnemyType,
		Points:    points,
		Count:     count,
		Delay:     delay,
		Ceiling:   s.Ceiling,
		Rand:      rnd,
	})
	return spawner
}
