package factory

import (
	"log"
	"math/rand"

	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/leveldata"
	"github.com/automoto/dreadhall/nav"
	"github.com/automoto/dreadhall/systems"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds every entity described by level and returns the
// player. The navigation grid is baked from the walls only, so doors never
// block paths.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, rnd *rand.Rand) *donburi.Entry {
	levelEntry := archetypes.Level.Spawn(ecs)
	levelData := &components.LevelData{Level: level}
	components.Level.Set(levelEntry, levelData)

	spaceEntry := CreateSpace(ecs, level.Width, level.Depth)
	for _, w := range level.Walls {
		CreateWall(ecs, w)
	}
	levelData.Nav = nav.FromSpace(
		components.Space.Get(spaceEntry),
		level.Width, level.Depth, cfg.NavCellSize, cfg.CollisionScale, tags.ResolvSolid,
	)

	for _, d := range level.Doors {
		CreateDoor(ecs, d)
	}
	for _, t := range level.Triggers {
		CreateTrigger(ecs, t)
	}
	for _, s := range level.Spawners {
		CreateSpawner(ecs, s, rand.New(rand.NewSource(rnd.Int63())))
	}

	// The player goes first so enemies can lock onto it
	player := CreatePlayer(ecs, level.PlayerSpawn)
	for _, a := range level.Enemies {
		CreateEnemy(ecs, a.Type, a.Position, a.Yaw)
	}
	if level.Boss != nil {
		CreateBoss(ecs, *level.Boss, level.BossDestination, rand.New(rand.NewSource(rnd.Int63())))
	}
	CreateCamera(ecs)

	systems.GetOrCreateClock(ecs.World)
	systems.GetOrCreateFinish(ecs)
	systems.SyncHUD(ecs.World)
	systems.SnapCamera(ecs)

	log.Printf("[level] %s: %d walls, %d doors, %d triggers, %d spawners, %d enemies",
		level.Name, len(level.Walls), len(level.Doors), len(level.Triggers), len(level.Spawners), len(level.Enemies))
	return player
}
