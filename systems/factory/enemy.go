package factory

import (
	"log"
	"math/rand"

	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/leveldata"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/systems"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the named type facing yaw. The follow
// target is the player; the motion backend is picked from the type and
// never changes.
func CreateEnemy(ecs *ecs.ECS, typeName string, pos mgl64.Vec3, yaw float64) *donburi.Entry {
	enemyType, exists := cfg.EnemyType(typeName)
	if !exists {
		log.Printf("[enemy] unknown enemy type %q, using %s", typeName, enemyType.Name)
		typeName = enemyType.Name
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	t := components.TransformData{Position: pos}
	t.SetYaw(yaw)
	components.Transform.SetValue(enemy, t)

	obj := motion.NewFootprint(pos, enemyType.Radius*2, tags.ResolvEnemy)
	obj.Data = enemy.Entity()
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Enemy.SetValue(enemy, components.EnemyData{Type: typeName})
	components.Health.SetValue(enemy, systems.NewHealth(enemyType.Health, enemyType.StartInvincible))

	target := donburi.Null
	if player, ok := tags.Player.First(ecs.World); ok {
		target = player.Entity()
	}
	components.Follow.SetValue(enemy, components.FollowData{
		Target:          target,
		Engaged:         enemyType.StartEngaged,
		Speed:           enemyType.MoveSpeed,
		TurnRate:        enemyType.TurnRate,
		DetectionRadius: enemyType.DetectionRadius,
		YawOffset:       mgl64.DegToRad(enemyType.VisualYawOffset),
		Backend:         newBackend(ecs, enemyType.Motion),
	})
	if enemyType.Motion == cfg.MotionBody {
		enemy.AddComponent(components.Body)
		components.Body.SetValue(enemy, components.BodyData{
			UseGravity: true,
			Grounded:   pos.Y() <= cfg.Physics.FloorY,
		})
	}

	// Melee zone around the body; it follows the enemy every tick
	zone := motion.NewFootprint(pos, 2*(enemyType.Radius+enemyType.MeleeReach), tags.ResolvDamage)
	zone.Data = enemy.Entity()
	addToSpace(ecs, zone)
	components.DamageSource.SetValue(enemy, components.DamageSourceData{
		Amount:    enemyType.MeleeDamage,
		Interval:  enemyType.MeleeInterval,
		Enabled:   true,
		TargetTag: tags.ResolvPlayer,
		Zone:      zone,
		Size:      2 * (enemyType.Radius + enemyType.MeleeReach),
		HitSound:  cfg.SoundPlayerHit,
	})

	parts := make([]components.Part, 0, len(enemyType.Parts))
	for _, p := range enemyType.Parts {
		parts = append(parts, components.Part{
			Name:    p.Name,
			Offset:  p.OffsetVec(),
			Size:    p.Size,
			Color:   p.PartColor(),
			HasBody: p.HasBody,
		})
	}
	components.Visual.SetValue(enemy, components.VisualData{
		Parts:   parts,
		Visible: true,
		Color:   enemyType.Color,
		Radius:  enemyType.Radius,
		Height:  enemyType.Height,
	})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(enemy, components.FlashData{R: 1, G: 1, B: 1})

	return enemy
}

// newBackend builds the motion backend for kind. Nav falls back to direct
// movement when the level has no navigation grid.
func newBackend(ecs *ecs.ECS, kind cfg.MotionKind) components.MotionBackend {
	switch kind {
	case cfg.MotionBody:
		return motion.NewBodyMotion()
	case cfg.MotionNav:
		if levelEntry, ok := components.Level.First(ecs.World); ok {
			if grid := components.Level.Get(levelEntry).Nav; grid != nil {
				return motion.NewNavMotion(grid)
			}
		}
		log.Printf("[enemy] no navigation grid, nav enemies move directly")
		return motion.NewNavMotion(nil)
	}
	return motion.NewTransformMotion()
}

// CreateBoss spawns the boss. It stays invincible and idle until its
// activation sequence is triggered.
func CreateBoss(ecs *ecs.ECS, actor leveldata.Actor, destination *leveldata.Spawn, rnd *rand.Rand) *donburi.Entry {
	boss := CreateEnemy(ecs, actor.Type, actor.Position, actor.Yaw)
	components.Enemy.Get(boss).Boss = true
	boss.AddComponent(tags.Boss)

	flicker := systems.NewFlicker(rnd)
	if destination != nil {
		flicker.Destination = destination.Position
		flicker.DestinationYaw = destination.Yaw
		flicker.HasDestination = true
	} else {
		log.Printf("[boss] level has no boss destination")
	}
	boss.AddComponent(components.Flicker)
	components.Flicker.SetValue(boss, flicker)
	return boss
}

// CreateCeilingEnemy spawns an enemy hanging StarfishHeight above p. It
// drops after a delay and only engages once it lands.
func CreateCeilingEnemy(ecs *ecs.ECS, typeName string, p components.SpawnPoint) *donburi.Entry {
	pos := p.Position
	if pos.Y() <= cfg.Physics.FloorY {
		pos[1] = cfg.Physics.FloorY + cfg.Spawn.StarfishHeight
	}
	yaw := p.Yaw + mgl64.DegToRad(cfg.Spawn.StarfishYawTurn)
	enemy := CreateEnemy(ecs, typeName, pos, yaw)

	if !enemy.HasComponent(components.Body) {
		enemy.AddComponent(components.Body)
	}
	components.Body.SetValue(enemy, components.BodyData{Kinematic: true})

	follow := components.Follow.Get(enemy)
	follow.Engaged = false
	follow.Disabled = true
	components.DamageSource.Get(enemy).Enabled = false

	enemy.AddComponent(components.Starfish)
	components.Starfish.SetValue(enemy, components.StarfishData{
		Phase:    cfg.StarfishWaiting,
		Timer:    cfg.Spawn.StarfishFall,
		StartYaw: yaw,
	})
	return enemy
}

// SpawnEnemy places a spawner's enemy, hanging ceiling spawns overhead.
func SpawnEnemy(ecs *ecs.ECS, typeName string, p components.SpawnPoint, ceiling bool) *donburi.Entry {
	if ceiling {
		return CreateCeilingEnemy(ecs, typeName, p)
	}
	return CreateEnemy(ecs, typeName, p.Position, p.Yaw)
}
