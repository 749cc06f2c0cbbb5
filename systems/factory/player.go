package factory

import (
	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/leveldata"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/systems"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn leveldata.Spawn) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	t := components.TransformData{Position: spawn.Position}
	t.SetYaw(spawn.Yaw)
	components.Transform.SetValue(player, t)

	obj := motion.NewFootprint(spawn.Position, cfg.Player.Radius*2, tags.ResolvPlayer)
	obj.Data = player.Entity()
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Spawn:    spawn.Position,
		SpawnYaw: spawn.Yaw,
	})
	components.Health.SetValue(player, systems.NewHealth(cfg.Player.Health, cfg.Player.Invincible))

	// The weapon zone only deals damage while the attack button is held
	zone := motion.NewFootprint(spawn.Position, cfg.Player.WeaponSize, tags.ResolvDamage)
	zone.Data = player.Entity()
	addToSpace(ecs, zone)
	components.DamageSource.SetValue(player, components.DamageSourceData{
		Amount:    cfg.Player.WeaponDamage,
		Interval:  cfg.Player.WeaponInterval,
		TargetTag: tags.ResolvEnemy,
		Zone:      zone,
		Reach:     cfg.Player.WeaponReach,
		Size:      cfg.Player.WeaponSize,
		HitSound:  cfg.SoundEnemyHit,
	})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 0, B: 0})

	return player
}
