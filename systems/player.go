package systems

import (
	"log"
	"math"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayer(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	dt := deltaTime(ecs.World)
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		updateSinglePlayer(playerEntry, input, dt)
	})
}

func updateSinglePlayer(playerEntry *donburi.Entry, input *components.InputData, dt float64) {
	// The death sequence owns the player from here on
	if playerEntry.HasComponent(components.Death) {
		return
	}

	player := components.Player.Get(playerEntry)
	t := components.Transform.Get(playerEntry)

	// Turning right lowers yaw
	turn := 0.0
	if GetAction(input, cfg.ActionTurnLeft).Pressed {
		turn += cfg.Player.TurnSpeed * dt
	}
	if GetAction(input, cfg.ActionTurnRight).Pressed {
		turn -= cfg.Player.TurnSpeed * dt
	}
	turn -= input.MouseDX * cfg.Player.MouseTurn
	if turn != 0 {
		t.SetYaw(t.Yaw() + turn)
	}

	player.Move = mgl64.Vec3{}
	if GetAction(input, cfg.ActionMoveForward).Pressed {
		player.Move[2]++
	}
	if GetAction(input, cfg.ActionMoveBack).Pressed {
		player.Move[2]--
	}
	if GetAction(input, cfg.ActionStrafeRight).Pressed {
		player.Move[0]++
	}
	if GetAction(input, cfg.ActionStrafeLeft).Pressed {
		player.Move[0]--
	}
	if player.Move.Len() > 0 {
		motion.Translate(playerEntry, playerStep(t.Yaw(), player.Move, cfg.Player.MoveSpeed*dt))
	}

	player.Attacking = GetAction(input, cfg.ActionAttack).Pressed
	if playerEntry.HasComponent(components.DamageSource) {
		components.DamageSource.Get(playerEntry).Enabled = player.Attacking
	}
}

// playerStep converts a local move (x strafe right, z forward) into a world
// displacement of length dist for a player facing yaw.
func playerStep(yaw float64, local mgl64.Vec3, dist float64) mgl64.Vec3 {
	forward := mgl64.Vec3{math.Sin(yaw), 0, math.Cos(yaw)}
	right := mgl64.Vec3{math.Sin(yaw - math.Pi/2), 0, math.Cos(yaw - math.Pi/2)}
	d := forward.Mul(local.Z()).Add(right.Mul(local.X()))
	if d.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return d.Normalize().Mul(dist)
}

// NewPlayerDeathSystem returns the system that plays the player's death:
// stop the weapon, fade to the death color through fader, hold, then flag
// the level for a restart.
func NewPlayerDeathSystem(fader *Fader) ecs.System {
	return func(ecs *ecs.ECS) {
		dt := deltaTime(ecs.World)
		components.Player.Each(ecs.World, func(e *donburi.Entry) {
			if !e.HasComponent(components.Death) {
				return
			}
			death := components.Death.Get(e)
			switch {
			case !death.Handled:
				death.Handled = true
				DisableDamageSource(e)
				PlaySFX(ecs, cfg.SoundDeath)
				FadeOutMusic(ecs)
				log.Printf("[player] died, restarting level")
				ent, w := e.Entity(), ecs.World
				fader.FadeOut(cfg.Fade.DeathColor, cfg.Player.DeathFadeDuration, func() {
					if !w.Valid(ent) {
						return
					}
					d := components.Death.Get(w.Entry(ent))
					d.Holding = true
					d.Timer = cfg.Player.DeathHoldDuration
				})
			case death.Holding && !death.Restart:
				death.Timer -= dt
				if death.Timer <= 0 {
					death.Restart = true
				}
			}
		})
	}
}

// PlayerNeedsRestart reports whether the player's death sequence is over.
func PlayerNeedsRestart(ecs *ecs.ECS) bool {
	restart := false
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) && components.Death.Get(e).Restart {
			restart = true
		}
	})
	return restart
}
