package systems

import (
	"log"
	"math/rand"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewFlicker returns an idle activation sequence using the boss tuning.
func NewFlicker(rnd *rand.Rand) components.FlickerData {
	return components.FlickerData{
		Phase:         cfg.FlickerIdle,
		Duration:      cfg.Boss.FlickerDuration,
		MinInterval:   cfg.Boss.MinInterval,
		MaxInterval:   cfg.Boss.MaxInterval,
		TeleportDelay: cfg.Boss.TeleportDelay,
		Rand:          rnd,
	}
}

// TriggerFlicker starts e's activation sequence. It is accepted only while
// the sequence is idle; later triggers are ignored.
func TriggerFlicker(ecs *ecs.ECS, e *donburi.Entry) bool {
	if !e.Valid() || !e.HasComponent(components.Flicker) {
		return false
	}
	fl := components.Flicker.Get(e)
	next, ok := cfg.NextFlickerPhase(fl.Phase, cfg.FlickerEventTrigger)
	if !ok {
		return false
	}
	fl.Phase = next
	fl.Timer = 0
	fl.Elapsed = 0
	fl.Toggles = 0
	if fl.Rand == nil {
		fl.Rand = rand.New(rand.NewSource(1))
	}
	PlaySFX(ecs, cfg.SoundJumpscare)
	log.Printf("[boss] flicker started on %v", e.Entity())
	return true
}

// UpdateFlicker advances every running activation sequence by one tick.
func UpdateFlicker(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	components.Flicker.Each(ecs.World, func(e *donburi.Entry) {
		stepFlicker(ecs, e, dt)
	})
}

func stepFlicker(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	fl := components.Flicker.Get(e)
	switch fl.Phase {
	case cfg.FlickerFlickering:
		fl.Timer -= dt
		for fl.Timer <= 0 && fl.Phase == cfg.FlickerFlickering {
			if fl.Elapsed >= fl.Duration {
				setVisible(e, false)
				fl.Phase, _ = cfg.NextFlickerPhase(fl.Phase, cfg.FlickerEventDurationElapsed)
				fl.Timer += fl.TeleportDelay
				break
			}
			setVisible(e, fl.Rand.Float64() > 0.5)
			wait := fl.MinInterval + fl.Rand.Float64()*(fl.MaxInterval-fl.MinInterval)
			fl.Timer += wait
			fl.Elapsed += wait
			fl.Toggles++
		}
	case cfg.FlickerHidden:
		fl.Timer -= dt
		if fl.Timer > 0 {
			return
		}
		teleport(e, fl)
		setVisible(e, true)
		PlaySFX(ecs, cfg.SoundTeleport)
		if e.HasComponent(components.Follow) {
			components.Follow.Get(e).Engaged = true
		}
		BecomeVulnerable(e)
		fl.Phase, _ = cfg.NextFlickerPhase(fl.Phase, cfg.FlickerEventTeleported)
		log.Printf("[boss] %v engaged after %d toggles over %.2fs", e.Entity(), fl.Toggles, fl.Elapsed)
	}
}

func teleport(e *donburi.Entry, fl *components.FlickerData) {
	if !fl.HasDestination {
		log.Printf("[boss] %v has no teleport destination; engaging in place", e.Entity())
		return
	}
	t := components.Transform.Get(e)
	t.Position = fl.Destination
	t.SetYaw(fl.DestinationYaw)
	if e.HasComponent(components.Follow) {
		if b := components.Follow.Get(e).Backend; b != nil {
			b.Halt(e)
		}
	}
	motion.SyncObject(e)
}

func setVisible(e *donburi.Entry, visible bool) {
	if e.HasComponent(components.Visual) {
		components.Visual.Get(e).Visible = visible
	}
}
