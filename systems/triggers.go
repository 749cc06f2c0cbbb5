package systems

import (
	"log"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers fires trigger zones the player has just walked into.
// Enter events are collected first so trigger actions may create or
// remove entities.
func UpdateTriggers(ecs *ecs.ECS) {
	var entered []*donburi.Entry
	tags.Trigger.Each(ecs.World, func(e *donburi.Entry) {
		tr := components.Trigger.Get(e)
		obj := components.Object.Get(e).Object
		inside := len(motion.Overlapping(obj, 0, 0, tags.ResolvPlayer)) > 0
		wasInside := tr.Inside
		tr.Inside = inside
		if !inside || wasInside {
			return
		}
		if tr.OneShot && tr.Fired {
			return
		}
		entered = append(entered, e)
	})

	for _, e := range entered {
		tr := components.Trigger.Get(e)
		if fireTrigger(ecs, tr) {
			tr.Fired = true
		}
	}
}

// fireTrigger performs tr's action. It reports false when the action had
// nothing to act on, which leaves a one-shot trigger armed.
func fireTrigger(ecs *ecs.ECS, tr *components.TriggerData) bool {
	switch tr.Kind {
	case cfg.TriggerBossDoor:
		boss, ok := tags.Boss.First(ecs.World)
		if !ok {
			log.Printf("[trigger] boss door entered but no boss is present")
			return false
		}
		TriggerFlicker(ecs, boss)
		return true
	case cfg.TriggerBossRoom:
		PlaySFX(ecs, cfg.SoundBossRoom)
		return true
	case cfg.TriggerSpawner, cfg.TriggerStarfish:
		return ActivateSpawner(ecs, tr.Target)
	case cfg.TriggerDoor:
		return UnlockDoor(ecs, tr.Target)
	case cfg.TriggerFinish:
		return StartFinish(ecs)
	}
	log.Printf("[trigger] unknown trigger kind %q", tr.Kind)
	return false
}
