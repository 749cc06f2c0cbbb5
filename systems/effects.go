package systems

import (
	"github.com/automoto/dreadhall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes timed effect components (flash, health bars,
// auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	updateFlashEffects(ecs, dt)
	updateHealthBars(ecs, dt)
	updateAutoDestroy(ecs, dt)
}

// updateFlashEffects counts hit flashes down
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Remaining > 0 {
			flash.Remaining -= dt
		}
	})
}

func updateHealthBars(ecs *ecs.ECS, dt float64) {
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		if bar.TimeToLive > 0 {
			bar.TimeToLive -= dt
		}
	})
}

// updateAutoDestroy removes entities whose lifetime ran out
func updateAutoDestroy(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		// Remove from the collision space if it has an object
		if e.HasComponent(components.Object) {
			obj := components.Object.Get(e)
			if obj.Object != nil && obj.Space != nil {
				obj.Space.Remove(obj.Object)
			}
		}
		e.Remove()
	}
}
