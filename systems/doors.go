package systems

import (
	"log"
	"math"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// doorPassable is the share of the open angle past which the leaf no longer
// blocks the doorway.
const doorPassable = 0.3

// UpdateDoors swings doors open while the player stands in their zone and
// closes auto-closing doors once the player leaves.
func UpdateDoors(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		d.Inside = len(motion.Overlapping(components.Object.Get(e).Object, 0, 0, tags.ResolvPlayer)) > 0
		stepDoor(ecs, d, dt)
	})
}

func stepDoor(ecs *ecs.ECS, d *components.DoorData, dt float64) {
	switch {
	case d.Inside && !d.Locked && d.Angle != d.OpenAngle && !swingingTo(d, d.OpenAngle):
		swingDoor(ecs, d, d.OpenAngle)
	case !d.Inside && d.AutoClose && d.Open && !swingingTo(d, 0):
		swingDoor(ecs, d, 0)
	}

	if d.Swing != nil {
		v, done := d.Swing.Update(float32(dt))
		d.Angle = float64(v)
		if done {
			d.Angle = d.Target
			d.Swing = nil
			d.Open = d.Target != 0
		}
	}
	updateDoorPanel(d)
}

func swingingTo(d *components.DoorData, target float64) bool {
	return d.Swing != nil && d.Target == target
}

// swingDoor starts a swing from the current angle to target. A full swing
// takes 1/Speed seconds and partial swings take their share of that.
func swingDoor(ecs *ecs.ECS, d *components.DoorData, target float64) {
	span := math.Abs(d.OpenAngle)
	if span == 0 || d.Speed <= 0 {
		d.Angle, d.Target, d.Swing = target, target, nil
		d.Open = target != 0
		return
	}
	duration := math.Abs(target-d.Angle) / span / d.Speed
	d.Target = target
	d.Swing = gween.New(float32(d.Angle), float32(target), float32(duration), ease.OutQuad)
	PlaySFX(ecs, cfg.SoundDoor)
}

// updateDoorPanel keeps the leaf in the collision space only while it
// still covers the doorway.
func updateDoorPanel(d *components.DoorData) {
	if d.Panel == nil {
		return
	}
	blocking := math.Abs(d.Angle) < math.Abs(d.OpenAngle)*doorPassable
	switch {
	case blocking && d.Panel.Space == nil && d.Space != nil:
		d.Space.Add(d.Panel)
	case !blocking && d.Panel.Space != nil:
		d.Panel.Space.Remove(d.Panel)
	}
}

// UnlockDoor unlocks the door called name so it opens for the player.
func UnlockDoor(ecs *ecs.ECS, name string) bool {
	found := false
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		if d.Name != name {
			return
		}
		d.Locked = false
		found = true
	})
	if !found {
		log.Printf("[door] no door named %q", name)
	}
	return found
}
