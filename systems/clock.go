package systems

import (
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one tick. It runs first so
// every later system in the tick sees the same Dt.
func UpdateClock(ecs *ecs.ECS) {
	clock := GetOrCreateClock(ecs.World)
	clock.Elapsed += clock.Dt
	clock.Ticks++
}

// GetOrCreateClock returns the singleton Clock component, creating one that
// ticks at the fixed rate if needed.
func GetOrCreateClock(w donburi.World) *components.ClockData {
	entry, ok := components.Clock.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.Clock))
		components.Clock.SetValue(entry, components.ClockData{Dt: cfg.Dt})
	}
	return components.Clock.Get(entry)
}

// deltaTime is the length of the current tick in seconds.
func deltaTime(w donburi.World) float64 {
	return GetOrCreateClock(w).Dt
}
