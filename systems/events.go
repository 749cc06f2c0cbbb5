package systems

import (
	"github.com/automoto/dreadhall/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// RegisterEventHandlers subscribes the world's listeners. Call it once per
// world, before the first tick.
func RegisterEventHandlers(w donburi.World) {
	components.HealthChanged.Subscribe(w, onHealthChanged)
	components.Died.Subscribe(w, onDied)
}

// ProcessEvents delivers the events published during this tick. It runs
// last so listeners see the tick's final state.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}
