package components

import (
	cfg "github.com/automoto/dreadhall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type HealthChangedEvent struct {
	Entity  donburi.Entity
	Current int
	Max     int
	Delta   int
}

type DiedEvent struct {
	Entity donburi.Entity
	Policy cfg.DeathPolicy
	Player bool
}

var HealthChanged = events.NewEventType[HealthChangedEvent]()
var Died = events.NewEventType[DiedEvent]()
