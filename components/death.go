package components

import (
	cfg "github.com/automoto/dreadhall/config"
	"github.com/yohamta/donburi"
)

// DeathData marks an entity whose health reached zero. It is added exactly
// once by the health tracker and consumed by the death sequencer.
type DeathData struct {
	Policy  cfg.DeathPolicy
	Handled bool
	// Timer counts down the player's restart delay once the fade is over.
	Timer   float64
	Holding bool
	// Restart is set when the player's death sequence has finished.
	Restart bool
}

var Death = donburi.NewComponentType[DeathData]()
