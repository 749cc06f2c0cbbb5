package components

import (
	cfg "github.com/automoto/dreadhall/config"
	"github.com/yohamta/donburi"
)

// TriggerData fires when the player enters the entity's Object. Target names
// the spawner, door or sound the trigger acts on.
type TriggerData struct {
	Kind    cfg.TriggerKind
	Target  string
	OneShot bool
	Fired   bool
	Inside  bool
}

var Trigger = donburi.NewComponentType[TriggerData]()
