package components

import "github.com/yohamta/donburi"

// DamageEvent is one contact hit. It is produced by a damage source and
// consumed once by the target's health tracker; it is never stored.
type DamageEvent struct {
	Amount int
	Source donburi.Entity
	Target donburi.Entity
}
