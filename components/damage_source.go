package components

import (
	cfg "github.com/automoto/dreadhall/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// DamageSourceData deals Amount to every overlapping entity carrying
// TargetTag: once on contact, then every Interval seconds while the overlap
// lasts. Leaving the zone forgets the contact.
type DamageSourceData struct {
	Amount    int
	Interval  float64
	Enabled   bool
	TargetTag string

	// Zone is the damage area. Its center sits Reach meters in front of the
	// owner.
	Zone  *resolv.Object
	Reach float64
	Size  float64

	// Contacts maps each overlapping target to the seconds left before it
	// can be hit again.
	Contacts map[donburi.Entity]float64

	HitSound cfg.SoundID
}

var DamageSource = donburi.NewComponentType[DamageSourceData]()
