package components

import (
	cfg "github.com/automoto/dreadhall/config"
	"github.com/yohamta/donburi"
)

// HealthData is owned by exactly one actor and only mutated through the
// health tracker (systems.TakeDamage, systems.Heal, systems.BecomeVulnerable).
type HealthData struct {
	Current int
	Max     int
	State   cfg.HealthState
}

func (h *HealthData) Dead() bool {
	return h.State == cfg.HealthDead
}

func (h *HealthData) Invincible() bool {
	return h.State == cfg.HealthAliveInvincible
}

type HealthBarData struct {
	// TimeToLive is the number of seconds the health bar stays visible.
	TimeToLive float64
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
