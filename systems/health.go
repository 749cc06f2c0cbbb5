package systems

import (
	"log"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
)

// NewHealth returns a full health tracker. Invincible trackers ignore damage
// until BecomeVulnerable is called.
func NewHealth(max int, invincible bool) components.HealthData {
	state := cfg.HealthAliveVulnerable
	if invincible {
		state = cfg.HealthAliveInvincible
	}
	return components.HealthData{Current: max, Max: max, State: state}
}

// TakeDamage applies amount to e's health. It does nothing while e is dead
// or invincible. The hit that first brings health to zero moves e to Dead
// and attaches the Death component; it returns true for that hit only.
func TakeDamage(w donburi.World, e *donburi.Entry, amount int) bool {
	if !e.Valid() || !e.HasComponent(components.Health) || amount <= 0 {
		return false
	}
	h := components.Health.Get(e)
	if h.State != cfg.HealthAliveVulnerable {
		return false
	}

	prev := h.Current
	h.Current = clampHealth(h.Current-amount, h.Max)
	components.HealthChanged.Publish(w, components.HealthChangedEvent{
		Entity:  e.Entity(),
		Current: h.Current,
		Max:     h.Max,
		Delta:   h.Current - prev,
	})

	if e.HasComponent(components.Flash) {
		components.Flash.SetValue(e, components.FlashData{Remaining: 0.15, R: 1, G: 0.4, B: 0.4})
	}
	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).TimeToLive = cfg.Combat.HealthBarDuration
	}

	if h.Current > 0 {
		return false
	}

	next, ok := cfg.NextHealthState(h.State, cfg.HealthEventDepleted)
	if !ok {
		return false
	}
	h.State = next
	die(w, e)
	return true
}

// Heal restores amount health, clamped to the maximum. Dead actors stay dead.
func Heal(w donburi.World, e *donburi.Entry, amount int) bool {
	if !e.Valid() || !e.HasComponent(components.Health) || amount <= 0 {
		return false
	}
	h := components.Health.Get(e)
	if h.Dead() {
		return false
	}

	prev := h.Current
	h.Current = clampHealth(h.Current+amount, h.Max)
	components.HealthChanged.Publish(w, components.HealthChangedEvent{
		Entity:  e.Entity(),
		Current: h.Current,
		Max:     h.Max,
		Delta:   h.Current - prev,
	})
	return true
}

// BecomeVulnerable clears invincibility. Calling it again, or on a dead
// actor, has no effect.
func BecomeVulnerable(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	h := components.Health.Get(e)
	if next, ok := cfg.NextHealthState(h.State, cfg.HealthEventVulnerable); ok {
		h.State = next
	}
}

// die attaches the Death component with the policy for e. The death
// sequencer picks it up later in the same tick.
func die(w donburi.World, e *donburi.Entry) {
	if e.HasComponent(components.Death) {
		return
	}

	policy := cfg.DeathSimpleDisable
	if e.HasComponent(components.Enemy) {
		et, ok := cfg.EnemyType(components.Enemy.Get(e).Type)
		if !ok {
			log.Printf("[death] unknown enemy type %q, using %s policy", components.Enemy.Get(e).Type, et.Death)
		}
		policy = et.Death
	}

	e.AddComponent(components.Death)
	components.Death.SetValue(e, components.DeathData{Policy: policy})

	components.Died.Publish(w, components.DiedEvent{
		Entity: e.Entity(),
		Policy: policy,
		Player: e.HasComponent(tags.Player),
	})
}

func clampHealth(v, limit int) int {
	return max(0, min(limit, v))
}
