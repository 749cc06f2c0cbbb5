package systems

import (
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamageSources moves every damage zone with its owner, works out who
// it is touching and deals contact damage. Hits are collected first and
// applied afterwards so deaths do not change archetypes mid-iteration.
func UpdateDamageSources(ecs *ecs.ECS) {
	dt := deltaTime(ecs.World)

	var hits []components.DamageEvent
	components.DamageSource.Each(ecs.World, func(e *donburi.Entry) {
		hits = append(hits, collectContactHits(e, dt)...)
	})
	applyDamage(ecs, hits)
}

// collectContactHits returns the hits e's damage zone deals this tick.
// A target is hit on the tick it enters the zone, then once per Interval
// while it stays. Targets that leave are forgotten.
func collectContactHits(e *donburi.Entry, dt float64) []components.DamageEvent {
	src := components.DamageSource.Get(e)
	if src.Zone == nil {
		return nil
	}
	if e.HasComponent(components.Transform) {
		t := components.Transform.Get(e)
		motion.Place(src.Zone, t.Position.Add(components.Planar(t.Forward()).Mul(src.Reach)))
	}

	if !src.Enabled {
		clear(src.Contacts)
		return nil
	}
	if src.Contacts == nil {
		src.Contacts = make(map[donburi.Entity]float64)
	}

	var hits []components.DamageEvent
	touching := make(map[donburi.Entity]bool)
	for _, obj := range motion.Overlapping(src.Zone, 0, 0, src.TargetTag) {
		target, ok := obj.Data.(donburi.Entity)
		if !ok || target == e.Entity() || touching[target] {
			continue
		}
		touching[target] = true

		cooldown, seen := src.Contacts[target]
		if seen {
			cooldown -= dt
			if cooldown > 0 {
				src.Contacts[target] = cooldown
				continue
			}
		}
		src.Contacts[target] = src.Interval
		hits = append(hits, components.DamageEvent{Amount: src.Amount, Source: e.Entity(), Target: target})
	}

	for target := range src.Contacts {
		if !touching[target] {
			delete(src.Contacts, target)
		}
	}
	return hits
}

// applyDamage delivers each hit to its target's health tracker.
func applyDamage(ecs *ecs.ECS, hits []components.DamageEvent) {
	for _, hit := range hits {
		if !ecs.World.Valid(hit.Target) {
			continue
		}
		target := ecs.World.Entry(hit.Target)
		if !target.HasComponent(components.Health) {
			continue
		}
		if components.Health.Get(target).State != cfg.HealthAliveVulnerable {
			continue
		}

		sound := cfg.SoundEnemyHit
		if ecs.World.Valid(hit.Source) {
			if src := ecs.World.Entry(hit.Source); src.HasComponent(components.DamageSource) {
				sound = components.DamageSource.Get(src).HitSound
			}
		}
		if target.HasComponent(tags.Player) {
			sound = cfg.SoundPlayerHit
			TriggerScreenShake(ecs, 6, 0.2)
		}
		PlaySFX(ecs, sound)

		TakeDamage(ecs.World, target, hit.Amount)
	}
}

// DisableDamageSource stops e dealing damage and forgets its contacts.
func DisableDamageSource(e *donburi.Entry) {
	if !e.HasComponent(components.DamageSource) {
		return
	}
	src := components.DamageSource.Get(e)
	src.Enabled = false
	clear(src.Contacts)
	if src.Zone != nil && src.Zone.Space != nil {
		src.Zone.Space.Remove(src.Zone)
	}
}
