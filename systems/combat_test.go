package systems

import (
	"testing"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	attackerPos = mgl64.Vec3{5, 0, 5}
	inReach     = mgl64.Vec3{5, 0, 5.5}
)

// newTestAttacker builds an enemy at attackerPos facing +Z whose 1m damage
// zone sits half a meter ahead of it.
func newTestAttacker(e *ecs.ECS, space *resolv.Space) *donburi.Entry {
	attacker := newTestEnemy(e, "Smiler", attackerPos, 50, false)
	attacker.AddComponent(components.DamageSource)
	zone := motion.NewFootprint(inReach, 1, tags.ResolvDamage)
	space.Add(zone)
	components.DamageSource.SetValue(attacker, components.DamageSourceData{
		Amount:    10,
		Interval:  1,
		Enabled:   true,
		TargetTag: tags.ResolvPlayer,
		Zone:      zone,
		Reach:     0.5,
		Size:      1,
		HitSound:  cfg.SoundEnemyHit,
	})
	return attacker
}

func newTestVictim(e *ecs.ECS, space *resolv.Space, pos mgl64.Vec3) *donburi.Entry {
	player := newTestPlayer(e, pos)
	addFootprint(space, player, 0.5, tags.ResolvPlayer)
	return player
}

func TestContactHitsOnEntryThenEveryInterval(t *testing.T) {
	e := newTestECS()
	space := newTestSpace(e)
	attacker := newTestAttacker(e, space)
	player := newTestVictim(e, space, inReach)

	hits := collectContactHits(attacker, cfg.Dt)
	if len(hits) != 1 {
		t.Fatalf("hits on entry = %d, want 1", len(hits))
	}
	if hits[0].Target != player.Entity() || hits[0].Source != attacker.Entity() || hits[0].Amount != 10 {
		t.Errorf("hit = %+v", hits[0])
	}

	total := 1
	for i := 0; i < int(2.5/cfg.Dt); i++ {
		total += len(collectContactHits(attacker, cfg.Dt))
	}
	if total != 3 {
		t.Errorf("hits over 2.5s = %d, want 3", total)
	}
}

func TestLeavingTheZoneForgetsTheContact(t *testing.T) {
	e := newTestECS()
	space := newTestSpace(e)
	attacker := newTestAttacker(e, space)
	player := newTestVictim(e, space, inReach)

	collectContactHits(attacker, cfg.Dt)
	moveTo(player, mgl64.Vec3{20, 0, 20})

	if hits := collectContactHits(attacker, cfg.Dt); len(hits) != 0 {
		t.Errorf("hits out of range = %d", len(hits))
	}
	if n := len(components.DamageSource.Get(attacker).Contacts); n != 0 {
		t.Errorf("contacts after leaving = %d, want 0", n)
	}

	moveTo(player, inReach)
	if hits := collectContactHits(attacker, cfg.Dt); len(hits) != 1 {
		t.Errorf("hits on re-entry = %d, want 1", len(hits))
	}
}

func TestZoneFollowsOwnerFacing(t *testing.T) {
	e := newTestECS()
	space := newTestSpace(e)
	attacker := newTestAttacker(e, space)
	newTestVictim(e, space, mgl64.Vec3{5, 0, 4.4})

	if hits := collectContactHits(attacker, cfg.Dt); len(hits) != 0 {
		t.Fatalf("hit a target behind the attacker")
	}

	components.Transform.Get(attacker).SetYaw(3.141592653589793)
	if hits := collectContactHits(attacker, cfg.Dt); len(hits) != 1 {
		t.Errorf("hits after turning around = %d, want 1", len(hits))
	}
}

func TestDisabledSourceDealsNothing(t *testing.T) {
	e := newTestECS()
	space := newTestSpace(e)
	attacker := newTestAttacker(e, space)
	newTestVictim(e, space, inReach)
	components.DamageSource.Get(attacker).Enabled = false

	if hits := collectContactHits(attacker, cfg.Dt); len(hits) != 0 {
		t.Errorf("disabled source hit %d times", len(hits))
	}
}

func TestDamageSourcesLowerHealth(t *testing.T) {
	e := newTestECS()
	space := newTestSpace(e)
	newTestAttacker(e, space)
	player := newTestVictim(e, space, inReach)

	runFor(e, 0.5, UpdateDamageSources)

	if h := components.Health.Get(player).Current; h != 90 {
		t.Errorf("player health = %d, want 90", h)
	}
	found := false
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == cfg.SoundPlayerHit {
			found = true
		}
	}
	if !found {
		t.Error("player hit sound was not queued")
	}
}

func TestDamageSkipsInvincibleTargets(t *testing.T) {
	e := newTestECS()
	space := newTestSpace(e)
	newTestAttacker(e, space)
	player := newTestVictim(e, space, inReach)
	components.Health.Get(player).State = cfg.HealthAliveInvincible

	runFor(e, 1.5, UpdateDamageSources)

	if h := components.Health.Get(player).Current; h != 100 {
		t.Errorf("invincible player health = %d, want 100", h)
	}
}
