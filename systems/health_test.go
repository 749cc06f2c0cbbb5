package systems

import (
	"testing"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestTakeDamageDiesExactlyOnce(t *testing.T) {
	e := newTestECS()
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 50, false)

	steps := []struct {
		amount int
		want   int
		died   bool
	}{
		{20, 30, false},
		{20, 10, false},
		{20, 0, true},
		{20, 0, false},
	}
	for i, s := range steps {
		died := TakeDamage(e.World, enemy, s.amount)
		h := components.Health.Get(enemy)
		if h.Current != s.want {
			t.Errorf("hit %d: health = %d, want %d", i, h.Current, s.want)
		}
		if died != s.died {
			t.Errorf("hit %d: died = %v, want %v", i, died, s.died)
		}
	}

	h := components.Health.Get(enemy)
	if !h.Dead() {
		t.Errorf("state = %s, want dead", h.State)
	}
	if !enemy.HasComponent(components.Death) {
		t.Fatal("dead enemy has no Death component")
	}
	if p := components.Death.Get(enemy).Policy; p != cfg.DeathDecompose {
		t.Errorf("policy = %s, want %s", p, cfg.DeathDecompose)
	}

	ProcessEvents(e)
	if kills := GetOrCreateHUD(e.World).Kills; kills != 1 {
		t.Errorf("kills = %d, want exactly one death event", kills)
	}
}

func TestTakeDamageOverkillClampsToZero(t *testing.T) {
	e := newTestECS()
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 50, false)

	if !TakeDamage(e.World, enemy, 500) {
		t.Error("overkill hit should kill")
	}
	if h := components.Health.Get(enemy); h.Current != 0 {
		t.Errorf("health = %d, want 0", h.Current)
	}
}

func TestInvincibleIgnoresDamage(t *testing.T) {
	e := newTestECS()
	boss := newTestEnemy(e, "Boss", mgl64.Vec3{}, 200, true)

	if TakeDamage(e.World, boss, 500) {
		t.Error("invincible actor died")
	}
	h := components.Health.Get(boss)
	if h.Current != 200 || !h.Invincible() {
		t.Errorf("health = %d (%s), want 200 (invincible)", h.Current, h.State)
	}
	if boss.HasComponent(components.Death) {
		t.Error("invincible actor got a Death component")
	}
}

func TestBecomeVulnerableIsIdempotent(t *testing.T) {
	e := newTestECS()
	boss := newTestEnemy(e, "Boss", mgl64.Vec3{}, 200, true)

	BecomeVulnerable(boss)
	BecomeVulnerable(boss)
	if s := components.Health.Get(boss).State; s != cfg.HealthAliveVulnerable {
		t.Fatalf("state = %s, want alive-vulnerable", s)
	}

	TakeDamage(e.World, boss, 50)
	if h := components.Health.Get(boss); h.Current != 150 {
		t.Errorf("health = %d, want 150", h.Current)
	}
}

func TestDeadActorsStayDead(t *testing.T) {
	e := newTestECS()
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 10, false)
	TakeDamage(e.World, enemy, 10)

	BecomeVulnerable(enemy)
	if Heal(e.World, enemy, 10) {
		t.Error("healed a dead actor")
	}
	h := components.Health.Get(enemy)
	if !h.Dead() || h.Current != 0 {
		t.Errorf("health = %d (%s), want 0 (dead)", h.Current, h.State)
	}
}

func TestHealClampsToMax(t *testing.T) {
	e := newTestECS()
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 50, false)

	TakeDamage(e.World, enemy, 30)
	Heal(e.World, enemy, 100)
	if h := components.Health.Get(enemy); h.Current != 50 {
		t.Errorf("health = %d, want 50", h.Current)
	}
}

func TestNonPositiveAmountsAreIgnored(t *testing.T) {
	e := newTestECS()
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 50, false)

	if TakeDamage(e.World, enemy, 0) || TakeDamage(e.World, enemy, -5) {
		t.Error("non-positive damage reported a death")
	}
	if Heal(e.World, enemy, -5) {
		t.Error("negative heal applied")
	}
	if h := components.Health.Get(enemy); h.Current != 50 {
		t.Errorf("health = %d, want 50", h.Current)
	}
}

func TestPlayerHealthReachesHUD(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e, mgl64.Vec3{})
	SyncHUD(e.World)

	TakeDamage(e.World, player, 25)
	ProcessEvents(e)

	hud := GetOrCreateHUD(e.World)
	if hud.Health != 75 || hud.MaxHealth != 100 {
		t.Errorf("hud = %d/%d, want 75/100", hud.Health, hud.MaxHealth)
	}
	if hud.Text != "Health: 75 / 100" {
		t.Errorf("hud text = %q", hud.Text)
	}

	TakeDamage(e.World, player, 100)
	ProcessEvents(e)
	if GetOrCreateHUD(e.World).Kills != 0 {
		t.Errorf("player death counted as a kill")
	}
	if p := components.Death.Get(player).Policy; p != cfg.DeathSimpleDisable {
		t.Errorf("player death policy = %s, want %s", p, cfg.DeathSimpleDisable)
	}
}
