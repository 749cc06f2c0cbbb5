package systems

import (
	"testing"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestStarfish(e *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	sf := newTestEnemy(e, "Starfish", mgl64.Vec3{2, cfg.Spawn.StarfishHeight, 2}, 30, false)
	sf.AddComponent(components.Starfish)
	sf.AddComponent(components.Body)
	sf.AddComponent(components.Follow)
	sf.AddComponent(components.DamageSource)
	components.Starfish.SetValue(sf, components.StarfishData{Phase: cfg.StarfishWaiting, Timer: cfg.Spawn.StarfishDelay})
	components.Body.SetValue(sf, components.BodyData{Kinematic: true})
	components.Follow.SetValue(sf, components.FollowData{
		Target:          target.Entity(),
		Disabled:        true,
		Speed:           1,
		TurnRate:        4,
		DetectionRadius: 10,
		Backend:         motion.NewBodyMotion(),
	})
	components.DamageSource.SetValue(sf, components.DamageSourceData{Amount: 5, Interval: 1})
	return sf
}

func TestStarfishHangsThenDrops(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e, mgl64.Vec3{8, 0, 8})
	sf := newTestStarfish(e, player)

	runFor(e, cfg.Spawn.StarfishDelay/2, UpdateStarfish, UpdateBodies)
	if p := components.Starfish.Get(sf).Phase; p != cfg.StarfishWaiting {
		t.Fatalf("phase = %v, want waiting", p)
	}
	if y := components.Transform.Get(sf).Position.Y(); y != cfg.Spawn.StarfishHeight {
		t.Errorf("waiting starfish moved to y=%v", y)
	}
	if components.DamageSource.Get(sf).Enabled {
		t.Error("hanging starfish can deal damage")
	}

	runFor(e, cfg.Spawn.StarfishDelay, UpdateStarfish, UpdateBodies)
	if p := components.Starfish.Get(sf).Phase; p != cfg.StarfishFalling {
		t.Fatalf("phase = %v, want falling", p)
	}
	if components.DamageSource.Get(sf).Enabled || components.Follow.Get(sf).Engaged {
		t.Error("falling starfish is already active")
	}
}

func TestStarfishLandsFlippedAndChases(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e, mgl64.Vec3{8, 0, 8})
	sf := newTestStarfish(e, player)

	runFor(e, 3, UpdateStarfish, UpdateBodies)

	if p := components.Starfish.Get(sf).Phase; p != cfg.StarfishFollowing {
		t.Fatalf("phase = %v, want following", p)
	}
	tr := components.Transform.Get(sf)
	if tr.Position.Y() != cfg.Physics.FloorY {
		t.Errorf("starfish rests at y=%v, want the floor", tr.Position.Y())
	}
	if up := tr.Rotation.Rotate(cfg.Up); up.Y() > -0.99 {
		t.Errorf("up axis = %v, want flipped over", up)
	}
	f := components.Follow.Get(sf)
	if f.Disabled || !f.Engaged {
		t.Errorf("follow disabled = %v engaged = %v", f.Disabled, f.Engaged)
	}
	if !components.DamageSource.Get(sf).Enabled {
		t.Error("landed starfish cannot deal damage")
	}
}
