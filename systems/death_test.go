package systems

import (
	"testing"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

func withParts(e *donburi.Entry, n int) {
	visual := components.Visual.Get(e)
	visual.Parts = nil
	for i := 0; i < n; i++ {
		visual.Parts = append(visual.Parts, components.Part{
			Name:    "part",
			Offset:  mgl64.Vec3{float64(i) * 0.2, 1, 0},
			Size:    0.4,
			HasBody: i%2 == 0,
		})
	}
}

func countPieces(w donburi.World) int {
	n := 0
	tags.Piece.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestDecomposeSpawnsOnePiecePerPart(t *testing.T) {
	e := newTestECS()
	newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{2, 0, 3}, 10, false)
	withParts(enemy, 4)
	ent := enemy.Entity()

	pieces := Die(e, enemy, cfg.DeathDecompose)

	if len(pieces) != 4 {
		t.Fatalf("pieces = %d, want 4", len(pieces))
	}
	if e.World.Valid(ent) {
		t.Error("decomposed actor still exists")
	}
	for i, p := range pieces {
		want := mgl64.Vec3{2 + float64(i)*0.2, 1, 3}
		if pos := components.Transform.Get(p).Position; !approxVec(pos, want) {
			t.Errorf("piece %d at %v, want %v", i, pos, want)
		}
		if components.Piece.Get(p).Owner != "Smiler" {
			t.Errorf("piece %d owner = %q", i, components.Piece.Get(p).Owner)
		}
		if obj := components.Object.Get(p).Object; obj == nil || obj.Space == nil {
			t.Errorf("piece %d has no collider in the space", i)
		}
		if left := components.AutoDestroy.Get(p).Remaining; left != cfg.Death.PieceLifetime {
			t.Errorf("piece %d lifetime = %v, want %v", i, left, cfg.Death.PieceLifetime)
		}
	}
	// Parts without a body keep their own size
	if s := components.Piece.Get(pieces[1]).Size; s != 0.4 {
		t.Errorf("bodiless part size = %v, want 0.4", s)
	}
}

func TestDecomposeSizesMissingPartsWithDefault(t *testing.T) {
	e := newTestECS()
	newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{2, 0, 3}, 10, false)
	components.Visual.Get(enemy).Parts = []components.Part{
		{Name: "scrap", Offset: mgl64.Vec3{0, 1, 0}},
		{Name: "shell", Offset: mgl64.Vec3{0, 1, 0}, Size: 0.6, HasBody: true},
	}

	pieces := Die(e, enemy, cfg.DeathDecompose)

	if s := components.Piece.Get(pieces[0]).Size; s != cfg.Death.DefaultPiece {
		t.Errorf("sizeless part = %v, want %v", s, cfg.Death.DefaultPiece)
	}
	if s := components.Piece.Get(pieces[1]).Size; s != 0.6 {
		t.Errorf("sized part = %v, want 0.6", s)
	}
}

// withExplosion sets the explosion tuning for one test.
func withExplosion(t *testing.T, force, lift float64) {
	old := cfg.Death
	cfg.Death.ExplosionForce = force
	cfg.Death.ExplosionLift = lift
	t.Cleanup(func() { cfg.Death = old })
}

func TestDecomposeWithoutExplosionLeavesPiecesAtRest(t *testing.T) {
	withExplosion(t, 0, 0.3)
	e := newTestECS()
	newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{2, 0, 3}, 10, false)
	withParts(enemy, 2)

	for i, p := range Die(e, enemy, cfg.DeathDecompose) {
		if v := components.Body.Get(p).Velocity; v.Len() != 0 {
			t.Errorf("piece %d velocity = %v, want zero", i, v)
		}
	}
}

func TestDecomposeExplosionPushesPiecesOutward(t *testing.T) {
	withExplosion(t, 4, 0.5)
	e := newTestECS()
	newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{2, 0, 3}, 10, false)
	offsets := []mgl64.Vec3{{0.5, 1, 0}, {0, 0.8, -0.3}, {-0.2, 1.5, 0.2}}
	for i, off := range offsets {
		components.Visual.Get(enemy).Parts = append(components.Visual.Get(enemy).Parts,
			components.Part{Name: "part", Offset: off, Size: 0.3, HasBody: i == 0})
	}

	pieces := Die(e, enemy, cfg.DeathDecompose)

	for i, p := range pieces {
		v := components.Body.Get(p).Velocity
		if !approx(v.Len(), 4) {
			t.Errorf("piece %d speed = %v, want 4", i, v.Len())
		}
		if v.Y() <= 0 {
			t.Errorf("piece %d has no lift: %v", i, v)
		}
		dir := components.Planar(offsets[i]).Normalize()
		if got := components.Planar(v).Normalize(); !approxVec(got, dir) {
			t.Errorf("piece %d flies %v, want along %v", i, got, dir)
		}
	}
}

func TestDecomposeExplosionLiftsCenteredPiece(t *testing.T) {
	withExplosion(t, 3, 0.4)
	e := newTestECS()
	newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{2, 0, 3}, 10, false)
	components.Visual.Get(enemy).Parts = []components.Part{
		{Name: "core", Offset: mgl64.Vec3{0, 1, 0}, Size: 0.3},
	}

	pieces := Die(e, enemy, cfg.DeathDecompose)

	v := components.Body.Get(pieces[0]).Velocity
	if !approxVec(v, mgl64.Vec3{0, 3, 0}) {
		t.Errorf("centered piece velocity = %v, want straight up at 3", v)
	}
}

func TestDecomposeWithoutPartsSpawnsNothing(t *testing.T) {
	e := newTestECS()
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 10, false)
	ent := enemy.Entity()

	if pieces := Die(e, enemy, cfg.DeathDecompose); len(pieces) != 0 {
		t.Errorf("pieces = %d, want 0", len(pieces))
	}
	if e.World.Valid(ent) {
		t.Error("actor still exists")
	}
}

func TestSimpleDisableRemovesActor(t *testing.T) {
	e := newTestECS()
	space := newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 10, false)
	withParts(enemy, 3)
	obj := addFootprint(space, enemy, 0.5, tags.ResolvEnemy)
	ent := enemy.Entity()

	if pieces := Die(e, enemy, cfg.DeathSimpleDisable); len(pieces) != 0 {
		t.Errorf("pieces = %d, want 0", len(pieces))
	}
	if e.World.Valid(ent) {
		t.Error("actor still exists")
	}
	if obj.Space != nil {
		t.Error("collider left in the space")
	}
	if n := countPieces(e.World); n != 0 {
		t.Errorf("world has %d pieces", n)
	}
}

func TestPiecesExpire(t *testing.T) {
	e := newTestECS()
	newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 10, false)
	withParts(enemy, 3)
	Die(e, enemy, cfg.DeathDecompose)

	runFor(e, cfg.Death.PieceLifetime/2, UpdateEffects)
	if n := countPieces(e.World); n != 3 {
		t.Fatalf("pieces at half life = %d, want 3", n)
	}

	runFor(e, cfg.Death.PieceLifetime/2+0.1, UpdateEffects)
	if n := countPieces(e.World); n != 0 {
		t.Errorf("pieces after lifetime = %d, want 0", n)
	}
}

func TestUpdateDeathsUsesTypePolicy(t *testing.T) {
	e := newTestECS()
	newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 10, false)
	withParts(enemy, 2)
	player := newTestPlayer(e, mgl64.Vec3{5, 0, 5})

	TakeDamage(e.World, enemy, 10)
	TakeDamage(e.World, player, 1000)
	UpdateDeaths(e)

	if n := countPieces(e.World); n != 2 {
		t.Errorf("pieces = %d, want 2", n)
	}
	if !player.Valid() {
		t.Fatal("player was removed by the enemy death sequence")
	}
	if components.Death.Get(player).Handled {
		t.Error("enemy death sequence handled the player")
	}
}

func TestDeathStopsFollowAndMelee(t *testing.T) {
	e := newTestECS()
	space := newTestSpace(e)
	enemy := newTestEnemy(e, "Smiler", mgl64.Vec3{}, 10, false)
	enemy.AddComponent(components.DamageSource)
	zone := addFootprint(space, enemy, 1, tags.ResolvDamage)
	components.DamageSource.SetValue(enemy, components.DamageSourceData{Enabled: true, Zone: zone})

	disableActor(enemy)

	if components.DamageSource.Get(enemy).Enabled {
		t.Error("damage source still enabled")
	}
	if zone.Space != nil {
		t.Error("damage zone still in the space")
	}
}
