package systems

import (
	"math/rand"
	"testing"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type spawnCall struct {
	enemyType string
	point     components.SpawnPoint
	ceiling   bool
}

type fakeSpawner struct {
	calls []spawnCall
}

func (f *fakeSpawner) spawn(e *ecs.ECS, enemyType string, p components.SpawnPoint, ceiling bool) *donburi.Entry {
	f.calls = append(f.calls, spawnCall{enemyType, p, ceiling})
	return newTestEnemy(e, enemyType, p.Position, 10, false)
}

func newTestSpawnerEntity(e *ecs.ECS, name string, count, points int, delay float64) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(components.Spawner))
	sp := components.SpawnerData{
		Name:      name,
		EnemyType: "Starfish",
		Count:     count,
		Delay:     delay,
		Ceiling:   true,
		Rand:      rand.New(rand.NewSource(5)),
	}
	for i := 0; i < points; i++ {
		sp.Points = append(sp.Points, components.SpawnPoint{Position: mgl64.Vec3{float64(i), 0, 2}})
	}
	components.Spawner.SetValue(entry, sp)
	return entry
}

func TestSpawnerReleasesOnePerDelay(t *testing.T) {
	e := newTestECS()
	fake := &fakeSpawner{}
	system := NewSpawnerSystem(fake.spawn)
	spawner := newTestSpawnerEntity(e, "west", 2, 3, 1)

	runFor(e, 1, system)
	if len(fake.calls) != 0 {
		t.Fatalf("inactive spawner spawned %d", len(fake.calls))
	}

	if !ActivateSpawner(e, "west") {
		t.Fatal("spawner not found")
	}
	runFor(e, cfg.Dt, system)
	if len(fake.calls) != 1 {
		t.Fatalf("spawns on activation = %d, want 1", len(fake.calls))
	}

	runFor(e, 0.5, system)
	if len(fake.calls) != 1 {
		t.Fatalf("spawns before the delay = %d, want 1", len(fake.calls))
	}

	runFor(e, 0.6, system)
	if len(fake.calls) != 2 {
		t.Fatalf("spawns after the delay = %d, want 2", len(fake.calls))
	}
	if !components.Spawner.Get(spawner).Done {
		t.Error("spawner not done after its count")
	}

	runFor(e, 3, system)
	if len(fake.calls) != 2 {
		t.Errorf("spawns after done = %d, want 2", len(fake.calls))
	}

	a, b := fake.calls[0], fake.calls[1]
	if a.point == b.point {
		t.Errorf("spawn point %v used twice", a.point)
	}
	if a.enemyType != "Starfish" || !a.ceiling {
		t.Errorf("spawn call = %+v", a)
	}
}

func TestSpawnerActivatesOnce(t *testing.T) {
	e := newTestECS()
	fake := &fakeSpawner{}
	system := NewSpawnerSystem(fake.spawn)
	newTestSpawnerEntity(e, "west", 3, 3, 0.5)

	ActivateSpawner(e, "west")
	runFor(e, 0.3, system)
	if !ActivateSpawner(e, "west") {
		t.Fatal("spawner not found on second activation")
	}
	runFor(e, 5, system)

	if len(fake.calls) != 3 {
		t.Errorf("spawns = %d, want 3", len(fake.calls))
	}
}

func TestSpawnerCountIsCappedByPoints(t *testing.T) {
	e := newTestECS()
	fake := &fakeSpawner{}
	system := NewSpawnerSystem(fake.spawn)
	newTestSpawnerEntity(e, "west", 5, 2, 0.1)

	ActivateSpawner(e, "west")
	runFor(e, 2, system)

	if len(fake.calls) != 2 {
		t.Errorf("spawns = %d, want 2", len(fake.calls))
	}
}

func TestActivateUnknownSpawner(t *testing.T) {
	e := newTestECS()
	newTestSpawnerEntity(e, "west", 1, 1, 0)

	if ActivateSpawner(e, "east") {
		t.Error("activated a spawner that does not exist")
	}
}

func TestSpawnerWithoutPointsFinishes(t *testing.T) {
	e := newTestECS()
	fake := &fakeSpawner{}
	spawner := newTestSpawnerEntity(e, "west", 2, 0, 0.1)

	ActivateSpawner(e, "west")
	runFor(e, 1, NewSpawnerSystem(fake.spawn))

	if len(fake.calls) != 0 || !components.Spawner.Get(spawner).Done {
		t.Errorf("spawns = %d done = %v", len(fake.calls), components.Spawner.Get(spawner).Done)
	}
}
