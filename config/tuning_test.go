package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// keepGlobals restores the tunable globals when the test ends.
func keepGlobals(t *testing.T) {
	t.Helper()
	boss, death, player := Boss, Death, Player
	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for k, v := range Enemy.Types {
		types[k] = v
	}
	t.Cleanup(func() {
		Boss, Death, Player = boss, death, player
		Enemy.Types = types
	})
}

func TestApplyTuningOverridesOnlyGivenKeys(t *testing.T) {
	keepGlobals(t)
	before := Boss

	err := ApplyTuning([]byte(`
boss:
  flicker_duration: 3
death:
  piece_lifetime: 4.5
player:
  health: 250
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}

	if Boss.FlickerDuration != 3 {
		t.Errorf("flicker duration = %v, want 3", Boss.FlickerDuration)
	}
	if Boss.MinInterval != before.MinInterval || Boss.MaxInterval != before.MaxInterval {
		t.Errorf("untouched boss keys changed: %+v", Boss)
	}
	if Death.PieceLifetime != 4.5 {
		t.Errorf("piece lifetime = %v, want 4.5", Death.PieceLifetime)
	}
	if Player.Health != 250 {
		t.Errorf("player health = %v, want 250", Player.Health)
	}
}

func TestApplyTuningIsAtomic(t *testing.T) {
	keepGlobals(t)
	boss, death := Boss, Death

	err := ApplyTuning([]byte(`
death:
  piece_lifetime: 9
boss:
  min_interval: 0.5
  max_interval: 0.1
`))
	if err == nil {
		t.Fatal("inverted interval range was accepted")
	}
	if Boss != boss || Death != death {
		t.Error("a rejected document changed the globals")
	}
}

func TestApplyTuningRejectsBadEnemies(t *testing.T) {
	keepGlobals(t)

	for name, doc := range map[string]string{
		"motion": "enemies:\n  Smiler:\n    motion: teleport\n",
		"death":  "enemies:\n  Smiler:\n    death: explode\n",
		"health": "enemies:\n  Smiler:\n    health: 0\n",
		"syntax": "enemies: [",
	} {
		if err := ApplyTuning([]byte(doc)); err == nil {
			t.Errorf("%s: bad document accepted", name)
		}
	}
	if et, _ := EnemyType("Smiler"); et.Motion != MotionBody || et.Death != DeathDecompose {
		t.Errorf("Smiler changed after rejected documents: %+v", et)
	}
}

func TestApplyTuningRejectsPlayerWithoutHealth(t *testing.T) {
	keepGlobals(t)
	player := Player

	for _, doc := range []string{
		"player:\n  health: 0\n",
		"player:\n  health: -20\n  move_speed: 9\n",
	} {
		if err := ApplyTuning([]byte(doc)); err == nil {
			t.Errorf("accepted %q", doc)
		}
	}
	if Player != player {
		t.Errorf("player changed after rejected documents: %+v", Player)
	}
}

func TestApplyTuningAddsEnemyType(t *testing.T) {
	keepGlobals(t)

	err := ApplyTuning([]byte(`
enemies:
  Crawler:
    health: 15
    motion: transform
`))
	if err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}

	et, ok := EnemyType("Crawler")
	if !ok {
		t.Fatal("Crawler was not registered")
	}
	smiler, _ := EnemyType("Smiler")
	if et.Name != "Crawler" || et.Health != 15 || et.Motion != MotionTransform {
		t.Errorf("Crawler = %+v", et)
	}
	if et.Death != smiler.Death || et.MoveSpeed != smiler.MoveSpeed {
		t.Error("new type did not start from Smiler's settings")
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	if err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file did not fail")
	}
}

func TestWatchTuningReportsWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("boss: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := WatchTuning(path)
	if err != nil {
		t.Fatalf("WatchTuning: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("boss:\n  flicker_duration: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Changed:
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	if err := w.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
