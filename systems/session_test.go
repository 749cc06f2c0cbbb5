package systems

import (
	"testing"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// press simulates a frame in which only action is held, after a frame in
// which nothing was.
func press(e *ecs.ECS, action cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = [cfg.ActionCount]bool{}
	input.Current = [cfg.ActionCount]bool{}
	input.Current[action] = true
	UpdateSession(e)
}

func TestPauseTogglesAndResetsCursor(t *testing.T) {
	e := newTestECS()
	s := GetOrCreateSession(e)

	press(e, cfg.ActionPause)
	if !s.Paused || s.Cursor != components.PauseResume {
		t.Fatalf("after pause: %+v", *s)
	}
	press(e, cfg.ActionMenuDown)
	press(e, cfg.ActionPause)
	if s.Paused {
		t.Fatal("pause key did not resume")
	}
	press(e, cfg.ActionPause)
	if s.Cursor != components.PauseResume {
		t.Errorf("cursor on reopen = %d, want resume", s.Cursor)
	}
}

func TestMenuInputIgnoredWhileUnpaused(t *testing.T) {
	e := newTestECS()
	s := GetOrCreateSession(e)

	press(e, cfg.ActionMenuDown)
	press(e, cfg.ActionMenuSelect)
	if s.Cursor != components.PauseResume || s.Over() {
		t.Errorf("menu input acted while unpaused: %+v", *s)
	}
}

func TestMoveCursorWraps(t *testing.T) {
	tests := []struct {
		from components.PauseChoice
		step int
		want components.PauseChoice
	}{
		{components.PauseResume, -1, components.PauseQuit},
		{components.PauseQuit, 1, components.PauseResume},
		{components.PauseRestart, 1, components.PauseLeave},
		{components.PauseLeave, -2, components.PauseResume},
	}
	for _, tt := range tests {
		if got := moveCursor(tt.from, tt.step); got != tt.want {
			t.Errorf("moveCursor(%d, %d) = %d, want %d", tt.from, tt.step, got, tt.want)
		}
	}
}

func TestPauseChoicesDecideOutcome(t *testing.T) {
	tests := []struct {
		downs int
		want  components.SessionOutcome
	}{
		{1, components.SessionRestarted},
		{2, components.SessionLeft},
		{3, components.SessionQuit},
	}
	for _, tt := range tests {
		e := newTestECS()
		press(e, cfg.ActionPause)
		for i := 0; i < tt.downs; i++ {
			press(e, cfg.ActionMenuDown)
		}
		press(e, cfg.ActionMenuSelect)
		if got := GetOrCreateSession(e).Outcome; got != tt.want {
			t.Errorf("%d downs: outcome = %d, want %d", tt.downs, got, tt.want)
		}
	}
}

func TestResumeChoiceUnpauses(t *testing.T) {
	e := newTestECS()
	press(e, cfg.ActionPause)
	press(e, cfg.ActionMenuSelect)

	s := GetOrCreateSession(e)
	if s.Paused || s.Over() {
		t.Errorf("after resume: %+v", *s)
	}
}

func TestCannotPauseWhileDying(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e, mgl64.Vec3{})
	player.AddComponent(components.Death)

	press(e, cfg.ActionPause)
	if GetOrCreateSession(e).Paused {
		t.Error("paused during the death sequence")
	}
}

func TestCannotPauseDuringFinish(t *testing.T) {
	e := newTestECS()
	StartFinish(e)

	press(e, cfg.ActionPause)
	if GetOrCreateSession(e).Paused {
		t.Error("paused during the win sequence")
	}
}

func TestOutcomeFromDeathAndFinish(t *testing.T) {
	e := newTestECS()
	player := newTestPlayer(e, mgl64.Vec3{})
	UpdateOutcome(e)
	if GetOrCreateSession(e).Over() {
		t.Fatal("attempt decided while playing")
	}

	player.AddComponent(components.Death)
	components.Death.Get(player).Restart = true
	GetOrCreateFinish(e).Phase = components.FinishDone
	UpdateOutcome(e)
	if got := GetOrCreateSession(e).Outcome; got != components.SessionDied {
		t.Fatalf("outcome = %d, want died", got)
	}

	components.Death.Get(player).Restart = false
	UpdateOutcome(e)
	if got := GetOrCreateSession(e).Outcome; got != components.SessionDied {
		t.Errorf("outcome changed to %d after being decided", got)
	}
}

func TestWinOutcome(t *testing.T) {
	e := newTestECS()
	newTestPlayer(e, mgl64.Vec3{})
	GetOrCreateFinish(e).Phase = components.FinishDone

	UpdateOutcome(e)
	if got := GetOrCreateSession(e).Outcome; got != components.SessionWon {
		t.Errorf("outcome = %d, want won", got)
	}
}

func TestGameplayFreezesWhilePausedOrDecided(t *testing.T) {
	e := newTestECS()
	ticks := 0
	sys := WithGameplayChecks(func(*ecs.ECS) { ticks++ })

	sys(e)
	GetOrCreateSession(e).Paused = true
	sys(e)
	GetOrCreateSession(e).Paused = false
	GetOrCreateSession(e).Decide(components.SessionLeft)
	sys(e)

	if ticks != 1 {
		t.Errorf("system ran %d times, want 1", ticks)
	}
}

func TestPauseStatus(t *testing.T) {
	hud := &components.HUDData{Health: 80, MaxHealth: 100, Kills: 3}
	want := "Kills 3   Time 02:14   Health 80/100"
	if got := pauseStatus(hud, 134.7); got != want {
		t.Errorf("pauseStatus = %q, want %q", got, want)
	}
}
