package systems

import (
	"fmt"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// pauseLabels are listed in PauseChoice order.
var pauseLabels = [components.PauseChoiceCount]string{
	"Resume",
	"Restart Level",
	"Leave the Hall",
	"Quit",
}

// UpdateSession opens and closes the pause menu and applies its choices.
// It runs after UpdateInput and before the gameplay systems.
func UpdateSession(ecs *ecs.ECS) {
	s := GetOrCreateSession(ecs)
	if s.Over() {
		return
	}
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed && (s.Paused || canPause(ecs)) {
		setPaused(ecs, s, !s.Paused)
		return
	}
	if !s.Paused {
		return
	}

	switch {
	case GetAction(input, cfg.ActionMenuUp).JustPressed:
		s.Cursor = moveCursor(s.Cursor, -1)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	case GetAction(input, cfg.ActionMenuDown).JustPressed:
		s.Cursor = moveCursor(s.Cursor, 1)
		PlaySFX(ecs, cfg.SoundMenuNavigate)
	case GetAction(input, cfg.ActionMenuSelect).JustPressed:
		PlaySFX(ecs, cfg.SoundMenuSelect)
		choosePause(ecs, s)
	}
}

// UpdateOutcome ends the attempt once the player's death fade or the win
// sequence has run out. It runs after both sequences.
func UpdateOutcome(ecs *ecs.ECS) {
	s := GetOrCreateSession(ecs)
	switch {
	case PlayerNeedsRestart(ecs):
		s.Decide(components.SessionDied)
	case FinishComplete(ecs):
		s.Decide(components.SessionWon)
	}
}

func choosePause(ecs *ecs.ECS, s *components.SessionData) {
	switch s.Cursor {
	case components.PauseResume:
		setPaused(ecs, s, false)
	case components.PauseRestart:
		StopMusic(ecs)
		s.Decide(components.SessionRestarted)
	case components.PauseLeave:
		StopMusic(ecs)
		s.Decide(components.SessionLeft)
	case components.PauseQuit:
		s.Decide(components.SessionQuit)
	}
}

func setPaused(ecs *ecs.ECS, s *components.SessionData, paused bool) {
	s.Paused = paused
	if paused {
		s.Cursor = components.PauseResume
		PauseMusic(ecs)
		return
	}
	ResumeMusic(ecs)
}

// canPause is false while the player's death or the win sequence plays;
// neither can be frozen halfway.
func canPause(ecs *ecs.ECS) bool {
	if FinishActive(ecs) {
		return false
	}
	dying := false
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			dying = true
		}
	})
	return !dying
}

// moveCursor steps through the pause menu with wrap-around.
func moveCursor(c components.PauseChoice, step int) components.PauseChoice {
	n := components.PauseChoiceCount
	return components.PauseChoice(((int(c)+step)%n + n) % n)
}

// WithGameplayChecks wraps a system so it only runs while the level is in
// play.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if s := GetOrCreateSession(e); s.Paused || s.Over() || FinishActive(e) {
			return
		}
		system(e)
	}
}

// DrawPauseMenu dims the level and lists the pause choices below a summary
// of the attempt so far.
func DrawPauseMenu(ecs *ecs.ECS, screen *ebiten.Image) {
	s := GetOrCreateSession(ecs)
	if !s.Paused {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Pause.OverlayColor, false)

	row := cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap
	top := (height - float64(len(pauseLabels))*row) / 2

	title := fonts.Title.Get()
	text.Draw(screen, cfg.Pause.Title, title, centerTextX(cfg.Pause.Title, title, width), int(top-1.5*row), cfg.Pause.TitleColor)

	small := fonts.Small.Get()
	status := pauseStatus(GetOrCreateHUD(ecs.World), GetOrCreateClock(ecs.World).Elapsed)
	text.Draw(screen, status, small, centerTextX(status, small, width), int(top-0.5*row), cfg.Pause.TextColorNormal)

	face := fonts.Bold.Get()
	for i, label := range pauseLabels {
		c := cfg.Pause.TextColorNormal
		if components.PauseChoice(i) == s.Cursor {
			c = cfg.Pause.TextColorSelected
		}
		y := top + float64(i)*row + cfg.Pause.MenuItemHeight
		text.Draw(screen, label, face, centerTextX(label, face, width), int(y), c)
	}

	hint := pauseHint(getOrCreateInput(ecs).LastInputMethod)
	text.Draw(screen, hint, small, centerTextX(hint, small, width), int(height)-12, cfg.Pause.TextColorNormal)
}

// pauseStatus reads like "Kills 3   Time 02:14   Health 80/100".
func pauseStatus(hud *components.HUDData, elapsed float64) string {
	secs := int(elapsed)
	return fmt.Sprintf("Kills %d   Time %02d:%02d   Health %d/%d",
		hud.Kills, secs/60, secs%60, hud.Health, hud.MaxHealth)
}

func pauseHint(method components.InputMethod) string {
	if method == components.InputGamepad {
		return "D-Pad: Choose   A: Confirm   Start: Back to the dark"
	}
	return "Up/Down: Choose   Enter: Confirm   Esc: Back to the dark"
}

// GetOrCreateSession returns the singleton Session component.
func GetOrCreateSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Session))
	}
	return components.Session.Get(entry)
}
