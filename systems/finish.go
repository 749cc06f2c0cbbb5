package systems

import (
	"image/color"
	"log"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// StartFinish begins the win sequence. It runs once per level.
func StartFinish(ecs *ecs.ECS) bool {
	finish := GetOrCreateFinish(ecs)
	if finish.Phase != components.FinishIdle {
		return false
	}
	finish.Phase = components.FinishText
	finish.TextAlpha = 0
	finish.TextFade = gween.New(0, 1, float32(cfg.Finish.TextFade), ease.Linear)
	PlaySFX(ecs, cfg.SoundWin)
	FadeOutMusic(ecs)
	log.Printf("[finish] player reached the exit")
	return true
}

// NewFinishSystem returns the system that plays the win sequence: fade the
// text in, wait, fade the screen out through fader, then hold.
func NewFinishSystem(fader *Fader) ecs.System {
	return func(ecs *ecs.ECS) {
		finish := GetOrCreateFinish(ecs)
		dt := deltaTime(ecs.World)

		switch finish.Phase {
		case components.FinishText:
			v, done := finish.TextFade.Update(float32(dt))
			finish.TextAlpha = float64(v)
			if done {
				finish.TextFade = nil
				finish.Phase = components.FinishPause
				finish.Timer = cfg.Finish.Pause
			}
		case components.FinishPause:
			finish.Timer -= dt
			if finish.Timer > 0 {
				return
			}
			finish.Phase = components.FinishFade
			fader.FadeOut(cfg.Finish.FadeColor, cfg.Finish.FadeDuration, func() {
				finish.Phase = components.FinishHold
				finish.Timer = cfg.Finish.DisplayDuration
			})
		case components.FinishHold:
			finish.Timer -= dt
			if finish.Timer <= 0 {
				finish.Phase = components.FinishDone
			}
		}
	}
}

// FinishActive reports whether the win sequence has started. Gameplay
// freezes while it runs.
func FinishActive(ecs *ecs.ECS) bool {
	return GetOrCreateFinish(ecs).Phase != components.FinishIdle
}

// FinishComplete reports whether the win sequence has run to the end.
func FinishComplete(ecs *ecs.ECS) bool {
	return GetOrCreateFinish(ecs).Phase == components.FinishDone
}

// DrawFinish renders the win text. It is drawn over the fade.
func DrawFinish(ecs *ecs.ECS, screen *ebiten.Image) {
	finish := GetOrCreateFinish(ecs)
	if finish.Phase == components.FinishIdle {
		return
	}

	alpha := finish.TextAlpha
	if finish.Phase != components.FinishText {
		alpha = 1
	}
	c := color.NRGBA{R: cfg.DarkRed.R, G: cfg.DarkRed.G, B: cfg.DarkRed.B, A: uint8(255 * alpha)}

	face := fonts.Title.Get()
	width := float64(screen.Bounds().Dx())
	y := screen.Bounds().Dy() / 2
	text.Draw(screen, cfg.Finish.Text, face, centerTextX(cfg.Finish.Text, face, width), y, c)
}

// centerTextX returns the x at which s is horizontally centered.
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	return int((screenWidth - float64(bounds.Dx())) / 2)
}

// GetOrCreateFinish returns the singleton Finish component.
func GetOrCreateFinish(ecs *ecs.ECS) *components.FinishData {
	entry, ok := components.Finish.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Finish))
	}
	return components.Finish.Get(entry)
}
