package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/systems"
	"github.com/automoto/dreadhall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	menuUI       *ui.MainMenuUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.Update()

	if ms.shouldStart {
		systems.StopMusic(ms.ecs)
		ms.sceneChanger.ChangeScene(NewWorldScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	// Audio system (runs first to initialize audio context)
	ms.ecs.AddSystem(systems.UpdateAudio)

	settings := ui.MenuSettings{
		MusicVolume: systems.GetMusicVolume(),
		SFXVolume:   systems.GetSFXVolume(),
		Fullscreen:  ebiten.IsFullscreen(),
	}
	ms.menuUI = ui.NewMainMenuUI(
		settings,
		formatRecord(systems.LoadRunRecord()),
		func() { ms.shouldStart = true },
		func() { ms.sceneChanger.Quit() },
		ms.applySettings,
	)

	systems.PlayMusic(ms.ecs, cfg.SoundAmbience)
}

func (ms *MenuScene) applySettings(s ui.MenuSettings) {
	systems.SetMusicVolume(s.MusicVolume)
	systems.SetSFXVolume(s.SFXVolume)
	ebiten.SetFullscreen(s.Fullscreen)
	systems.PlaySFX(ms.ecs, cfg.SoundMenuNavigate)
	if err := systems.SaveSettings(systems.CurrentSettings(s.MusicVolume == 0 && s.SFXVolume == 0)); err != nil {
		log.Printf("[menu] settings not saved: %v", err)
	}
}

func formatRecord(r systems.RunRecord) string {
	if r.Runs == 0 {
		return "No one has entered the hall yet."
	}
	best := "-"
	if r.BestTime > 0 {
		best = fmt.Sprintf("%.1fs", r.BestTime)
	}
	return fmt.Sprintf("Runs %d   Escapes %d   Deaths %d   Kills %d   Best %s",
		r.Runs, r.Wins, r.Deaths, r.Kills, best)
}
