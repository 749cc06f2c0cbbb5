package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/fonts"
	"github.com/automoto/dreadhall/scenes"
	"github.com/automoto/dreadhall/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	tuning *config.TuningWatcher
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.pollTuning()
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// pollTuning applies tuning file edits between ticks, on the game goroutine.
func (g *Game) pollTuning() {
	if g.tuning == nil {
		return
	}
	select {
	case <-g.tuning.Changed:
		if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
			log.Printf("[tuning] reload failed, keeping previous values: %v", err)
			return
		}
		log.Printf("[tuning] reloaded %s", config.Debug.TuningPath)
	case err := <-g.tuning.Errors:
		log.Printf("[tuning] watcher: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "start in the level instead of the menu")
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "YAML file overriding gameplay values")
	flag.BoolVar(&config.Debug.WatchTune, "watch", false, "reload the tuning file when it changes")
	flag.Parse()

	if config.Debug.TuningPath != "" {
		if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Dread Hall")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.TickRate)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	systems.PreloadAllSFX()

	game := NewGame()
	if config.Debug.TuningPath != "" && config.Debug.WatchTune {
		tw, err := config.WatchTuning(config.Debug.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch tuning file: %v", err)
		} else {
			defer tw.Close()
			game.tuning = tw
		}
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
