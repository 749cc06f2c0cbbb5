package scenes

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/automoto/dreadhall/assets"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/leveldata"
	"github.com/automoto/dreadhall/systems"
	"github.com/automoto/dreadhall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene runs the level and acts on the session outcome after each
// tick: dying or restarting rebuilds the world in place, winning or leaving
// returns to the title screen.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	level        *leveldata.Level
	fader        *systems.Fader
	rnd          *rand.Rand
	once         sync.Once
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		fader:        systems.NewFader(),
		rnd:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.ecs == nil {
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}
	ws.ecs.Update()

	switch systems.GetOrCreateSession(ws.ecs).Outcome {
	case components.SessionDied:
		ws.recordRun(false)
		ws.build()
		ws.fader.FadeIn(-1, nil)
	case components.SessionRestarted:
		ws.build()
	case components.SessionWon:
		ws.recordRun(true)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	case components.SessionLeft:
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	case components.SessionQuit:
		ws.sceneChanger.Quit()
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	level, err := assets.LoadLevel(assets.DefaultLevel)
	if err != nil {
		log.Printf("[world] could not load level %s: %v", assets.DefaultLevel, err)
		return
	}
	ws.level = level
	ws.build()
}

// build replaces the world with a fresh copy of the level.
func (ws *WorldScene) build() {
	world := donburi.NewWorld()
	systems.RegisterEventHandlers(world)
	e := ecs.NewECS(world)

	// Clock and input run first so every later system sees this tick's state
	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSession)
	e.AddSystem(systems.UpdateDebugKeys)

	// Game systems wrapped with pause and finish checks
	e.AddSystem(systems.WithGameplayChecks(systems.UpdatePlayer))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFollow))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateFlicker))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateStarfish))
	e.AddSystem(systems.WithGameplayChecks(systems.NewSpawnerSystem(factory.SpawnEnemy)))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateBodies))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateObjects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDamageSources))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDeaths))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateDoors))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateTriggers))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))
	e.AddSystem(systems.WithGameplayChecks(systems.UpdateCamera))

	// Sequences that must keep running after gameplay freezes
	e.AddSystem(systems.NewPlayerDeathSystem(ws.fader))
	e.AddSystem(systems.NewFinishSystem(ws.fader))
	e.AddSystem(func(*ecs.ECS) { ws.fader.Update(cfg.Dt) })
	e.AddSystem(systems.UpdateOutcome)

	e.AddSystem(systems.UpdateAudio)
	e.AddSystem(systems.ProcessEvents)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) { ws.fader.Draw(screen) })
	e.AddRenderer(cfg.Default, systems.DrawFinish)
	e.AddRenderer(cfg.Default, systems.DrawPauseMenu)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ws.ecs = e
	factory.CreateLevel(e, ws.level, ws.rnd)
	systems.PlayMusic(e, cfg.SoundAmbience)
}

func (ws *WorldScene) recordRun(won bool) {
	kills := systems.GetOrCreateHUD(ws.ecs.World).Kills
	seconds := systems.GetOrCreateClock(ws.ecs.World).Elapsed
	r, err := systems.RecordRun(won, kills, seconds)
	if err != nil {
		log.Printf("[world] run record not saved: %v", err)
	}
	log.Printf("[world] run over (won=%v, %d kills, %.1fs); %d runs recorded", won, kills, seconds, r.Runs)
}
