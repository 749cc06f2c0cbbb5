package systems

import (
	"fmt"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/fonts"
	"github.com/automoto/dreadhall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

// onHealthChanged mirrors the player's health into the HUD.
func onHealthChanged(w donburi.World, ev components.HealthChangedEvent) {
	if !w.Valid(ev.Entity) || !w.Entry(ev.Entity).HasComponent(tags.Player) {
		return
	}
	hud := GetOrCreateHUD(w)
	hud.Health = ev.Current
	hud.MaxHealth = ev.Max
	hud.Text = formatHealth(ev.Current, ev.Max)
}

func onDied(w donburi.World, ev components.DiedEvent) {
	if ev.Player {
		return
	}
	GetOrCreateHUD(w).Kills++
}

func formatHealth(current, max int) string {
	return fmt.Sprintf("Health: %d / %d", current, max)
}

// DrawHUD renders the player's health bar, health text and kill count in
// the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	hud := GetOrCreateHUD(ecs.World)
	if hud.MaxHealth <= 0 {
		return
	}

	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		cfg.View.HealthBarBg, false)

	ratio := float32(hud.Health) / float32(hud.MaxHealth)
	vector.FillRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		cfg.View.HealthBarFg, false)

	face := fonts.Regular.Get()
	text.Draw(screen, hud.Text, face, hudMargin, hudMargin+hudBarHeight+18, cfg.View.HUDTextColor)
	if hud.Kills > 0 {
		text.Draw(screen, fmt.Sprintf("Kills: %d", hud.Kills), fonts.Small.Get(), hudMargin, hudMargin+hudBarHeight+36, cfg.View.HUDTextColor)
	}
}

// GetOrCreateHUD returns the singleton HUD component.
func GetOrCreateHUD(w donburi.World) *components.HUDData {
	entry, ok := components.HUD.First(w)
	if !ok {
		entry = w.Entry(w.Create(components.HUD))
	}
	return components.HUD.Get(entry)
}

// SyncHUD seeds the HUD from the player's current health. Health events
// only report changes, so the level calls this once after spawning.
func SyncHUD(w donburi.World) {
	player, ok := tags.Player.First(w)
	if !ok || !player.HasComponent(components.Health) {
		return
	}
	h := components.Health.Get(player)
	hud := GetOrCreateHUD(w)
	hud.Health = h.Current
	hud.MaxHealth = h.Max
	hud.Text = formatHealth(h.Current, h.Max)
}
