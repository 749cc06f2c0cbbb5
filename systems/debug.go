package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/fonts"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var debugOverlay bool

// UpdateDebugKeys handles developer shortcuts: F3 toggles the collision
// overlay, F4 the trigger zones, H hurts the player and J heals them.
func UpdateDebugKeys(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		debugOverlay = !debugOverlay
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF4) {
		cfg.View.ShowTriggers = !cfg.View.ShowTriggers
	}

	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		TakeDamage(ecs.World, player, 10)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		Heal(ecs.World, player, 10)
	}
}

func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugOverlay {
		return
	}
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{100, 100, 100, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvEnemy) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvDamage) {
				c = color.RGBA{255, 160, 0, 255} // Orange
			}

			x0, y0 := v.point(toWorld(obj.X, obj.Y))
			x1, y1 := v.point(toWorld(obj.X+obj.W, obj.Y+obj.H))
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, c, false)
		}
	}

	// Navigation paths
	components.Follow.Each(ecs.World, func(e *donburi.Entry) {
		nav, ok := components.Follow.Get(e).Backend.(*motion.NavMotion)
		if !ok || !e.HasComponent(components.Transform) {
			return
		}
		px, py := v.point(components.Transform.Get(e).Position)
		for _, wp := range nav.Path() {
			x, y := v.point(wp)
			vector.StrokeLine(screen, px, py, x, y, 1, color.RGBA{255, 255, 0, 255}, false)
			px, py = x, y
		}
	})

	components.Flicker.Each(ecs.World, func(e *donburi.Entry) {
		fl := components.Flicker.Get(e)
		msg := fmt.Sprintf("boss: %s  toggles %d  %.2fs", fl.Phase, fl.Toggles, fl.Elapsed)
		text.Draw(screen, msg, fonts.Small.Get(), 10, screen.Bounds().Dy()-12, cfg.White)
	})
}
