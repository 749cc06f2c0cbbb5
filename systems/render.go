package systems

import (
	"image/color"

	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	enemyBarWidth  = 30
	enemyBarHeight = 4
)

var flashColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// view maps world XZ meters to screen pixels around the camera.
type view struct {
	cx, cy float64 // camera center in meters
	ox, oy float64 // screen center plus shake, in pixels
	ppm    float64
	width  float64
	height float64
}

func newView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	return view{
		cx:     camera.Position.X,
		cy:     camera.Position.Y,
		ox:     w/2 + camera.Shake.X,
		oy:     h/2 + camera.Shake.Y,
		ppm:    cfg.View.PixelsPerMeter,
		width:  w,
		height: h,
	}, true
}

func (v view) point(p mgl64.Vec3) (float32, float32) {
	return float32((p.X()-v.cx)*v.ppm + v.ox), float32((p.Z()-v.cy)*v.ppm + v.oy)
}

func (v view) visible(x, y, pad float32) bool {
	return x >= -pad && y >= -pad && x <= float32(v.width)+pad && y <= float32(v.height)+pad
}

// rect draws a collision object, whose bounds are in space units.
func (v view) rect(screen *ebiten.Image, obj *resolv.Object, c color.Color) {
	x, y := v.point(toWorld(obj.X, obj.Y))
	s := float32(v.ppm / cfg.CollisionScale)
	vector.FillRect(screen, x, y, float32(obj.W)*s, float32(obj.H)*s, c, false)
}

// toWorld converts collision space coordinates to a floor position.
func toWorld(x, y float64) mgl64.Vec3 {
	return mgl64.Vec3{x / cfg.CollisionScale, 0, y / cfg.CollisionScale}
}

// DrawWorld renders the level from above: walls, doors, trigger zones,
// pieces, enemies and the player.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.View.Background)
	v, ok := newView(ecs, screen)
	if !ok {
		return
	}

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		v.rect(screen, components.Object.Get(e).Object, cfg.View.WallColor)
	})
	if cfg.View.ShowTriggers {
		tags.Trigger.Each(ecs.World, func(e *donburi.Entry) {
			v.rect(screen, components.Object.Get(e).Object, cfg.View.TriggerColor)
		})
	}
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Door.Get(e)
		x0, y0 := v.point(d.Hinge)
		x1, y1 := v.point(d.PanelEnd())
		vector.StrokeLine(screen, x0, y0, x1, y1, float32(cfg.Door.Thickness*v.ppm)+2, cfg.View.DoorColor, true)
	})

	tags.Piece.Each(ecs.World, func(e *donburi.Entry) {
		drawPiece(screen, v, e)
	})
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawEnemy(screen, v, e)
	})
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		drawPlayer(screen, v, e)
	})
}

func drawPiece(screen *ebiten.Image, v view, e *donburi.Entry) {
	piece := components.Piece.Get(e)
	t := components.Transform.Get(e)
	x, y := v.point(t.Position)
	size := float32(piece.Size * v.ppm)
	if !v.visible(x, y, size) {
		return
	}

	// Fade out over the last second of the piece's life
	c := piece.Color
	if e.HasComponent(components.AutoDestroy) {
		if left := components.AutoDestroy.Get(e).Remaining; left < 1 {
			c = scaleAlpha(c, max(0, left))
		}
	}
	vector.FillRect(screen, x-size/2, y-size/2, size, size, c, false)
}

func drawEnemy(screen *ebiten.Image, v view, e *donburi.Entry) {
	visual := components.Visual.Get(e)
	if !visual.Visible {
		return
	}
	t := components.Transform.Get(e)
	x, y := v.point(t.Position)
	r := float32(visual.Radius * v.ppm)
	if !v.visible(x, y, r*3) {
		return
	}

	flashing := e.HasComponent(components.Flash) && components.Flash.Get(e).Remaining > 0
	body := color.Color(visual.Color)
	if flashing {
		body = flashColor
	}
	vector.FillCircle(screen, x, y, r, body, true)

	for _, part := range visual.Parts {
		px, py := v.point(t.Position.Add(t.Rotation.Rotate(part.Offset)))
		s := float32(part.Size * v.ppm)
		c := color.Color(part.Color)
		if flashing {
			c = flashColor
		}
		vector.FillRect(screen, px-s/2, py-s/2, s, s, c, false)
	}

	fx, fy := v.point(t.Position.Add(components.Planar(t.Forward()).Mul(visual.Radius * 1.5)))
	vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.Black, true)

	if e.HasComponent(components.HealthBar) && components.HealthBar.Get(e).TimeToLive > 0 {
		drawEnemyHealthBar(screen, x, y-r-8, components.Health.Get(e))
	}
}

func drawEnemyHealthBar(screen *ebiten.Image, cx, top float32, h *components.HealthData) {
	if h.Max <= 0 {
		return
	}
	left := cx - enemyBarWidth/2
	vector.FillRect(screen, left, top, enemyBarWidth, enemyBarHeight, cfg.View.HealthBarBg, false)
	ratio := float32(h.Current) / float32(h.Max)
	vector.FillRect(screen, left, top, enemyBarWidth*ratio, enemyBarHeight, cfg.View.HealthBarFg, false)
}

func drawPlayer(screen *ebiten.Image, v view, e *donburi.Entry) {
	t := components.Transform.Get(e)
	x, y := v.point(t.Position)

	if src := components.DamageSource.Get(e); src.Enabled && src.Zone != nil {
		v.rect(screen, src.Zone, cfg.View.WeaponColor)
	}

	c := color.Color(cfg.View.PlayerColor)
	if components.Flash.Get(e).Remaining > 0 {
		c = cfg.Red
	}
	vector.FillCircle(screen, x, y, float32(cfg.Player.Radius*v.ppm), c, true)

	fx, fy := v.point(t.Position.Add(components.Planar(t.Forward()).Mul(cfg.Player.Radius * 2)))
	vector.StrokeLine(screen, x, y, fx, fy, 2, cfg.View.PlayerColor, true)
}

// scaleAlpha fades a premultiplied color by f.
func scaleAlpha(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
