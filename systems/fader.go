package systems

import (
	"image/color"

	cfg "github.com/automoto/dreadhall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader covers the screen with a color whose alpha is tweened. One Fader
// lives for the whole session and is handed to whoever needs it.
type Fader struct {
	color  color.RGBA
	alpha  float64
	tween  *gween.Tween
	onDone func()
}

func NewFader() *Fader {
	return &Fader{color: cfg.Black}
}

// FadeTo tweens the overlay alpha to target over duration seconds, switching
// the overlay color to c first. A fade already running is replaced and its
// callback dropped. A negative duration uses the default.
func (f *Fader) FadeTo(c color.RGBA, target, duration float64, onDone func()) {
	if duration < 0 {
		duration = cfg.Fade.DefaultDuration
	}
	f.color = c
	f.onDone = onDone
	if duration == 0 {
		f.alpha = target
		f.tween = nil
		f.finish()
		return
	}
	f.tween = gween.New(float32(f.alpha), float32(target), float32(duration), ease.Linear)
}

// FadeOut fades to fully opaque c.
func (f *Fader) FadeOut(c color.RGBA, duration float64, onDone func()) {
	f.FadeTo(c, 1, duration, onDone)
}

// FadeIn clears the overlay, keeping its current color.
func (f *Fader) FadeIn(duration float64, onDone func()) {
	f.FadeTo(f.color, 0, duration, onDone)
}

// Update advances the fade by dt seconds.
func (f *Fader) Update(dt float64) {
	if f.tween == nil {
		return
	}
	v, done := f.tween.Update(float32(dt))
	f.alpha = float64(v)
	if done {
		f.tween = nil
		f.finish()
	}
}

func (f *Fader) finish() {
	if cb := f.onDone; cb != nil {
		f.onDone = nil
		cb()
	}
}

func (f *Fader) Alpha() float64 { return f.alpha }

func (f *Fader) Color() color.RGBA { return f.color }

// Busy reports whether a fade is in progress.
func (f *Fader) Busy() bool { return f.tween != nil }

// Draw paints the overlay over the whole screen.
func (f *Fader) Draw(screen *ebiten.Image) {
	if f.alpha <= 0 {
		return
	}
	c := f.color
	c.A = uint8(float64(c.A) * min(1, f.alpha))
	// vector expects premultiplied alpha
	scale := float64(c.A) / 255
	c.R = uint8(float64(c.R) * scale)
	c.G = uint8(float64(c.G) * scale)
	c.B = uint8(float64(c.B) * scale)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), c, false)
}
