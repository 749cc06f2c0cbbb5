package components

import (
	cfg "github.com/automoto/dreadhall/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StarfishData is a ceiling enemy that hangs, drops while flipping over and
// starts following once it lands.
type StarfishData struct {
	Phase    cfg.StarfishPhase
	Timer    float64
	StartYaw float64
	Flip     *gween.Tween
}

var Starfish = donburi.NewComponentType[StarfishData]()
