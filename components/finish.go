package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type FinishPhase int

const (
	FinishIdle FinishPhase = iota
	FinishText
	FinishPause
	FinishFade
	FinishHold
	FinishDone
)

// FinishData stores the state of the win sequence
type FinishData struct {
	Phase     FinishPhase
	Timer     float64
	TextAlpha float64
	TextFade  *gween.Tween
}

var Finish = donburi.NewComponentType[FinishData]()
