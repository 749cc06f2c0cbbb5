package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Remaining float64 // seconds
	Elapsed   float64
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks a hit flash on an actor
type FlashData struct {
	Remaining float64 // seconds
	R, G, B   float32
}

var Flash = donburi.NewComponentType[FlashData]()

// AutoDestroyData marks entities that are removed once Remaining runs out
type AutoDestroyData struct {
	Remaining float64 // seconds
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
