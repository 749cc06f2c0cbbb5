package components

import "github.com/yohamta/donburi"

// HUDData holds the text the HUD draws. It is refreshed from health events
// rather than polled.
type HUDData struct {
	Health    int
	MaxHealth int
	Text      string
	Kills     int
}

var HUD = donburi.NewComponentType[HUDData]()
