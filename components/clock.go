package components

import "github.com/yohamta/donburi"

// ClockData is the per-tick time source. Systems read Dt instead of the
// wall clock so sequences can be stepped in tests.
type ClockData struct {
	Dt      float64
	Elapsed float64
	Ticks   int
}

var Clock = donburi.NewComponentType[ClockData]()
