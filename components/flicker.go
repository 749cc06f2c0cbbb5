package components

import (
	"math/rand"

	cfg "github.com/automoto/dreadhall/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// FlickerData drives the boss activation sequence: flicker, vanish, teleport,
// then engage.
type FlickerData struct {
	Phase cfg.FlickerPhase

	Duration      float64
	MinInterval   float64
	MaxInterval   float64
	TeleportDelay float64

	// Timer counts down to the next toggle, or to the teleport while hidden.
	Timer float64
	// Elapsed is the sum of all toggle waits drawn so far.
	Elapsed float64
	Toggles int

	Destination    mgl64.Vec3
	DestinationYaw float64
	HasDestination bool

	Rand *rand.Rand
}

var Flicker = donburi.NewComponentType[FlickerData]()
