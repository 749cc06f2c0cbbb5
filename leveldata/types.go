// Package leveldata parses TMX level files into plain data. It has no
// dependencies on ebitengine, donburi or resolv.
//
// Tiled is a 2D editor, so the map is the floor plan: map X is world X and
// map Y is world Z. Pixel coordinates are converted to meters with the map's
// pixels_per_meter property.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// DefaultPixelsPerMeter is used when the map does not set pixels_per_meter.
const DefaultPixelsPerMeter = 32.0

// Level holds everything parsed from a TMX level file. All units are meters.
type Level struct {
	Name  string
	Width float64
	Depth float64

	Walls           []Rect
	PlayerSpawn     Spawn
	Enemies         []Actor
	Boss            *Actor
	BossDestination *Spawn
	Doors           []Door
	Triggers        []Trigger
	Spawners        []Spawner
}

// Rect is an axis-aligned floor rectangle.
type Rect struct {
	X, Z, W, D float64
}

// Center returns the middle of the rectangle on the floor.
func (r Rect) Center() mgl64.Vec3 {
	return mgl64.Vec3{r.X + r.W/2, 0, r.Z + r.D/2}
}

// Spawn is a position with a facing, yaw in radians.
type Spawn struct {
	Position mgl64.Vec3
	Yaw      float64
}

type Actor struct {
	Type string
	Spawn
}

type Door struct {
	Name      string
	Zone      Rect
	Hinge     mgl64.Vec3
	Yaw       float64
	Width     float64
	OpenAngle float64 // degrees, 0 uses the default
	OpenSpeed float64 // 0 uses the default
	AutoClose bool
	Locked    bool
}

type Trigger struct {
	Kind    string
	Target  string
	Zone    Rect
	OneShot bool
}

type Spawner struct {
	Name      string
	EnemyType string
	Count     int
	Delay     float64
	Ceiling   bool
	Points    []Spawn
}
