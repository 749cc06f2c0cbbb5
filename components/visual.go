package components

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// Part is one visual sub-part of an actor, positioned relative to the
// actor's origin in its local frame.
type Part struct {
	Name    string
	Offset  mgl64.Vec3
	Size    float64
	Color   color.RGBA
	HasBody bool
}

type VisualData struct {
	Parts   []Part
	Visible bool
	Color   color.RGBA
	Radius  float64
	Height  float64
}

var Visual = donburi.NewComponentType[VisualData]()

// PieceData is a detached part of a dead actor. Pieces carry a Body, an
// Object and an AutoDestroy; nothing else mutates them.
type PieceData struct {
	Name  string
	Owner string
	Size  float64
	Color color.RGBA
}

var Piece = donburi.NewComponentType[PieceData]()
