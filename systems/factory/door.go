package factory

import (
	"math"

	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/leveldata"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDoor builds a door from its level description. The door's Object
// is the interaction zone and the closed leaf is a solid panel.
func CreateDoor(ecs *ecs.ECS, d leveldata.Door) *donburi.Entry {
	door := archetypes.Door.Spawn(ecs)

	zone := motion.NewRect(d.Zone.X, d.Zone.Z, d.Zone.W, d.Zone.D, tags.ResolvDoor)
	zone.Data = door.Entity()
	components.Object.SetValue(door, components.ObjectData{Object: zone})
	addToSpace(ecs, zone)

	width := d.Width
	if width <= 0 {
		width = cfg.Door.Width
	}
	openAngle := d.OpenAngle
	if openAngle == 0 {
		openAngle = cfg.Door.OpenAngle
	}
	speed := d.OpenSpeed
	if speed <= 0 {
		speed = cfg.Door.OpenSpeed
	}

	data := components.DoorData{
		Name:      d.Name,
		Hinge:     d.Hinge,
		ClosedYaw: d.Yaw,
		Width:     width,
		OpenAngle: mgl64.DegToRad(openAngle),
		Speed:     speed,
		AutoClose: d.AutoClose,
		Locked:    d.Locked,
	}

	// The panel covers the closed leaf's bounding box, thickened so thin
	// axis-aligned leaves still block.
	end := data.PanelEnd()
	half := cfg.Door.Thickness / 2
	minX, maxX := math.Min(d.Hinge.X(), end.X())-half, math.Max(d.Hinge.X(), end.X())+half
	minZ, maxZ := math.Min(d.Hinge.Z(), end.Z())-half, math.Max(d.Hinge.Z(), end.Z())+half
	panel := motion.NewRect(minX, minZ, maxX-minX, maxZ-minZ, tags.ResolvSolid)
	panel.Data = door.Entity()
	data.Panel = panel
	data.Space = addToSpace(ecs, panel)

	components.Door.SetValue(door, data)
	return door
}
