// Package motion moves actors through the level: the follow backends and the
// collision-aware translation they share with the player and free bodies.
package motion

import (
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// NewFootprint returns a square collision object of side size meters
// centered on p.
func NewFootprint(p mgl64.Vec3, size float64, objTags ...string) *resolv.Object {
	half := size / 2
	return resolv.NewObject(
		(p.X()-half)*cfg.CollisionScale,
		(p.Z()-half)*cfg.CollisionScale,
		size*cfg.CollisionScale,
		size*cfg.CollisionScale,
		objTags...,
	)
}

// NewRect returns a collision object covering a floor rectangle in meters.
func NewRect(x, z, w, d float64, objTags ...string) *resolv.Object {
	return resolv.NewObject(x*cfg.CollisionScale, z*cfg.CollisionScale, w*cfg.CollisionScale, d*cfg.CollisionScale, objTags...)
}

// Place centers obj on p.
func Place(obj *resolv.Object, p mgl64.Vec3) {
	obj.X = p.X()*cfg.CollisionScale - obj.W/2
	obj.Y = p.Z()*cfg.CollisionScale - obj.H/2
	if obj.Space != nil {
		obj.Update()
	}
}

// SyncObject moves e's collision object to its transform.
func SyncObject(e *donburi.Entry) {
	if !e.HasComponent(components.Object) || !e.HasComponent(components.Transform) {
		return
	}
	obj := components.Object.Get(e).Object
	if obj == nil {
		return
	}
	Place(obj, components.Transform.Get(e).Position)
}

// Overlapping returns the objects carrying any of objTags whose bounds
// intersect obj offset by (dx, dy) space units. resolv only reports shared
// cells, so the result is narrowed with an exact bounds test.
func Overlapping(obj *resolv.Object, dx, dy float64, objTags ...string) []*resolv.Object {
	if obj == nil || obj.Space == nil {
		return nil
	}
	check := obj.Check(dx, dy, objTags...)
	if check == nil {
		return nil
	}
	var hits []*resolv.Object
	for _, o := range check.Objects {
		if o == obj {
			continue
		}
		if obj.X+dx < o.X+o.W && o.X < obj.X+dx+obj.W && obj.Y+dy < o.Y+o.H && o.Y < obj.Y+dy+obj.H {
			hits = append(hits, o)
		}
	}
	return hits
}

// Translate moves e by d, sliding along solid geometry on the floor plane.
// Vertical motion is applied unchanged. It returns the displacement applied.
func Translate(e *donburi.Entry, d mgl64.Vec3) mgl64.Vec3 {
	t := components.Transform.Get(e)

	var obj *resolv.Object
	if e.HasComponent(components.Object) {
		obj = components.Object.Get(e).Object
	}
	if obj == nil || obj.Space == nil {
		t.Position = t.Position.Add(d)
		return d
	}

	applied := mgl64.Vec3{0, d.Y(), 0}
	if dx := d.X() * cfg.CollisionScale; dx != 0 && len(Overlapping(obj, dx, 0, tags.ResolvSolid)) == 0 {
		applied[0] = d.X()
		obj.X += dx
	}
	if dz := d.Z() * cfg.CollisionScale; dz != 0 && len(Overlapping(obj, 0, dz, tags.ResolvSolid)) == 0 {
		applied[2] = d.Z()
		obj.Y += dz
	}
	obj.Update()

	t.Position = t.Position.Add(applied)
	return applied
}

// PlanarDirection returns the normalized horizontal direction from -> to,
// or the zero vector when they share a column.
func PlanarDirection(from, to mgl64.Vec3) mgl64.Vec3 {
	d := components.Planar(to.Sub(from))
	if d.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return d.Normalize()
}
