package systems

import (
	"log"

	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths runs the death sequence for actors that died this tick. The
// player is left to the system built by NewPlayerDeathSystem.
func UpdateDeaths(ecs *ecs.ECS) {
	var dying []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Handled || e.HasComponent(tags.Player) {
			return
		}
		death.Handled = true
		dying = append(dying, e)
	})

	for _, e := range dying {
		Die(ecs, e, components.Death.Get(e).Policy)
	}
}

// Die disables everything that lets e take part in gameplay and then applies
// policy: Decompose breaks the actor into timed pieces before removing it,
// SimpleDisable removes it outright. It returns the pieces it spawned.
func Die(ecs *ecs.ECS, e *donburi.Entry, policy cfg.DeathPolicy) []*donburi.Entry {
	disableActor(e)

	var pieces []*donburi.Entry
	switch policy {
	case cfg.DeathDecompose:
		PlaySFX(ecs, cfg.SoundDecompose)
		pieces = Decompose(ecs, e)
	default:
		PlaySFX(ecs, cfg.SoundDeath)
	}

	e.Remove()
	return pieces
}

// disableActor stops movement, melee and navigation and takes the actor's
// colliders out of the space.
func disableActor(e *donburi.Entry) {
	if e.HasComponent(components.Follow) {
		follow := components.Follow.Get(e)
		if follow.Backend != nil {
			follow.Backend.Halt(e)
		}
		follow.Disabled = true
		follow.Moving = false
	}
	DisableDamageSource(e)
	if e.HasComponent(components.Body) {
		body := components.Body.Get(e)
		body.Velocity = mgl64.Vec3{}
		body.Kinematic = true
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
}

// Decompose turns every visual part of e into a free piece with its own
// body and collider. Parts that never had a body get a default one sized
// like the part; cfg.Death.DefaultPiece only stands in for a missing size.
// Pieces are removed after cfg.Death.PieceLifetime.
func Decompose(ecs *ecs.ECS, e *donburi.Entry) []*donburi.Entry {
	if !e.HasComponent(components.Visual) || !e.HasComponent(components.Transform) {
		log.Printf("[death] entity %v has nothing to decompose", e.Entity())
		return nil
	}
	visual := components.Visual.Get(e)
	t := components.Transform.Get(e)

	owner := ""
	if e.HasComponent(components.Enemy) {
		owner = components.Enemy.Get(e).Type
	}

	var space *donburi.Entry
	if s, ok := components.Space.First(ecs.World); ok {
		space = s
	}

	pieces := make([]*donburi.Entry, 0, len(visual.Parts))
	for _, part := range visual.Parts {
		offset := t.Rotation.Rotate(part.Offset)
		pos := t.Position.Add(offset)

		size := part.Size
		if size <= 0 {
			size = cfg.Death.DefaultPiece
		}

		piece := archetypes.Piece.Spawn(ecs)
		components.Piece.SetValue(piece, components.PieceData{
			Name:  part.Name,
			Owner: owner,
			Size:  size,
			Color: part.Color,
		})
		components.Transform.SetValue(piece, components.TransformData{Position: pos, Rotation: t.Rotation})
		components.Body.SetValue(piece, components.BodyData{
			UseGravity: true,
			Friction:   cfg.Physics.Friction,
		})
		ApplyImpulse(piece, explosionImpulse(offset))
		components.AutoDestroy.SetValue(piece, components.AutoDestroyData{Remaining: cfg.Death.PieceLifetime})

		obj := motion.NewFootprint(pos, size, tags.ResolvPiece)
		obj.Data = piece.Entity()
		if space != nil {
			components.Space.Get(space).Add(obj)
		}
		components.Object.SetValue(piece, components.ObjectData{Object: obj})

		pieces = append(pieces, piece)
	}
	return pieces
}

// explosionImpulse pushes a piece away from the actor's center along its
// offset, with some lift. It is zero when the explosion force is off.
func explosionImpulse(offset mgl64.Vec3) mgl64.Vec3 {
	if cfg.Death.ExplosionForce <= 0 {
		return mgl64.Vec3{}
	}
	dir := components.Planar(offset)
	if dir.Len() < 1e-9 {
		dir = mgl64.Vec3{}
	} else {
		dir = dir.Normalize()
	}
	dir = dir.Add(cfg.Up.Mul(cfg.Death.ExplosionLift))
	if dir.Len() < 1e-9 {
		return mgl64.Vec3{}
	}
	return dir.Normalize().Mul(cfg.Death.ExplosionForce)
}
