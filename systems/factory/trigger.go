package factory

import (
	"github.com/automoto/dreadhall/archetypes"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/automoto/dreadhall/leveldata"
	"github.com/automoto/dreadhall/motion"
	"github.com/automoto/dreadhall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateTrigger(ecs *ecs.ECS, t leveldata.Trigger) *donburi.Entry {
	trigger := archetypes.Trigger.Spawn(ecs)

	obj := motion.NewRect(t.Zone.X, t.Zone.Z, t.Zone.W, t.Zone.D, tags.ResolvTrigger)
	obj.Data = trigger.Entity()
	components.Object.SetValue(trigger, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Trigger.SetValue(trigger, components.TriggerData{
		Kind:    cfg.TriggerKind(t.Kind),
		Target:  t.Target,
		OneShot: t.OneShot,
	})
	return trigger
}
