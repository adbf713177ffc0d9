package archetypes

import (
	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Car = newArchetype(
		tags.Car,
		components.Body,
		components.CarShape,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Body,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Controls = newArchetype(
		components.Controls,
	)
	Session = newArchetype(
		components.Session,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
