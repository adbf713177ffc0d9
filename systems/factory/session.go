package factory

import (
	"github.com/automoto/rocketview/archetypes"
	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSession(ecs *ecs.ECS, session components.SessionData) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.Set(entry, &session)
	return entry
}

func CreateControls(ecs *ecs.ECS, bindings input.Bindings) *donburi.Entry {
	entry := archetypes.Controls.Spawn(ecs)
	components.Controls.Set(entry, &components.ControlsData{
		Controls: input.NewControls(bindings),
		Gamepads: make(map[ebiten.GamepadID]struct{}),
	})
	return entry
}
