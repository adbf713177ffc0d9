package factory

import (
	"github.com/automoto/rocketview/archetypes"
	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/config"
	"github.com/automoto/rocketview/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Follow: gamemath.FollowCamera{
			Distance: config.Camera.Distance,
			Height:   config.Camera.Height,
			Offset:   config.Camera.Offset,
			Pitch:    config.Camera.Pitch,
			FOV:      config.Camera.FOV,
			Ballcam:  config.Camera.Ballcam,
		},
		Ease: gamemath.CameraEase{Seconds: config.Camera.EaseSeconds},
	})
	return camera
}
