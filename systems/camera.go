package systems

import (
	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases any pending telemetry settings and recomputes the view
// from the current car and ball.
// Must run AFTER UpdateSimulation in the system order.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if camera.Ease.Active() {
		camera.Ease.Update(&camera.Follow, 1/float32(ebiten.TPS()))
	}

	carEntry, ok := tags.Car.First(e.World)
	if !ok {
		return
	}
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	car := components.Body.Get(carEntry)
	ball := components.Body.Get(ballEntry)

	camera.View = camera.Follow.Update(car.Pos, car.Ang, ball.Pos)
}
