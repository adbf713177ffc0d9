package factory

import (
	"github.com/automoto/rocketview/archetypes"
	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBodies spawns the car and ball at the engine's current state.
func CreateBodies(ecs *ecs.ECS, engine physics.Engine) (car, ball *donburi.Entry) {
	s := engine.State()

	car = archetypes.Car.Spawn(ecs)
	components.Body.Set(car, &components.BodyData{
		Pos:      s.CarPos,
		Ang:      s.CarAng,
		WheelPos: s.WheelPos,
		WheelAng: s.WheelAng,
	})
	components.CarShape.Set(car, &components.CarShapeData{Config: engine.CarConfig()})

	ball = archetypes.Ball.Spawn(ecs)
	components.Body.Set(ball, &components.BodyData{Pos: s.BallPos, Ang: s.BallAng})

	return car, ball
}
