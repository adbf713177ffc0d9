package components

import (
	"github.com/automoto/rocketview/physics"
	"github.com/yohamta/donburi"
)

// BodyData is the latest pose of a car or ball, in world units with Y up.
type BodyData struct {
	Pos physics.Vec3
	Ang physics.Vec3

	WheelPos []physics.Vec3
	WheelAng []physics.Vec3
}

var Body = donburi.NewComponentType[BodyData]()

type CarShapeData struct {
	Config physics.CarConfig
}

var CarShape = donburi.NewComponentType[CarShapeData]()
