package components

import (
	"github.com/automoto/rocketview/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Follow gamemath.FollowCamera
	View   gamemath.View
	// Ease moves Follow towards settings received over telemetry.
	Ease gamemath.CameraEase
}

var Camera = donburi.NewComponentType[CameraData]()
