package core

import (
	"math"

	"github.com/automoto/rocketview/physics"
	"github.com/automoto/rocketview/shared/gamemath"
)

const (
	autopilotSteerGain = 2.0
	autopilotBoostCone = 0.2 // rad
	autopilotBoostDist = 1500.0
	autopilotSlideCone = 2.0 // rad
)

// Autopilot chases the ball: full throttle, steering towards it, boosting
// when lined up and far, handbraking when it is behind.
func Autopilot(s physics.State) physics.CarControls {
	dx := s.BallPos[0] - s.CarPos[0]
	dz := s.BallPos[2] - s.CarPos[2]

	off := gamemath.WrapAngle(math.Atan2(dz, dx) - s.CarAng[1])
	dist := math.Hypot(dx, dz)

	return physics.CarControls{
		Throttle:  1,
		Steer:     gamemath.Clamp(off*autopilotSteerGain, -1, 1),
		Boost:     math.Abs(off) < autopilotBoostCone && dist > autopilotBoostDist,
		Handbrake: math.Abs(off) > autopilotSlideCone,
	}
}
