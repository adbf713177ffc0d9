// Package physics defines the boundary to the vehicle simulation and ships
// an arcade stand-in used when the native engine is not linked.
package physics

// TickRate is the number of simulation ticks per second. A frame loop at
// 60 Hz steps twice per frame.
const TickRate = 120

// BallRadius is the ball's collision radius in world units.
const BallRadius = 91.25

// Vec3 is an (x, y, z) triple with Y up.
type Vec3 = [3]float64

// CarControls is the control record pushed into the engine each frame.
// Analog fields are in [-1, 1].
type CarControls struct {
	Throttle  float64
	Steer     float64
	Pitch     float64
	Yaw       float64
	Roll      float64
	Boost     bool
	Jump      bool
	Handbrake bool
}

// State is the engine's view of the world after a step. Angles are Euler
// (x, y, z) in radians; CarAng[1] is the heading.
type State struct {
	CarPos  Vec3
	CarAng  Vec3
	BallPos Vec3
	BallAng Vec3

	WheelPos []Vec3
	WheelAng []Vec3
}

// CarConfig describes the car body.
type CarConfig struct {
	HitboxSize      Vec3
	HitboxPosOffset Vec3
	WheelRadius     float64
}

// Engine is the simulation contract. Implementations are not safe for
// concurrent use.
type Engine interface {
	Step(substeps int)
	State() State
	SetControls(c CarControls)
	CarConfig() CarConfig
	ResetToKickoff()
}
