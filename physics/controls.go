package physics

import "github.com/automoto/rocketview/input"

// FromControlState maps a sampled control state onto the engine's control
// record. Ballcam and reset are client-side and never reach the engine.
func FromControlState(s input.ControlState) CarControls {
	return CarControls{
		Throttle:  s.Throttle.Value,
		Steer:     s.Steer.Value,
		Pitch:     s.Pitch.Value,
		Yaw:       s.Yaw.Value,
		Roll:      s.Roll.Value,
		Boost:     s.Boost.Value,
		Jump:      s.Jump.Value,
		Handbrake: s.Handbrake.Value,
	}
}
