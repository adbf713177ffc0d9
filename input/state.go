package input

// AxisStatus is a bounded value in [-1, 1] and whether it differs from the
// previous sample.
type AxisStatus struct {
	Value   float64
	Changed bool
}

// ButtonStatus is a derived on/off value and whether it differs from the
// previous sample.
type ButtonStatus struct {
	Value   bool
	Changed bool
}

// JustPressed reports a rising edge.
func (b ButtonStatus) JustPressed() bool { return b.Value && b.Changed }

// JustReleased reports a falling edge.
func (b ButtonStatus) JustReleased() bool { return !b.Value && b.Changed }

// ControlState is the per-instant snapshot consumed by the simulation step.
type ControlState struct {
	Throttle AxisStatus
	Steer    AxisStatus
	Pitch    AxisStatus
	Yaw      AxisStatus
	Roll     AxisStatus

	Boost     ButtonStatus
	Jump      ButtonStatus
	Handbrake ButtonStatus
	Ballcam   ButtonStatus
	Reset     ButtonStatus
}

// controlValues is a ControlState without change flags.
type controlValues struct {
	throttle, steer, pitch, yaw, roll      float64
	boost, jump, handbrake, ballcam, reset bool
}

func deriveControls(v Values) controlValues {
	out := controlValues{
		throttle:  v[ChannelThrottle],
		steer:     v[ChannelSteer],
		pitch:     v[ChannelPitch],
		yaw:       v[ChannelYaw],
		roll:      v[ChannelRoll],
		boost:     v[ChannelBoost] != 0,
		jump:      v[ChannelJump] != 0,
		handbrake: v[ChannelHandbrake] != 0,
		ballcam:   v[ChannelBallcam] != 0,
		reset:     v[ChannelReset] != 0,
	}

	// roll2 turns a share of yaw into roll, proportionally to how far the
	// modifier is held.
	if roll2 := v[ChannelRoll2]; roll2 != 0 {
		out.roll = roll2 * out.yaw
		out.yaw *= 1 - roll2
	}
	return out
}

// TransformControls is the game's Transform: it derives the control values
// for both instants and flags every field that differs.
func TransformControls(current, previous Values) ControlState {
	now := deriveControls(current)
	before := deriveControls(previous)

	return ControlState{
		Throttle: AxisStatus{now.throttle, now.throttle != before.throttle},
		Steer:    AxisStatus{now.steer, now.steer != before.steer},
		Pitch:    AxisStatus{now.pitch, now.pitch != before.pitch},
		Yaw:      AxisStatus{now.yaw, now.yaw != before.yaw},
		Roll:     AxisStatus{now.roll, now.roll != before.roll},

		Boost:     ButtonStatus{now.boost, now.boost != before.boost},
		Jump:      ButtonStatus{now.jump, now.jump != before.jump},
		Handbrake: ButtonStatus{now.handbrake, now.handbrake != before.handbrake},
		Ballcam:   ButtonStatus{now.ballcam, now.ballcam != before.ballcam},
		Reset:     ButtonStatus{now.reset, now.reset != before.reset},
	}
}
