package input

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownChannel = errors.New("unknown channel")
	ErrUnknownAction  = errors.New("unknown action")
)

// Channel is one logical control value produced per sample.
type Channel int

const (
	ChannelThrottle Channel = iota
	ChannelSteer
	ChannelPitch
	ChannelYaw
	ChannelRoll
	ChannelRoll2 // hold-to-roll modifier, folded into yaw/roll by the transform
	ChannelBoost
	ChannelJump
	ChannelHandbrake
	ChannelBallcam
	ChannelReset
	ChannelCount // Must be last - used for array sizing
)

var channelNames = [ChannelCount]string{
	ChannelThrottle:  "throttle",
	ChannelSteer:     "steer",
	ChannelPitch:     "pitch",
	ChannelYaw:       "yaw",
	ChannelRoll:      "roll",
	ChannelRoll2:     "roll2",
	ChannelBoost:     "boost",
	ChannelJump:      "jump",
	ChannelHandbrake: "handbrake",
	ChannelBallcam:   "ballcam",
	ChannelReset:     "reset",
}

func (c Channel) String() string {
	if c < 0 || c >= ChannelCount {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return channelNames[c]
}

func ParseChannel(name string) (Channel, error) {
	for c := Channel(0); c < ChannelCount; c++ {
		if channelNames[c] == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownChannel, name)
}

// Action is a bindable half of a channel. Signed channels are built from a
// positive and a negative action; the rest from a single one.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionPitchForward
	ActionPitchBack
	ActionYawLeft
	ActionYawRight
	ActionRollLeft
	ActionRollRight
	ActionRoll
	ActionBoost
	ActionJump
	ActionHandbrake
	ActionBallcam
	ActionReset
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionForward:      "forward",
	ActionBack:         "back",
	ActionLeft:         "left",
	ActionRight:        "right",
	ActionPitchForward: "pitchForward",
	ActionPitchBack:    "pitchBack",
	ActionYawLeft:      "yawLeft",
	ActionYawRight:     "yawRight",
	ActionRollLeft:     "rollLeft",
	ActionRollRight:    "rollRight",
	ActionRoll:         "roll",
	ActionBoost:        "boost",
	ActionJump:         "jump",
	ActionHandbrake:    "handbrake",
	ActionBallcam:      "ballcam",
	ActionReset:        "reset",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

func ParseAction(name string) (Action, error) {
	for a := Action(0); a < ActionCount; a++ {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// channelActions lists the positive and negative action of every channel.
// A negative of -1 means the channel is unsigned.
var channelActions = [ChannelCount][2]Action{
	ChannelThrottle:  {ActionForward, ActionBack},
	ChannelSteer:     {ActionRight, ActionLeft},
	ChannelPitch:     {ActionPitchBack, ActionPitchForward},
	ChannelYaw:       {ActionYawRight, ActionYawLeft},
	ChannelRoll:      {ActionRollRight, ActionRollLeft},
	ChannelRoll2:     {ActionRoll, -1},
	ChannelBoost:     {ActionBoost, -1},
	ChannelJump:      {ActionJump, -1},
	ChannelHandbrake: {ActionHandbrake, -1},
	ChannelBallcam:   {ActionBallcam, -1},
	ChannelReset:     {ActionReset, -1},
}
