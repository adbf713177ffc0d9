// Package messages defines the telemetry frames streamed by the server and
// their conversion to simulation state. Frames are JSON encoded, one per
// websocket message; the client never sends anything back.
package messages

import (
	"errors"
	"math"

	"github.com/automoto/rocketview/physics"
)

// RotatorHalfTurn is the rotator value for pi radians.
const RotatorHalfTurn = 32768

var ErrEmptyFrame = errors.New("telemetry frame has no snapshots")

// Frame is one telemetry message.
type Frame struct {
	Data     []Snapshot `json:"data"`
	Settings *Settings  `json:"settings,omitempty"`
}

// Snapshot holds the car and ball of one player view.
type Snapshot struct {
	Car  Body `json:"car"`
	Ball Body `json:"ball"`
}

// Body is a rigid body in the server's axes: Loc is (x, y, z) with z up,
// Rot is (pitch, yaw, roll) in rotator units.
type Body struct {
	Loc [3]float64 `json:"loc"`
	Rot [3]float64 `json:"rot"`
}

// Settings are the follow camera parameters chosen on the server side.
type Settings struct {
	Distance float64 `json:"distance"`
	Height   float64 `json:"height"`
	Pitch    float64 `json:"pitch"`
	FOV      float64 `json:"fov"`
}

// Position returns Loc in client axes, with y up.
func (b Body) Position() physics.Vec3 {
	return physics.Vec3{b.Loc[0], b.Loc[2], b.Loc[1]}
}

// Angles returns Rot in radians, ordered (roll, yaw, pitch).
func (b Body) Angles() physics.Vec3 {
	return physics.Vec3{
		b.Rot[2] / RotatorHalfTurn * math.Pi,
		b.Rot[1] / RotatorHalfTurn * math.Pi,
		b.Rot[0] / RotatorHalfTurn * math.Pi,
	}
}

// BodyFrom is the inverse of Position and Angles.
func BodyFrom(pos, ang physics.Vec3) Body {
	return Body{
		Loc: [3]float64{pos[0], pos[2], pos[1]},
		Rot: [3]float64{
			ang[2] / math.Pi * RotatorHalfTurn,
			ang[1] / math.Pi * RotatorHalfTurn,
			ang[0] / math.Pi * RotatorHalfTurn,
		},
	}
}

// State converts the first snapshot of f. Wheels are not carried on the
// wire and are left empty.
func (f Frame) State() (physics.State, error) {
	if len(f.Data) == 0 {
		return physics.State{}, ErrEmptyFrame
	}
	s := f.Data[0]
	return physics.State{
		CarPos:  s.Car.Position(),
		CarAng:  s.Car.Angles(),
		BallPos: s.Ball.Position(),
		BallAng: s.Ball.Angles(),
	}, nil
}

// NewFrame encodes s as a single snapshot frame.
func NewFrame(s physics.State, settings *Settings) Frame {
	return Frame{
		Data: []Snapshot{{
			Car:  BodyFrom(s.CarPos, s.CarAng),
			Ball: BodyFrom(s.BallPos, s.BallAng),
		}},
		Settings: settings,
	}
}
