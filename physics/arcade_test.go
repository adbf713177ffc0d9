package physics

import (
	"math"
	"testing"

	"github.com/automoto/rocketview/shared/arena"
)

const eps = 1e-6

// boxArena is a 2048x2048 field closed by 128 thick walls, with the car
// facing the ball along -Z.
func boxArena() *arena.Arena {
	return &arena.Arena{
		Name:   "box",
		Width:  2048,
		Length: 2048,
		Walls: []arena.Rect{
			{X: -1024, Z: -1024, W: 2048, L: 128},
			{X: -1024, Z: 896, W: 2048, L: 128},
			{X: -1024, Z: -1024, W: 128, L: 2048},
			{X: 896, Z: -1024, W: 128, L: 2048},
		},
		CarKickoff:  arena.Spot{X: 0, Z: 512, Yaw: -math.Pi / 2},
		BallKickoff: arena.Spot{X: 0, Z: 0},
	}
}

func TestArcadeKickoff(t *testing.T) {
	e := NewArcade(boxArena())
	s := e.State()

	if s.CarPos != (Vec3{0, carRestHeight, 512}) {
		t.Errorf("car pos = %v", s.CarPos)
	}
	if math.Abs(s.CarAng[1]+math.Pi/2) > eps {
		t.Errorf("car yaw = %v, want -pi/2", s.CarAng[1])
	}
	if s.BallPos != (Vec3{0, ballRadius, 0}) {
		t.Errorf("ball pos = %v", s.BallPos)
	}
	if len(s.WheelPos) != 4 || len(s.WheelAng) != 4 {
		t.Errorf("wheels = %d/%d, want 4/4", len(s.WheelPos), len(s.WheelAng))
	}
}

func TestArcadeSetControlsClamps(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Throttle: 3, Steer: -2, Pitch: 0.5, Yaw: -7, Roll: 1.5})

	want := CarControls{Throttle: 1, Steer: -1, Pitch: 0.5, Yaw: -1, Roll: 1}
	if e.controls != want {
		t.Errorf("controls = %+v, want %+v", e.controls, want)
	}
}

func TestArcadeThrottleDrivesAlongHeading(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Throttle: 1})
	e.Step(60)

	s := e.State()
	if s.CarPos[2] > 412 {
		t.Errorf("car z = %v, want it to move towards -Z", s.CarPos[2])
	}
	if math.Abs(s.CarPos[0]) > eps {
		t.Errorf("car x = %v, want 0", s.CarPos[0])
	}
	if s.CarPos[1] != carRestHeight {
		t.Errorf("car y = %v, want rest height", s.CarPos[1])
	}
}

func TestArcadeCoastStops(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Throttle: 1})
	e.Step(20)
	e.SetControls(CarControls{})
	e.Step(240)

	if e.car.speed != 0 {
		t.Errorf("speed = %v after coasting, want 0", e.car.speed)
	}
}

func TestArcadeSteerTurns(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Throttle: 1, Steer: 1})
	e.Step(60)

	if yaw := e.State().CarAng[1]; yaw <= -math.Pi/2 {
		t.Errorf("yaw = %v, want it to increase with positive steer", yaw)
	}
}

func TestArcadeWallsStopCar(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Throttle: 1, Boost: true})
	e.Step(1200)

	s := e.State()
	minZ := -896 + carCollideRadius
	if s.CarPos[2] < minZ-eps {
		t.Errorf("car z = %v, went through the wall at %v", s.CarPos[2], minZ)
	}
	if s.BallPos[2] < -896+ballRadius-eps {
		t.Errorf("ball z = %v, went through the wall", s.BallPos[2])
	}
}

func TestArcadeCarHitsBall(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Throttle: 1})
	e.Step(120)

	if e.ball.vel[2] >= 0 {
		t.Errorf("ball vz = %v, want it knocked towards -Z", e.ball.vel[2])
	}
	if e.State().BallPos[2] >= 0 {
		t.Errorf("ball z = %v, want it pushed towards -Z", e.State().BallPos[2])
	}
}

func TestArcadeJump(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Jump: true})

	e.Step(30)
	if e.car.onGround || e.State().CarPos[1] <= carRestHeight {
		t.Fatalf("car y = %v, want airborne", e.State().CarPos[1])
	}

	e.Step(240)
	if !e.car.onGround || e.State().CarPos[1] != carRestHeight {
		t.Fatalf("car y = %v, want landed", e.State().CarPos[1])
	}

	// Holding jump does not jump again.
	e.Step(10)
	if !e.car.onGround {
		t.Error("held jump triggered a second jump")
	}
}

func TestArcadeAirRollResetsOnLanding(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Jump: true})
	e.Step(1)
	e.SetControls(CarControls{Roll: 1, Pitch: -1})
	e.Step(10)

	s := e.State()
	if s.CarAng[0] <= 0 || s.CarAng[2] >= 0 {
		t.Errorf("car ang = %v, want positive roll and negative pitch", s.CarAng)
	}

	e.SetControls(CarControls{})
	e.Step(240)
	s = e.State()
	if s.CarAng[0] != 0 || s.CarAng[2] != 0 {
		t.Errorf("car ang = %v after landing, want level", s.CarAng)
	}
}

func TestArcadeBallSettles(t *testing.T) {
	e := NewArcade(boxArena())
	e.ball.pos[1] = 500

	e.Step(120)
	if y := e.State().BallPos[1]; y >= 500 {
		t.Errorf("ball y = %v, want it falling", y)
	}

	e.Step(1200)
	if y := e.State().BallPos[1]; y != ballRadius {
		t.Errorf("ball y = %v, want it resting at %v", y, ballRadius)
	}
}

func TestArcadeBallBouncesOffWall(t *testing.T) {
	e := NewArcade(boxArena())
	e.ball.vel = Vec3{3000, 0, 0}
	e.Step(120)

	s := e.State()
	if s.BallPos[0] > 896-ballRadius+eps {
		t.Errorf("ball x = %v, went through the wall", s.BallPos[0])
	}
	if e.ball.vel[0] >= 0 {
		t.Errorf("ball vx = %v, want it reflected", e.ball.vel[0])
	}
}

func TestArcadeResetToKickoff(t *testing.T) {
	e := NewArcade(boxArena())
	e.SetControls(CarControls{Throttle: 1, Steer: 1, Jump: true})
	e.Step(90)
	e.ResetToKickoff()

	s := e.State()
	if s.CarPos != (Vec3{0, carRestHeight, 512}) || s.BallPos != (Vec3{0, ballRadius, 0}) {
		t.Errorf("after reset car %v ball %v", s.CarPos, s.BallPos)
	}
	if e.car.speed != 0 || e.ball.vel != (Vec3{}) {
		t.Errorf("after reset speed %v ball vel %v", e.car.speed, e.ball.vel)
	}
}

func TestArcadeImplementsEngine(t *testing.T) {
	var _ Engine = NewArcade(boxArena())
}
