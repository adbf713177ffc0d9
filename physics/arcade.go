package physics

import (
	"log"
	"math"

	"github.com/automoto/rocketview/shared/arena"
	"github.com/automoto/rocketview/shared/gamemath"
	"github.com/solarlune/resolv"
)

// Arcade tuning, in unreal units and seconds. The values are loosely modelled
// on an Octane and are not meant to reproduce the native engine.
const (
	dt = 1.0 / TickRate

	gravity       = 650.0
	arenaHeight   = 2044.0
	carRestHeight = 17.0

	throttleAccel = 1600.0
	boostAccel    = 991.0
	brakeDecel    = 3500.0
	coastDecel    = 525.0
	handbrakeDrag = 300.0
	maxDriveSpeed = 1410.0
	maxCarSpeed   = 2300.0

	turnRate        = 2.5 // rad/s at full lock above turnFullSpeed
	turnFullSpeed   = 500.0
	handbrakeTurn   = 1.5
	airRotationRate = 5.0 // rad/s at full input

	jumpSpeed = 500.0

	ballRadius      = BallRadius
	ballRestitution = 0.6
	ballRollDrag    = 0.3
	ballMaxSpeed    = 6000.0
	ballRestSpeed   = 30.0

	carCollideRadius = 60.0
	hitImpulse       = 1.5
	hitBonus         = 200.0

	cellSize = 128
	tagWall  = "wall"
	tagCar   = "car"
	tagBall  = "ball"
)

var octane = CarConfig{
	HitboxSize:      Vec3{118.01, 36.16, 84.2},
	HitboxPosOffset: Vec3{13.88, 20.75, 0},
	WheelRadius:     12.5,
}

// wheelOffsets are the wheel hubs relative to the car origin at heading 0
// (front-left, front-right, back-left, back-right).
var wheelOffsets = [4]Vec3{
	{51.25, -6, -25.9},
	{51.25, -6, 25.9},
	{-33.75, -4.3, -29.5},
	{-33.75, -4.3, 29.5},
}

type carBody struct {
	pos   Vec3
	vel   Vec3
	speed float64 // signed speed along the heading while grounded

	yaw, pitch, roll float64
	onGround         bool
	wheelSpin        float64
}

type ballBody struct {
	pos Vec3
	vel Vec3
	ang Vec3
}

// Arcade is a small kinematic stand-in for the native simulation: a car that
// drives, jumps and air-rolls on a flat floor, and a ball that bounces off
// the floor, ceiling, walls and car. Walls come from the arena layout and are
// resolved with a resolv space.
type Arcade struct {
	arena *arena.Arena
	space *resolv.Space

	carObj  *resolv.Object
	ballObj *resolv.Object

	car      carBody
	ball     ballBody
	controls CarControls
	jumpHeld bool
}

// NewArcade builds an engine over a and places both bodies at kickoff.
func NewArcade(a *arena.Arena) *Arcade {
	e := &Arcade{
		arena: a,
		space: resolv.NewSpace(int(a.Width), int(a.Length), cellSize, cellSize),
	}

	for _, w := range a.Walls {
		x, z := e.toSpace(w.X, w.Z)
		obj := resolv.NewObject(x, z, w.W, w.L, tagWall)
		obj.SetShape(resolv.NewRectangle(0, 0, w.W, w.L))
		e.space.Add(obj)
	}

	carSize := 2 * carCollideRadius
	e.carObj = resolv.NewObject(0, 0, carSize, carSize, tagCar)
	e.carObj.SetShape(resolv.NewRectangle(0, 0, carSize, carSize))
	e.space.Add(e.carObj)

	ballSize := 2 * ballRadius
	e.ballObj = resolv.NewObject(0, 0, ballSize, ballSize, tagBall)
	e.ballObj.SetShape(resolv.NewRectangle(0, 0, ballSize, ballSize))
	e.space.Add(e.ballObj)

	log.Printf("[physics] arena %q: %d walls, %.0fx%.0f", a.Name, len(a.Walls), a.Width, a.Length)

	e.ResetToKickoff()
	return e
}

func (e *Arcade) CarConfig() CarConfig { return octane }

// SetControls stores c for the following steps. Analog inputs are clamped.
func (e *Arcade) SetControls(c CarControls) {
	c.Throttle = gamemath.Clamp(c.Throttle, -1, 1)
	c.Steer = gamemath.Clamp(c.Steer, -1, 1)
	c.Pitch = gamemath.Clamp(c.Pitch, -1, 1)
	c.Yaw = gamemath.Clamp(c.Yaw, -1, 1)
	c.Roll = gamemath.Clamp(c.Roll, -1, 1)
	e.controls = c
}

func (e *Arcade) ResetToKickoff() {
	k := e.arena.CarKickoff
	e.car = carBody{
		pos:      Vec3{k.X, carRestHeight, k.Z},
		yaw:      k.Yaw,
		onGround: true,
	}
	b := e.arena.BallKickoff
	e.ball = ballBody{pos: Vec3{b.X, ballRadius, b.Z}}
	e.jumpHeld = false

	e.placeObject(e.carObj, e.car.pos, carCollideRadius)
	e.placeObject(e.ballObj, e.ball.pos, ballRadius)
}

// Step advances the simulation by substeps ticks of 1/TickRate s.
func (e *Arcade) Step(substeps int) {
	for i := 0; i < substeps; i++ {
		e.stepCar()
		e.stepBall()
		e.collideCarBall()
	}
}

func (e *Arcade) State() State {
	s := State{
		CarPos:  e.car.pos,
		CarAng:  Vec3{e.car.roll, e.car.yaw, e.car.pitch},
		BallPos: e.ball.pos,
		BallAng: e.ball.ang,
	}

	sin, cos := math.Sincos(e.car.yaw)
	for _, off := range wheelOffsets {
		// Heading rotates +X towards +Z.
		s.WheelPos = append(s.WheelPos, Vec3{
			e.car.pos[0] + off[0]*cos - off[2]*sin,
			e.car.pos[1] + off[1],
			e.car.pos[2] + off[0]*sin + off[2]*cos,
		})
		s.WheelAng = append(s.WheelAng, Vec3{e.car.roll, e.car.yaw, e.car.pitch + e.car.wheelSpin})
	}
	return s
}

func (e *Arcade) stepCar() {
	c := e.controls
	car := &e.car

	jumpPressed := c.Jump && !e.jumpHeld
	e.jumpHeld = c.Jump

	if car.onGround {
		e.driveCar(c)
		if jumpPressed {
			sin, cos := math.Sincos(car.yaw)
			car.vel = Vec3{car.speed * cos, jumpSpeed, car.speed * sin}
			car.onGround = false
		}
	} else {
		car.yaw += c.Yaw * airRotationRate * dt
		car.pitch += c.Pitch * airRotationRate * dt
		car.roll += c.Roll * airRotationRate * dt
		if c.Boost {
			fwd := e.carForward()
			for i := range car.vel {
				car.vel[i] += fwd[i] * boostAccel * dt
			}
		}
		car.vel[1] -= gravity * dt
		gamemath.LimitMagnitude(&car.vel, maxCarSpeed)
	}

	dx, dz := car.vel[0]*dt, car.vel[2]*dt
	mx, mz, hitX, hitZ := e.moveObject(e.carObj, dx, dz)
	car.pos[0] += mx
	car.pos[2] += mz
	if hitX {
		car.vel[0] = 0
	}
	if hitZ {
		car.vel[2] = 0
	}
	if car.onGround && (hitX || hitZ) {
		car.speed = 0
	}

	if !car.onGround {
		car.pos[1] += car.vel[1] * dt
		if car.pos[1] >= arenaHeight-carRestHeight && car.vel[1] > 0 {
			car.vel[1] = 0
		}
		if car.pos[1] <= carRestHeight && car.vel[1] <= 0 {
			e.landCar()
		}
	}

	car.wheelSpin = math.Mod(car.wheelSpin+car.speed/octane.WheelRadius*dt, 2*math.Pi)
}

// driveCar applies ground throttle, boost, steering and handbrake.
func (e *Arcade) driveCar(c CarControls) {
	car := &e.car
	accel := 0.0

	switch {
	case c.Throttle == 0:
		drag := coastDecel
		if c.Handbrake {
			drag += handbrakeDrag
		}
		car.speed = gamemath.ApplyFriction(car.speed, drag*dt)
	case car.speed*c.Throttle < 0:
		accel = math.Copysign(brakeDecel*math.Abs(c.Throttle), c.Throttle)
	case math.Abs(car.speed) < maxDriveSpeed:
		accel = throttleAccel * c.Throttle * (1 - math.Abs(car.speed)/maxDriveSpeed)
	}
	if c.Boost {
		accel += boostAccel
	}

	car.speed = gamemath.Clamp(car.speed+accel*dt, -maxDriveSpeed, maxCarSpeed)

	rate := turnRate * math.Min(1, math.Abs(car.speed)/turnFullSpeed)
	if c.Handbrake {
		rate *= handbrakeTurn
	}
	if car.speed < 0 {
		rate = -rate
	}
	car.yaw += c.Steer * rate * dt

	sin, cos := math.Sincos(car.yaw)
	car.vel = Vec3{car.speed * cos, 0, car.speed * sin}
}

func (e *Arcade) landCar() {
	car := &e.car
	car.pos[1] = carRestHeight
	sin, cos := math.Sincos(car.yaw)
	car.speed = car.vel[0]*cos + car.vel[2]*sin
	car.vel[1] = 0
	car.pitch, car.roll = 0, 0
	car.onGround = true
}

func (e *Arcade) carForward() Vec3 {
	sy, cy := math.Sincos(e.car.yaw)
	sp, cp := math.Sincos(e.car.pitch)
	return Vec3{cp * cy, sp, cp * sy}
}

func (e *Arcade) stepBall() {
	b := &e.ball
	b.vel[1] -= gravity * dt

	mx, mz, hitX, hitZ := e.moveObject(e.ballObj, b.vel[0]*dt, b.vel[2]*dt)
	b.pos[0] += mx
	b.pos[2] += mz
	if hitX {
		b.vel[0] = -b.vel[0] * ballRestitution
	}
	if hitZ {
		b.vel[2] = -b.vel[2] * ballRestitution
	}

	b.pos[1] += b.vel[1] * dt
	if b.pos[1] < ballRadius {
		b.pos[1] = ballRadius
		b.vel[1] = -b.vel[1] * ballRestitution
		if b.vel[1] < ballRestSpeed {
			b.vel[1] = 0
		}
	}
	if b.pos[1] > arenaHeight-ballRadius {
		b.pos[1] = arenaHeight - ballRadius
		b.vel[1] = -math.Abs(b.vel[1]) * ballRestitution
	}

	if b.pos[1] <= ballRadius {
		drag := 1 - ballRollDrag*dt
		b.vel[0] *= drag
		b.vel[2] *= drag
	}
	gamemath.LimitMagnitude(&b.vel, ballMaxSpeed)

	b.ang[0] += b.vel[2] / ballRadius * dt
	b.ang[2] -= b.vel[0] / ballRadius * dt
}

func (e *Arcade) collideCarBall() {
	car, b := &e.car, &e.ball
	center := Vec3{car.pos[0], car.pos[1] + octane.HitboxPosOffset[1], car.pos[2]}

	var d Vec3
	var dist2 float64
	for i := range d {
		d[i] = b.pos[i] - center[i]
		dist2 += d[i] * d[i]
	}
	reach := ballRadius + carCollideRadius
	if dist2 >= reach*reach || dist2 == 0 {
		return
	}

	dist := math.Sqrt(dist2)
	var n Vec3
	var closing float64
	for i := range n {
		n[i] = d[i] / dist
		closing += (car.vel[i] - b.vel[i]) * n[i]
	}
	if closing > 0 {
		for i := range b.vel {
			b.vel[i] += n[i] * (closing*hitImpulse + hitBonus)
		}
	}

	// Push the ball out of the car along the contact normal.
	push := reach - dist
	mx, mz, _, _ := e.moveObject(e.ballObj, n[0]*push, n[2]*push)
	b.pos[0] += mx
	b.pos[2] += mz
	b.pos[1] = math.Max(ballRadius, b.pos[1]+n[1]*push)
}

// moveObject slides obj by (dx, dz) on the ground plane, stopping at walls.
// It returns the distance actually travelled on each axis.
func (e *Arcade) moveObject(obj *resolv.Object, dx, dz float64) (mx, mz float64, hitX, hitZ bool) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tagWall); check != nil {
			if walls := check.ObjectsByTags(tagWall); len(walls) > 0 {
				dx = check.ContactWithObject(walls[0]).X()
				hitX = true
			}
		}
		obj.X += dx
	}
	if dz != 0 {
		if check := obj.Check(0, dz, tagWall); check != nil {
			if walls := check.ObjectsByTags(tagWall); len(walls) > 0 {
				dz = check.ContactWithObject(walls[0]).Y()
				hitZ = true
			}
		}
		obj.Y += dz
	}
	obj.Update()
	return dx, dz, hitX, hitZ
}

func (e *Arcade) placeObject(obj *resolv.Object, pos Vec3, radius float64) {
	x, z := e.toSpace(pos[0], pos[2])
	obj.X = x - radius
	obj.Y = z - radius
	obj.Update()
}

// toSpace converts centred world coordinates to the resolv space, whose
// origin is the arena's minimum corner.
func (e *Arcade) toSpace(x, z float64) (float64, float64) {
	return x + e.arena.Width/2, z + e.arena.Length/2
}
