package gamemath

import (
	"math"

	"github.com/kvartborg/vector"
)

var worldUp = vector.Vector{0, 1, 0}

// FollowCamera places the view either behind the car or, with Ballcam, on
// the far side of the car from the ball.
type FollowCamera struct {
	Distance float64
	Height   float64
	Offset   float64 // look-at height above the car in car view
	Pitch    float64 // camera angle in degrees, negative looks down
	FOV      float64 // vertical, degrees
	Ballcam  bool
}

// View is a camera pose ready for projection.
type View struct {
	Eye    vector.Vector
	Target vector.Vector
	Pitch  float64
	FOV    float64
}

// Update computes the view for the given car position, car Euler angles and
// ball position. Ballcam falls back to car view when car and ball coincide.
func (c FollowCamera) Update(carPos, carAng, ballPos [3]float64) View {
	car := vector.Vector{carPos[0], carPos[1], carPos[2]}
	ball := vector.Vector{ballPos[0], ballPos[1], ballPos[2]}

	if c.Ballcam {
		away := sub(car, ball)
		if mag := away.Magnitude(); mag > 0 {
			d := scale(away, c.Distance/mag)
			return View{
				Eye:    vector.Vector{car.X() + d.X(), car.Y() + d.Y()/4 + c.Height, car.Z() + d.Z()},
				Target: ball,
				Pitch:  c.Pitch,
				FOV:    c.FOV,
			}
		}
	}

	sin, cos := math.Sincos(carAng[1])
	return View{
		Eye:    vector.Vector{car.X() - c.Distance*cos, car.Y() + c.Height, car.Z() - c.Distance*sin},
		Target: vector.Vector{car.X(), car.Y() + c.Offset, car.Z()},
		Pitch:  c.Pitch,
		FOV:    c.FOV,
	}
}

// Projector maps world points to screen pixels for one view and viewport.
type Projector struct {
	eye                 vector.Vector
	forward, right, up  vector.Vector
	focal, cx, cy, near float64
}

// Projector builds a pinhole projection for a width x height viewport.
// Points nearer than near along the view axis are rejected.
func (v View) Projector(width, height int, near float64) Projector {
	f := unit(sub(v.Target, v.Eye))
	if f == nil {
		f = vector.Vector{0, 0, -1}
	}
	r := unit(cross(f, worldUp))
	if r == nil {
		r = vector.Vector{1, 0, 0}
	}
	u := cross(r, f)

	if v.Pitch != 0 {
		s, c := math.Sincos(-v.Pitch * math.Pi / 180)
		f, u = add(scale(f, c), scale(u, -s)), add(scale(u, c), scale(f, s))
	}

	fov := v.FOV
	if fov <= 0 || fov >= 180 {
		fov = 90
	}
	return Projector{
		eye:     v.Eye,
		forward: f,
		right:   r,
		up:      u,
		focal:   float64(height) / 2 / math.Tan(fov*math.Pi/360),
		cx:      float64(width) / 2,
		cy:      float64(height) / 2,
		near:    near,
	}
}

// Project returns the screen position of p and its depth along the view
// axis. ok is false for points behind the near plane.
func (p Projector) Project(pt [3]float64) (x, y, depth float64, ok bool) {
	d := sub(vector.Vector{pt[0], pt[1], pt[2]}, p.eye)
	depth = dot(d, p.forward)
	if depth < p.near {
		return 0, 0, depth, false
	}
	x, y = p.screen(d)
	return x, y, depth, true
}

// Segment projects the line from a to b, clipping it against the near
// plane. ok is false when the whole segment is behind it.
func (p Projector) Segment(a, b [3]float64) (x0, y0, x1, y1 float64, ok bool) {
	va := sub(vector.Vector{a[0], a[1], a[2]}, p.eye)
	vb := sub(vector.Vector{b[0], b[1], b[2]}, p.eye)
	da, db := dot(va, p.forward), dot(vb, p.forward)
	if da < p.near && db < p.near {
		return 0, 0, 0, 0, false
	}
	if da < p.near {
		va = add(va, scale(sub(vb, va), (p.near-da)/(db-da)))
	} else if db < p.near {
		vb = add(vb, scale(sub(va, vb), (p.near-db)/(da-db)))
	}
	x0, y0 = p.screen(va)
	x1, y1 = p.screen(vb)
	return x0, y0, x1, y1, true
}

// screen maps an eye-relative point in front of the near plane.
func (p Projector) screen(d vector.Vector) (x, y float64) {
	depth := dot(d, p.forward)
	return p.cx + dot(d, p.right)/depth*p.focal, p.cy - dot(d, p.up)/depth*p.focal
}

// Scale returns the on-screen size of a world length at depth.
func (p Projector) Scale(length, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return length / depth * p.focal
}

func sub(a, b vector.Vector) vector.Vector {
	return vector.Vector{a.X() - b.X(), a.Y() - b.Y(), a.Z() - b.Z()}
}

func add(a, b vector.Vector) vector.Vector {
	return vector.Vector{a.X() + b.X(), a.Y() + b.Y(), a.Z() + b.Z()}
}

func scale(a vector.Vector, s float64) vector.Vector {
	return vector.Vector{a.X() * s, a.Y() * s, a.Z() * s}
}

func dot(a, b vector.Vector) float64 {
	return a.X()*b.X() + a.Y()*b.Y() + a.Z()*b.Z()
}

func cross(a, b vector.Vector) vector.Vector {
	return vector.Vector{
		a.Y()*b.Z() - a.Z()*b.Y(),
		a.Z()*b.X() - a.X()*b.Z(),
		a.X()*b.Y() - a.Y()*b.X(),
	}
}

// unit returns nil for a zero vector.
func unit(a vector.Vector) vector.Vector {
	mag := a.Magnitude()
	if mag < 1e-12 {
		return nil
	}
	return scale(a, 1/mag)
}
