package gamemath

import (
	"math"
	"testing"

	"github.com/kvartborg/vector"
)

const eps = 1e-9

func near(a, b vector.Vector) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return len(a) == len(b)
}

func TestFollowCameraCarView(t *testing.T) {
	cam := FollowCamera{Distance: 350, Height: 110, Offset: -4, FOV: 110}

	tests := []struct {
		name string
		yaw  float64
		eye  vector.Vector
	}{
		{"facing +X", 0, vector.Vector{-350, 127, 0}},
		{"facing +Z", math.Pi / 2, vector.Vector{0, 127, -350}},
		{"facing -Z", -math.Pi / 2, vector.Vector{0, 127, 350}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := cam.Update([3]float64{0, 17, 0}, [3]float64{0, tt.yaw, 0}, [3]float64{1000, 93, 1000})
			if !near(v.Eye, tt.eye) {
				t.Errorf("eye = %v, want %v", v.Eye, tt.eye)
			}
			if !near(v.Target, vector.Vector{0, 13, 0}) {
				t.Errorf("target = %v, want car plus offset", v.Target)
			}
		})
	}
}

func TestFollowCameraBallcam(t *testing.T) {
	cam := FollowCamera{Distance: 300, Height: 100, Ballcam: true}
	v := cam.Update([3]float64{0, 0, 0}, [3]float64{}, [3]float64{0, 400, -300})

	// away = (0, -400, 300) / 500 * 300 = (0, -240, 180); y is quartered.
	if !near(v.Eye, vector.Vector{0, -60 + 100, 180}) {
		t.Errorf("eye = %v", v.Eye)
	}
	if !near(v.Target, vector.Vector{0, 400, -300}) {
		t.Errorf("target = %v, want the ball", v.Target)
	}
}

func TestFollowCameraBallcamDegenerate(t *testing.T) {
	cam := FollowCamera{Distance: 300, Height: 100, Ballcam: true}
	v := cam.Update([3]float64{5, 0, 5}, [3]float64{}, [3]float64{5, 0, 5})

	if !near(v.Eye, vector.Vector{-295, 100, 5}) {
		t.Errorf("eye = %v, want car view fallback", v.Eye)
	}
}

func TestProjector(t *testing.T) {
	v := View{Eye: vector.Vector{0, 0, 0}, Target: vector.Vector{0, 0, -100}, FOV: 90}
	p := v.Projector(200, 100, 1)

	tests := []struct {
		name   string
		pt     [3]float64
		x, y   float64
		inView bool
	}{
		{"target at centre", [3]float64{0, 0, -100}, 100, 50, true},
		{"right of view", [3]float64{50, 0, -100}, 125, 50, true},
		{"above view", [3]float64{0, 50, -100}, 100, 25, true},
		{"behind camera", [3]float64{0, 0, 100}, 0, 0, false},
		{"inside near plane", [3]float64{0, 0, -0.5}, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, _, ok := p.Project(tt.pt)
			if ok != tt.inView {
				t.Fatalf("ok = %v, want %v", ok, tt.inView)
			}
			if ok && (math.Abs(x-tt.x) > eps || math.Abs(y-tt.y) > eps) {
				t.Errorf("projected to (%v, %v), want (%v, %v)", x, y, tt.x, tt.y)
			}
		})
	}

	if got := p.Scale(100, 100); math.Abs(got-50) > eps {
		t.Errorf("Scale = %v, want 50", got)
	}
}

func TestProjectorPitchTiltsDown(t *testing.T) {
	v := View{Eye: vector.Vector{0, 0, 0}, Target: vector.Vector{0, 0, -100}, FOV: 90, Pitch: -10}
	p := v.Projector(200, 100, 1)

	_, y, _, ok := p.Project([3]float64{0, 0, -100})
	if !ok || y >= 50 {
		t.Errorf("y = %v, want the target above centre once tilted down", y)
	}

	v.Pitch = 10
	p = v.Projector(200, 100, 1)
	_, y, _, ok = p.Project([3]float64{0, 0, -100})
	if !ok || y <= 50 {
		t.Errorf("y = %v, want the target below centre once tilted up", y)
	}
}

func TestProjectorLookingStraightDown(t *testing.T) {
	v := View{Eye: vector.Vector{0, 100, 0}, Target: vector.Vector{0, 0, 0}, FOV: 90}
	p := v.Projector(100, 100, 1)

	x, y, _, ok := p.Project([3]float64{0, 0, 0})
	if !ok || math.Abs(x-50) > eps || math.Abs(y-50) > eps {
		t.Errorf("got (%v, %v, %v)", x, y, ok)
	}
}

func TestProjectorSegment(t *testing.T) {
	// Looking down -Z from the origin, near plane at depth 10.
	v := View{Eye: vector.Vector{0, 0, 0}, Target: vector.Vector{0, 0, -1}, FOV: 90}
	p := v.Projector(100, 100, 10)

	tests := []struct {
		name   string
		a, b   [3]float64
		ok     bool
		x0, y0 float64
		x1, y1 float64
	}{
		{"in front", [3]float64{0, 0, -20}, [3]float64{20, 0, -20}, true, 50, 50, 100, 50},
		{"behind", [3]float64{0, 0, 5}, [3]float64{10, 0, -5}, false, 0, 0, 0, 0},
		// a sits at depth 30, b at depth -10; the clip lands at depth 10 on x=10.
		{"crossing", [3]float64{10, 0, -30}, [3]float64{10, 0, 10}, true, 50 + 10.0/30*50, 50, 100, 50},
		{"crossing reversed", [3]float64{10, 0, 10}, [3]float64{10, 0, -30}, true, 100, 50, 50 + 10.0/30*50, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := p.Segment(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			got := []float64{x0, y0, x1, y1}
			want := []float64{tt.x0, tt.y0, tt.x1, tt.y1}
			for i := range got {
				if math.Abs(got[i]-want[i]) > 1e-6 {
					t.Errorf("got %v, want %v", got, want)
					break
				}
			}
		})
	}
}
