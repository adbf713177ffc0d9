package gamemath

import (
	"math"
	"testing"
)

func near3(a, b [3]float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestBasis(t *testing.T) {
	tests := []struct {
		name string
		ang  [3]float64
		f    [3]float64
		u    [3]float64
		r    [3]float64
	}{
		{"identity", [3]float64{}, [3]float64{1, 0, 0}, [3]float64{0, 1, 0}, [3]float64{0, 0, 1}},
		{"yaw quarter turn", [3]float64{0, math.Pi / 2, 0}, [3]float64{0, 0, 1}, [3]float64{0, 1, 0}, [3]float64{-1, 0, 0}},
		{"nose up", [3]float64{0, 0, math.Pi / 2}, [3]float64{0, 1, 0}, [3]float64{-1, 0, 0}, [3]float64{0, 0, 1}},
		{"rolled right", [3]float64{math.Pi / 2, 0, 0}, [3]float64{1, 0, 0}, [3]float64{0, 0, -1}, [3]float64{0, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, u, r := Basis(tt.ang)
			if !near3(f, tt.f) || !near3(u, tt.u) || !near3(r, tt.r) {
				t.Errorf("got f=%v u=%v r=%v", f, u, r)
			}
		})
	}
}

func TestToWorldMatchesHeading(t *testing.T) {
	// A point ahead and to the right of a car heading +Z.
	got := ToWorld([3]float64{100, 17, 200}, [3]float64{0, math.Pi / 2, 0}, [3]float64{50, 10, 20})
	want := [3]float64{80, 27, 250}
	if !near3(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
