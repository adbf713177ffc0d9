// Package arena provides TMX arena parsing shared between client and server.
// It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package arena

// Arena is the static field layout in world units. The field is centred on
// the origin; X runs across the field and Z along it.
type Arena struct {
	Name   string
	Width  float64
	Length float64

	Walls []Rect
	Goals []Goal

	CarKickoff  Spot
	BallKickoff Spot
}

// Rect is an axis-aligned box on the ground plane. X/Z is the minimum corner.
type Rect struct {
	X, Z float64
	W, L float64
}

func (r Rect) Contains(x, z float64) bool {
	return x >= r.X && x <= r.X+r.W && z >= r.Z && z <= r.Z+r.L
}

// Goal is a scoring zone owned by Team (0 blue, 1 orange).
type Goal struct {
	Rect
	Team int
}

// Spot is a kickoff position with a heading in radians.
type Spot struct {
	X, Z float64
	Yaw  float64
}

// GoalAt returns the goal containing the ground point (x, z), if any.
func (a *Arena) GoalAt(x, z float64) (Goal, bool) {
	for _, g := range a.Goals {
		if g.Contains(x, z) {
			return g, true
		}
	}
	return Goal{}, false
}

// Bounds returns the playable area as a Rect.
func (a *Arena) Bounds() Rect {
	return Rect{X: -a.Width / 2, Z: -a.Length / 2, W: a.Width, L: a.Length}
}
