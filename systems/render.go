package systems

import (
	"image/color"
	"math"

	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/config"
	"github.com/automoto/rocketview/physics"
	"github.com/automoto/rocketview/shared/arena"
	"github.com/automoto/rocketview/shared/gamemath"
	"github.com/automoto/rocketview/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	gridSpacing = 512.0
	wallHeight  = 256.0
	goalHeight  = 642.775
	lineWidth   = 1.5
)

// boxEdges indexes the corners returned by boxCorners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0}, // bottom
	{4, 5}, {5, 7}, {7, 6}, {6, 4}, // top
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func currentProjector(e *ecs.ECS) (gamemath.Projector, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return gamemath.Projector{}, false
	}
	view := components.Camera.Get(entry).View
	return view.Projector(config.C.Width, config.C.Height, config.Camera.Near), true
}

// DrawArena clears the screen and draws the floor grid, walls and goals.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(config.UI.Background)

	proj, ok := currentProjector(e)
	if !ok {
		return
	}
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	a := components.Session.Get(sessionEntry).Arena
	if a == nil {
		return
	}

	drawFloor(screen, proj, a)
	for _, w := range a.Walls {
		drawBox(screen, proj, groundBox(w, wallHeight), config.UI.Wall)
	}
	for _, g := range a.Goals {
		clr := config.UI.BlueGoal
		if g.Team == 1 {
			clr = config.UI.OrangeGoal
		}
		drawBox(screen, proj, groundBox(g.Rect, goalHeight), clr)
	}
}

func drawFloor(screen *ebiten.Image, proj gamemath.Projector, a *arena.Arena) {
	b := a.Bounds()
	for x := math.Ceil(b.X/gridSpacing) * gridSpacing; x <= b.X+b.W; x += gridSpacing {
		drawLine(screen, proj, [3]float64{x, 0, b.Z}, [3]float64{x, 0, b.Z + b.L}, config.UI.Floor)
	}
	for z := math.Ceil(b.Z/gridSpacing) * gridSpacing; z <= b.Z+b.L; z += gridSpacing {
		drawLine(screen, proj, [3]float64{b.X, 0, z}, [3]float64{b.X + b.W, 0, z}, config.UI.Floor)
	}

	// Outline and halfway line
	corners := groundBox(b, 0)
	for _, edge := range boxEdges[:4] {
		drawLine(screen, proj, corners[edge[0]], corners[edge[1]], config.UI.Lines)
	}
	drawLine(screen, proj, [3]float64{b.X, 0, 0}, [3]float64{b.X + b.W, 0, 0}, config.UI.Lines)
}

// DrawBodies draws the car and the ball, farthest first.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	proj, ok := currentProjector(e)
	if !ok {
		return
	}
	carEntry, ok := tags.Car.First(e.World)
	if !ok {
		return
	}
	ballEntry, ok := tags.Ball.First(e.World)
	if !ok {
		return
	}
	car := components.Body.Get(carEntry)
	shape := components.CarShape.Get(carEntry)
	ball := components.Body.Get(ballEntry)

	_, _, carDepth, _ := proj.Project(car.Pos)
	_, _, ballDepth, _ := proj.Project(ball.Pos)
	if ballDepth > carDepth {
		drawBall(screen, proj, ball)
		drawCar(screen, proj, car, shape.Config)
		return
	}
	drawCar(screen, proj, car, shape.Config)
	drawBall(screen, proj, ball)
}

func drawCar(screen *ebiten.Image, proj gamemath.Projector, car *components.BodyData, cfg physics.CarConfig) {
	var corners [8][3]float64
	for i := range corners {
		local := cfg.HitboxPosOffset
		for axis := 0; axis < 3; axis++ {
			half := cfg.HitboxSize[axis] / 2
			if i&(1<<axis) == 0 {
				local[axis] -= half
			} else {
				local[axis] += half
			}
		}
		corners[i] = gamemath.ToWorld(car.Pos, car.Ang, local)
	}
	// Corner bits are (forward, up, right); remap to the box edge order.
	ordered := [8][3]float64{
		corners[0], corners[1], corners[4], corners[5],
		corners[2], corners[3], corners[6], corners[7],
	}
	drawBox(screen, proj, ordered, config.UI.Car)

	// Nose marker
	nose := gamemath.ToWorld(car.Pos, car.Ang, [3]float64{
		cfg.HitboxPosOffset[0] + cfg.HitboxSize[0]/2 + 20, cfg.HitboxPosOffset[1], 0,
	})
	drawLine(screen, proj, car.Pos, nose, config.UI.Car)

	for _, w := range car.WheelPos {
		x, y, depth, ok := proj.Project(w)
		if !ok {
			continue
		}
		r := float32(proj.Scale(cfg.WheelRadius, depth))
		vector.StrokeCircle(screen, float32(x), float32(y), r, lineWidth, config.UI.Wheel, true)
	}
}

func drawBall(screen *ebiten.Image, proj gamemath.Projector, ball *components.BodyData) {
	x, y, depth, ok := proj.Project(ball.Pos)
	if !ok {
		return
	}
	r := float32(proj.Scale(physics.BallRadius, depth))
	vector.DrawFilledCircle(screen, float32(x), float32(y), r, config.UI.Ball, true)

	// Shadow on the floor
	sx, sy, _, ok := proj.Project([3]float64{ball.Pos[0], 0, ball.Pos[2]})
	if ok {
		vector.StrokeLine(screen, float32(x), float32(y), float32(sx), float32(sy), lineWidth, config.UI.Lines, true)
	}
}

// groundBox returns the corners of r extruded to height, bottom face first.
// Corner i has bit 0 set for the far X side and bit 1 for the far Z side.
func groundBox(r arena.Rect, height float64) [8][3]float64 {
	var out [8][3]float64
	for i := range out {
		x, z, y := r.X, r.Z, 0.0
		if i&1 != 0 {
			x += r.W
		}
		if i&2 != 0 {
			z += r.L
		}
		if i&4 != 0 {
			y = height
		}
		out[i] = [3]float64{x, y, z}
	}
	return out
}

func drawBox(screen *ebiten.Image, proj gamemath.Projector, corners [8][3]float64, clr color.Color) {
	for _, edge := range boxEdges {
		drawLine(screen, proj, corners[edge[0]], corners[edge[1]], clr)
	}
}

func drawLine(screen *ebiten.Image, proj gamemath.Projector, a, b [3]float64, clr color.Color) {
	x0, y0, x1, y1, ok := proj.Segment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), lineWidth, clr, true)
}
