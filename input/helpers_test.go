package input

// fakeGamepad is a scriptable controller. Unknown indices read as zero.
type fakeGamepad struct {
	values  map[Button]float64
	pressed map[Button]bool
	axes    []float64
}

func (g *fakeGamepad) ButtonValue(b Button) float64  { return g.values[b] }
func (g *fakeGamepad) IsButtonPressed(b Button) bool { return g.pressed[b] }

func (g *fakeGamepad) AxisValue(a Axis) float64 {
	if int(a) < 0 || int(a) >= len(g.axes) {
		return 0
	}
	return g.axes[a]
}

// countingDevice counts every device read made by sources.
type countingDevice struct {
	DeviceState
	reads int
}

func (d *countingDevice) IsKeyPressed(k Key) bool {
	d.reads++
	return d.DeviceState.IsKeyPressed(k)
}

func (d *countingDevice) ActiveGamepad() Gamepad {
	d.reads++
	return d.DeviceState.ActiveGamepad()
}
