package input

// Controls owns the device state and the game's sampler.
//
// Only one gamepad is read at a time: the first one found wins and further
// pads are ignored until it disconnects.
type Controls struct {
	device   DeviceState
	bindings Bindings
	sampler  *Sampler[ControlState]
}

// NewControls binds a deep copy of b, so sources passed in are never sampled
// by this Controls. The bindings are fixed for the lifetime of the Controls.
func NewControls(b Bindings) *Controls {
	bindings := b.Clone()
	return &Controls{
		bindings: bindings,
		sampler:  NewSampler[ControlState](bindings.Channels(), TransformControls),
	}
}

func (c *Controls) KeyDown(k Key) { c.device.SetKey(k, true) }
func (c *Controls) KeyUp(k Key)   { c.device.SetKey(k, false) }

func (c *Controls) HandleKey(k Key, down bool) { c.device.SetKey(k, down) }

// ReleaseAll drops every held key, e.g. when the window loses focus and
// release events will never arrive.
func (c *Controls) ReleaseAll() { c.device.ReleaseAll() }

// GamepadConnected adopts gp unless another gamepad is already active.
func (c *Controls) GamepadConnected(gp Gamepad) {
	if gp == nil || c.device.ActiveGamepad() != nil {
		return
	}
	c.device.SetGamepad(gp)
}

// GamepadDisconnected clears the active gamepad if gp is it.
func (c *Controls) GamepadDisconnected(gp Gamepad) {
	if c.device.ActiveGamepad() == gp {
		c.device.SetGamepad(nil)
	}
}

// ScanGamepads selects the first non-nil pad, or none. Platforms without
// connect events call it every frame before State.
func (c *Controls) ScanGamepads(pads []Gamepad) {
	for _, gp := range pads {
		if gp != nil {
			c.device.SetGamepad(gp)
			return
		}
	}
	c.device.SetGamepad(nil)
}

// State samples all channels at instant at.
func (c *Controls) State(at Instant) ControlState {
	return c.sampler.State(&c.device, at)
}

func (c *Controls) Device() *DeviceState { return &c.device }

// Bindings returns a deep copy that is safe to pass to another NewControls.
func (c *Controls) Bindings() Bindings { return c.bindings.Clone() }
