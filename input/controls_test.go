package input

import "testing"

func TestControlsEndToEnd(t *testing.T) {
	c := NewControls(Bindings{
		ActionForward: {KeyInput(KeyP)},
		ActionBack:    {},
		ActionRight:   {AxisInput(AxisLHorizontal)},
	})
	c.KeyDown(KeyP)
	c.GamepadConnected(&fakeGamepad{axes: []float64{0.75}})

	got := c.State(1)

	if got.Throttle.Value != 1 {
		t.Errorf("throttle: got %v, want 1", got.Throttle.Value)
	}
	if got.Steer.Value != 0.75 {
		t.Errorf("steer: got %v, want 0.75", got.Steer.Value)
	}
	if !got.Throttle.Changed || !got.Steer.Changed {
		t.Errorf("first sample must flag non-zero channels as changed")
	}
	if got.Pitch.Value != 0 || got.Pitch.Changed {
		t.Errorf("unbound pitch: got %+v", got.Pitch)
	}
}

func TestControlsKeyboardAndGamepadAdd(t *testing.T) {
	c := NewControls(Bindings{
		ActionForward: {KeyInput(KeyW), ButtonInput(ButtonRTrigger)},
	})
	c.GamepadConnected(&fakeGamepad{values: map[Button]float64{ButtonRTrigger: 0.5}})

	if got := c.State(1).Throttle.Value; got != 0.5 {
		t.Fatalf("trigger only: got %v", got)
	}
	c.KeyDown(KeyW)
	if got := c.State(2).Throttle.Value; got != 1 {
		t.Fatalf("key and trigger: got %v, want saturated 1", got)
	}
}

func TestControlsFirstGamepadWins(t *testing.T) {
	first := &fakeGamepad{axes: []float64{-1}}
	second := &fakeGamepad{axes: []float64{1}}

	c := NewControls(Bindings{ActionRight: {AxisInput(AxisLHorizontal)}})
	c.GamepadConnected(first)
	c.GamepadConnected(second)

	if got := c.State(1).Steer.Value; got != -1 {
		t.Fatalf("second pad replaced first: steer %v", got)
	}

	c.GamepadDisconnected(second)
	if c.Device().ActiveGamepad() != Gamepad(first) {
		t.Fatalf("disconnecting an inactive pad dropped the active one")
	}

	c.GamepadDisconnected(first)
	if c.Device().ActiveGamepad() != nil {
		t.Fatalf("active pad still set after disconnect")
	}
	if got := c.State(2).Steer.Value; got != 0 {
		t.Fatalf("steer after disconnect: got %v", got)
	}
}

func TestControlsScanGamepads(t *testing.T) {
	pad := &fakeGamepad{pressed: map[Button]bool{ButtonRDown: true}}
	c := NewControls(Bindings{ActionJump: {ButtonInput(ButtonRDown)}})

	c.ScanGamepads([]Gamepad{nil, pad})
	if !c.State(1).Jump.Value {
		t.Fatalf("scan did not select the connected pad")
	}

	c.ScanGamepads(nil)
	got := c.State(2).Jump
	if got.Value || !got.JustReleased() {
		t.Fatalf("scan with no pads: got %+v", got)
	}
}

func TestControlsBindingsAreFixed(t *testing.T) {
	b := Bindings{ActionBoost: {KeyInput(KeyL)}}
	c := NewControls(b)

	b[ActionBoost] = append(b[ActionBoost], KeyInput(KeyB))
	b[ActionJump] = []*Source{KeyInput(KeySpace)}

	c.KeyDown(KeyB)
	c.KeyDown(KeySpace)
	got := c.State(1)
	if got.Boost.Value || got.Jump.Value {
		t.Fatalf("mutating the caller's bindings leaked into Controls: %+v", got)
	}
}

func TestControlsReleaseAll(t *testing.T) {
	c := NewControls(Bindings{ActionHandbrake: {KeyInput(KeyShiftLeft)}})
	c.HandleKey(KeyShiftLeft, true)
	if !c.State(1).Handbrake.Value {
		t.Fatalf("handbrake not held")
	}
	c.ReleaseAll()
	if c.State(2).Handbrake.Value {
		t.Fatalf("handbrake still held after ReleaseAll")
	}
	if len(c.Device().PressedKeys()) != 0 {
		t.Fatalf("pressed keys remain: %v", c.Device().PressedKeys())
	}
}

func TestControlsFromSameBindingsAreIndependent(t *testing.T) {
	b := Bindings{ActionForward: {KeyInput(KeyP)}}
	first := NewControls(b)
	second := NewControls(first.Bindings())

	first.KeyDown(KeyP)
	if got := first.State(1).Throttle.Value; got != 1 {
		t.Fatalf("first throttle = %v, want 1", got)
	}
	if got := second.State(1).Throttle.Value; got != 0 {
		t.Fatalf("second throttle = %v, want 0 with no key held", got)
	}

	first.KeyUp(KeyP)
	second.KeyDown(KeyP)
	if got := first.State(2).Throttle.Value; got != 0 {
		t.Errorf("first throttle = %v after release, want 0", got)
	}
	if got := second.State(2).Throttle.Value; got != 1 {
		t.Errorf("second throttle = %v, want 1 for its own key", got)
	}
}
