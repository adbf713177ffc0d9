package input

// Device is the read side of the raw device state that sources sample.
type Device interface {
	IsKeyPressed(k Key) bool
	// ActiveGamepad returns the gamepad sources read from, or nil.
	ActiveGamepad() Gamepad
}

// DeviceState holds the pressed-key set and the active gamepad handle.
// It is mutated by platform events and only read during sampling.
type DeviceState struct {
	keys    [KeyCount]bool
	gamepad Gamepad
}

func (d *DeviceState) IsKeyPressed(k Key) bool {
	if k <= KeyNone || k >= KeyCount {
		return false
	}
	return d.keys[k]
}

func (d *DeviceState) ActiveGamepad() Gamepad {
	return d.gamepad
}

// SetKey records a key transition. Keys outside the key table are ignored.
func (d *DeviceState) SetKey(k Key, pressed bool) {
	if k <= KeyNone || k >= KeyCount {
		return
	}
	d.keys[k] = pressed
}

// ReleaseAll clears every pressed key.
func (d *DeviceState) ReleaseAll() {
	d.keys = [KeyCount]bool{}
}

// PressedKeys returns the currently pressed keys in enum order.
func (d *DeviceState) PressedKeys() []Key {
	var out []Key
	for k := KeyNone + 1; k < KeyCount; k++ {
		if d.keys[k] {
			out = append(out, k)
		}
	}
	return out
}

func (d *DeviceState) SetGamepad(gp Gamepad) {
	d.gamepad = gp
}
