package systems

import (
	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/config"
	"github.com/automoto/rocketview/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable buffers to avoid allocations every frame
var (
	keyBuf     []ebiten.Key
	gamepadBuf []ebiten.GamepadID
	scanBuf    []input.Gamepad
)

// UpdateControls feeds this frame's keyboard and gamepad events into the
// controls and samples a new ControlState.
// Must run BEFORE UpdateSimulation in the system order.
func UpdateControls(e *ecs.ECS) {
	entry, ok := components.Controls.First(e.World)
	if !ok {
		return
	}
	c := components.Controls.Get(entry)

	if ebiten.IsFocused() {
		keyBuf = inpututil.AppendJustPressedKeys(keyBuf[:0])
		for _, k := range keyBuf {
			if ik, ok := keyMap[k]; ok {
				c.Controls.KeyDown(ik)
			}
		}
		keyBuf = inpututil.AppendJustReleasedKeys(keyBuf[:0])
		for _, k := range keyBuf {
			if ik, ok := keyMap[k]; ok {
				c.Controls.KeyUp(ik)
			}
		}
	} else {
		// Release events are lost while unfocused
		c.Controls.ReleaseAll()
	}

	updateGamepads(c)

	c.Instant++
	c.State = c.Controls.State(c.Instant)
}

func updateGamepads(c *components.ControlsData) {
	if config.Simulation.ScanEveryFrame {
		scanGamepads(c)
		return
	}

	gamepadBuf = inpututil.AppendJustConnectedGamepadIDs(gamepadBuf[:0])
	for _, id := range gamepadBuf {
		c.Gamepads[id] = struct{}{}
		c.Controls.GamepadConnected(ebitenGamepad{id: id})
	}
	for id := range c.Gamepads {
		if inpututil.IsGamepadJustDisconnected(id) {
			delete(c.Gamepads, id)
			c.Controls.GamepadDisconnected(ebitenGamepad{id: id})
		}
	}
}

func scanGamepads(c *components.ControlsData) {
	gamepadBuf = ebiten.AppendGamepadIDs(gamepadBuf[:0])
	scanBuf = scanBuf[:0]
	for _, id := range gamepadBuf {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			scanBuf = append(scanBuf, ebitenGamepad{id: id})
		}
	}
	c.Controls.ScanGamepads(scanBuf)
}
