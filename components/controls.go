package components

import (
	"github.com/automoto/rocketview/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ControlsData owns the input controls and the frame counter used as the
// sampling instant.
type ControlsData struct {
	Controls *input.Controls
	Instant  input.Instant
	State    input.ControlState

	// Gamepads seen connected, so disconnects can be matched.
	Gamepads map[ebiten.GamepadID]struct{}
}

var Controls = donburi.NewComponentType[ControlsData]()
