package systems

import (
	"github.com/automoto/rocketview/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var standardButtons = [input.ButtonCount]ebiten.StandardGamepadButton{
	input.ButtonRDown:    ebiten.StandardGamepadButtonRightBottom,
	input.ButtonRRight:   ebiten.StandardGamepadButtonRightRight,
	input.ButtonRLeft:    ebiten.StandardGamepadButtonRightLeft,
	input.ButtonRUp:      ebiten.StandardGamepadButtonRightTop,
	input.ButtonLBumper:  ebiten.StandardGamepadButtonFrontTopLeft,
	input.ButtonRBumper:  ebiten.StandardGamepadButtonFrontTopRight,
	input.ButtonLTrigger: ebiten.StandardGamepadButtonFrontBottomLeft,
	input.ButtonRTrigger: ebiten.StandardGamepadButtonFrontBottomRight,
	input.ButtonLMenu:    ebiten.StandardGamepadButtonCenterLeft,
	input.ButtonRMenu:    ebiten.StandardGamepadButtonCenterRight,
	input.ButtonLStick:   ebiten.StandardGamepadButtonLeftStick,
	input.ButtonRStick:   ebiten.StandardGamepadButtonRightStick,
	input.ButtonLUp:      ebiten.StandardGamepadButtonLeftTop,
	input.ButtonLDown:    ebiten.StandardGamepadButtonLeftBottom,
	input.ButtonLLeft:    ebiten.StandardGamepadButtonLeftLeft,
	input.ButtonLRight:   ebiten.StandardGamepadButtonLeftRight,
	input.ButtonMenu:     ebiten.StandardGamepadButtonCenterCenter,
}

var standardAxes = [input.AxisCount]ebiten.StandardGamepadAxis{
	input.AxisLHorizontal: ebiten.StandardGamepadAxisLeftStickHorizontal,
	input.AxisLVertical:   ebiten.StandardGamepadAxisLeftStickVertical,
	input.AxisRHorizontal: ebiten.StandardGamepadAxisRightStickHorizontal,
	input.AxisRVertical:   ebiten.StandardGamepadAxisRightStickVertical,
}

// ebitenGamepad reads one controller through Ebitengine's standard layout.
// Pads without a standard mapping read as idle.
type ebitenGamepad struct {
	id ebiten.GamepadID
}

func (g ebitenGamepad) standard() bool {
	return ebiten.IsStandardGamepadLayoutAvailable(g.id)
}

func (g ebitenGamepad) ButtonValue(b input.Button) float64 {
	if b < 0 || b >= input.ButtonCount || !g.standard() {
		return 0
	}
	return ebiten.StandardGamepadButtonValue(g.id, standardButtons[b])
}

func (g ebitenGamepad) IsButtonPressed(b input.Button) bool {
	if b < 0 || b >= input.ButtonCount || !g.standard() {
		return false
	}
	return ebiten.IsStandardGamepadButtonPressed(g.id, standardButtons[b])
}

func (g ebitenGamepad) AxisValue(a input.Axis) float64 {
	if a < 0 || a >= input.AxisCount || !g.standard() {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(g.id, standardAxes[a])
}
