package input

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownButton = errors.New("unknown gamepad button")
	ErrUnknownAxis   = errors.New("unknown gamepad axis")
)

// Button is a gamepad button index in the W3C standard gamepad layout.
// https://w3c.github.io/gamepad/#remapping
type Button int

const (
	ButtonRDown    Button = iota // A / Cross
	ButtonRRight                 // B / Circle
	ButtonRLeft                  // X / Square
	ButtonRUp                    // Y / Triangle
	ButtonLBumper                // LB / L1
	ButtonRBumper                // RB / R1
	ButtonLTrigger               // LT / L2
	ButtonRTrigger               // RT / R2
	ButtonLMenu                  // Back / Share
	ButtonRMenu                  // Start / Options
	ButtonLStick
	ButtonRStick
	ButtonLUp // D-pad
	ButtonLDown
	ButtonLLeft
	ButtonLRight
	ButtonMenu // Guide / PS
	ButtonCount
)

var buttonNames = [ButtonCount]string{
	ButtonRDown:    "RDown",
	ButtonRRight:   "RRight",
	ButtonRLeft:    "RLeft",
	ButtonRUp:      "RUp",
	ButtonLBumper:  "LBumper",
	ButtonRBumper:  "RBumper",
	ButtonLTrigger: "LTrigger",
	ButtonRTrigger: "RTrigger",
	ButtonLMenu:    "LMenu",
	ButtonRMenu:    "RMenu",
	ButtonLStick:   "LStick",
	ButtonRStick:   "RStick",
	ButtonLUp:      "LUp",
	ButtonLDown:    "LDown",
	ButtonLLeft:    "LLeft",
	ButtonLRight:   "LRight",
	ButtonMenu:     "Menu",
}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// ParseButton looks up a standard-layout button by name.
func ParseButton(name string) (Button, error) {
	for b := Button(0); b < ButtonCount; b++ {
		if buttonNames[b] == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownButton, name)
}

// Axis is a gamepad axis index in the W3C standard gamepad layout.
type Axis int

const (
	AxisLHorizontal Axis = iota
	AxisLVertical
	AxisRHorizontal
	AxisRVertical
	AxisCount
)

var axisNames = [AxisCount]string{
	AxisLHorizontal: "LHorizontal",
	AxisLVertical:   "LVertical",
	AxisRHorizontal: "RHorizontal",
	AxisRVertical:   "RVertical",
}

func (a Axis) String() string {
	if a < 0 || a >= AxisCount {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// ParseAxis looks up a standard-layout axis by name.
func ParseAxis(name string) (Axis, error) {
	for a := Axis(0); a < AxisCount; a++ {
		if axisNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, name)
}

// Gamepad is a handle to one connected controller. Implementations report 0
// and false for indices the controller does not have.
type Gamepad interface {
	// ButtonValue is the analog value of a button in [0, 1].
	ButtonValue(b Button) float64
	IsButtonPressed(b Button) bool
	// AxisValue is the raw axis position in [-1, 1].
	AxisValue(a Axis) float64
}
