package config

import "github.com/automoto/rocketview/input"

// InputConfig holds the default binding table, keyed by action name. Each
// entry is a source spec understood by input.ParseSource.
type InputConfig struct {
	Bindings map[string][]string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[string][]string{
			"forward":      {"key:KeyP", "button:RTrigger"},
			"back":         {"key:KeyS", "button:LTrigger"},
			"left":         {"key:KeyA"},
			"right":        {"key:KeyD", "axis:LHorizontal"},
			"jump":         {"key:Space", "button:RDown"},
			"boost":        {"key:KeyL", "button:RBumper"},
			"handbrake":    {"key:ShiftLeft", "button:LBumper"},
			"pitchForward": {"key:KeyW"},
			"pitchBack":    {"key:KeyS", "axis:LVertical"},
			"yawLeft":      {"key:KeyA"},
			"yawRight":     {"key:KeyD", "axis:LHorizontal"},
			"rollLeft":     {"key:ShiftLeft", "button:RLeft"},
			"rollRight":    {"key:Enter", "button:RRight"},
			"roll":         {"button:LBumper"},
			"ballcam":      {"key:Quote", "button:RUp"},
			"reset":        {"key:KeyE", "button:LMenu"},
		},
	}
}

// Bindings builds fresh sources from table, falling back to the default
// table when table is nil.
func Bindings(table map[string][]string) (input.Bindings, error) {
	if table == nil {
		table = Input.Bindings
	}
	return input.ParseBindings(table)
}
