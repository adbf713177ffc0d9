package config

import (
	"testing"

	"github.com/automoto/rocketview/input"
)

func TestDefaultBindingsParse(t *testing.T) {
	b, err := Bindings(nil)
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}
	for a := input.Action(0); a < input.ActionCount; a++ {
		if len(b[a]) == 0 {
			t.Errorf("action %v has no default binding", a)
		}
	}
}

func TestDefaultBindingsDrive(t *testing.T) {
	b, err := Bindings(nil)
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}
	c := input.NewControls(b)

	tests := []struct {
		name  string
		key   input.Key
		check func(input.ControlState) bool
	}{
		{"P throttles", input.KeyP, func(s input.ControlState) bool { return s.Throttle.Value == 1 }},
		{"S reverses and pitches", input.KeyS, func(s input.ControlState) bool {
			return s.Throttle.Value == -1 && s.Pitch.Value == 1
		}},
		{"D steers and yaws right", input.KeyD, func(s input.ControlState) bool {
			return s.Steer.Value == 1 && s.Yaw.Value == 1
		}},
		{"Space jumps", input.KeySpace, func(s input.ControlState) bool { return s.Jump.Value }},
		{"Quote toggles ballcam", input.KeyQuote, func(s input.ControlState) bool { return s.Ballcam.Value }},
		{"E resets", input.KeyE, func(s input.ControlState) bool { return s.Reset.Value }},
	}
	at := input.Instant(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c.ReleaseAll()
			c.KeyDown(tt.key)
			at++
			if s := c.State(at); !tt.check(s) {
				t.Errorf("state = %+v", s)
			}
		})
	}
}

func TestBindingsCustomTable(t *testing.T) {
	b, err := Bindings(map[string][]string{"jump": {"key:KeyJ"}})
	if err != nil {
		t.Fatalf("Bindings: %v", err)
	}
	if len(b) != 1 || b[input.ActionJump][0].String() != "key:KeyJ" {
		t.Errorf("bindings = %v", b.Table())
	}
}

func TestGamepadSelectionFollowsConnectEvents(t *testing.T) {
	if Simulation.ScanEveryFrame {
		t.Fatal("per-frame scan is on by default and would override the first connected pad")
	}
}
