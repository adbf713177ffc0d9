package input

import "testing"

func values(pairs map[Channel]float64) Values {
	var v Values
	for c, x := range pairs {
		v[c] = x
	}
	return v
}

func TestTransformRollSteal(t *testing.T) {
	cases := []struct {
		name              string
		yaw, roll, roll2  float64
		wantYaw, wantRoll float64
	}{
		{"half", 0.8, 0.2, 0.5, 0.4, 0.4},
		{"released", 0.8, 0.2, 0, 0.8, 0.2},
		{"full", 0.8, 0.2, 1, 0, 0.8},
		{"full_no_yaw", 0, 0.7, 1, 0, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cur := values(map[Channel]float64{
				ChannelYaw:   c.yaw,
				ChannelRoll:  c.roll,
				ChannelRoll2: c.roll2,
			})
			got := TransformControls(cur, Values{})
			if got.Yaw.Value != c.wantYaw {
				t.Errorf("yaw: got %v, want %v", got.Yaw.Value, c.wantYaw)
			}
			if got.Roll.Value != c.wantRoll {
				t.Errorf("roll: got %v, want %v", got.Roll.Value, c.wantRoll)
			}
		})
	}
}

func TestTransformBooleans(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		want bool
	}{
		{"partial_trigger", 0.3, true},
		{"zero", 0, false},
		{"full", 1, true},
		{"negative", -0.2, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TransformControls(values(map[Channel]float64{
				ChannelBoost:     c.raw,
				ChannelJump:      c.raw,
				ChannelHandbrake: c.raw,
				ChannelBallcam:   c.raw,
				ChannelReset:     c.raw,
			}), Values{})
			for name, b := range map[string]ButtonStatus{
				"boost":     got.Boost,
				"jump":      got.Jump,
				"handbrake": got.Handbrake,
				"ballcam":   got.Ballcam,
				"reset":     got.Reset,
			} {
				if b.Value != c.want {
					t.Errorf("%s: got %v, want %v", name, b.Value, c.want)
				}
			}
		})
	}
}

func TestTransformPassThrough(t *testing.T) {
	got := TransformControls(values(map[Channel]float64{
		ChannelThrottle: -0.25,
		ChannelSteer:    0.5,
		ChannelPitch:    -1,
	}), Values{})

	if got.Throttle.Value != -0.25 || got.Steer.Value != 0.5 || got.Pitch.Value != -1 {
		t.Fatalf("pass-through channels altered: %+v", got)
	}
}

func TestTransformChangedFlags(t *testing.T) {
	prev := values(map[Channel]float64{
		ChannelThrottle: 1,
		ChannelBoost:    0.3,
		ChannelYaw:      0.8,
	})
	cur := values(map[Channel]float64{
		ChannelThrottle: 1,
		ChannelBoost:    0.9, // still true
		ChannelYaw:      0.8,
		ChannelRoll2:    1, // yaw becomes roll
		ChannelBallcam:  1,
	})

	got := TransformControls(cur, prev)

	if got.Throttle.Changed {
		t.Errorf("throttle unchanged but flagged")
	}
	if got.Boost.Changed {
		t.Errorf("boost stayed on but flagged")
	}
	if !got.Yaw.Changed || !got.Roll.Changed {
		t.Errorf("roll2 moved yaw into roll but flags are %v/%v", got.Yaw.Changed, got.Roll.Changed)
	}
	if !got.Ballcam.JustPressed() {
		t.Errorf("ballcam rising edge not reported")
	}
	if got.Reset.Changed || got.Reset.JustReleased() {
		t.Errorf("reset idle but flagged")
	}
}
