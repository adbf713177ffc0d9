package input

import "testing"

func TestSamplerCollectsEveryChannel(t *testing.T) {
	var dev DeviceState
	dev.SetKey(KeyL, true)

	var sources [ChannelCount]*Source
	sources[ChannelBoost] = KeyInput(KeyL)

	s := NewSampler[Values](sources, func(cur, prev Values) Values { return cur })
	got := s.State(&dev, 1)

	for c := Channel(0); c < ChannelCount; c++ {
		want := 0.0
		if c == ChannelBoost {
			want = 1
		}
		if got[c] != want {
			t.Fatalf("channel %v: got %v, want %v", c, got[c], want)
		}
	}
}

func TestSamplerPassesPreviousValues(t *testing.T) {
	var dev DeviceState
	var sources [ChannelCount]*Source
	sources[ChannelJump] = KeyInput(KeySpace)

	type pair struct{ cur, prev float64 }
	s := NewSampler[pair](sources, func(cur, prev Values) pair {
		return pair{cur[ChannelJump], prev[ChannelJump]}
	})

	dev.SetKey(KeySpace, true)
	if got := s.State(&dev, 1); got != (pair{1, 0}) {
		t.Fatalf("T1: got %+v", got)
	}
	dev.SetKey(KeySpace, false)
	if got := s.State(&dev, 2); got != (pair{0, 1}) {
		t.Fatalf("T2: got %+v", got)
	}
}

func TestSamplerSameInstantReplaysCache(t *testing.T) {
	dev := &countingDevice{}
	c := NewControls(Bindings{
		ActionForward: {KeyInput(KeyW), ButtonInput(ButtonRTrigger)},
		ActionRight:   {AxisInput(AxisLHorizontal)},
	})
	s := c.sampler

	first := s.State(dev, 10)
	reads := dev.reads
	dev.SetKey(KeyW, true)
	second := s.State(dev, 10)

	if first != second {
		t.Fatalf("same instant produced different states:\n%+v\n%+v", first, second)
	}
	if dev.reads != reads {
		t.Fatalf("same instant re-read the device")
	}
	if third := s.State(dev, 11); third.Throttle.Value != 1 || !third.Throttle.Changed {
		t.Fatalf("new instant did not observe input: %+v", third.Throttle)
	}
}
