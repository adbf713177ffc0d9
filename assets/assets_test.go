package assets

import (
	"math"
	"testing"
)

func TestLoadDefaultArena(t *testing.T) {
	a, err := LoadArena(DefaultArena)
	if err != nil {
		t.Fatalf("LoadArena: %v", err)
	}

	if a.Width != 8192 || a.Length != 10240 {
		t.Errorf("size = %vx%v, want 8192x10240", a.Width, a.Length)
	}
	if len(a.Walls) != 4 {
		t.Errorf("walls = %d, want 4", len(a.Walls))
	}
	if len(a.Goals) != 2 || a.Goals[0].Team != 0 || a.Goals[1].Team != 1 {
		t.Errorf("goals = %+v", a.Goals)
	}
	if a.CarKickoff.X != 0 || a.CarKickoff.Z != 2560 || math.Abs(a.CarKickoff.Yaw+math.Pi/2) > 1e-9 {
		t.Errorf("car kickoff = %+v", a.CarKickoff)
	}
	if a.BallKickoff.X != 0 || a.BallKickoff.Z != 0 {
		t.Errorf("ball kickoff = %+v", a.BallKickoff)
	}
}

func TestLoadArenaUnknown(t *testing.T) {
	if _, err := LoadArena("nope"); err == nil {
		t.Error("LoadArena(nope) succeeded")
	}
}

func TestArenaNames(t *testing.T) {
	names, err := ArenaNames()
	if err != nil {
		t.Fatalf("ArenaNames: %v", err)
	}
	if len(names) == 0 || names[0] != DefaultArena {
		t.Errorf("names = %v", names)
	}
}
