package components

import (
	"github.com/automoto/rocketview/network"
	"github.com/automoto/rocketview/physics"
	"github.com/automoto/rocketview/shared/arena"
	"github.com/yohamta/donburi"
)

// StateSource tells where the displayed state came from on the last frame.
type StateSource int

const (
	SourceLocal StateSource = iota
	SourceRemote
)

func (s StateSource) String() string {
	if s == SourceRemote {
		return "telemetry"
	}
	return "local"
}

// SessionData ties the frame loop to its state producers: the local engine
// and the telemetry client.
type SessionData struct {
	Arena   *arena.Arena
	Engine  physics.Engine
	Client  *network.Client
	Host    string
	Port    int
	Offline bool

	Source       StateSource
	RemoteFrames uint64
}

var Session = donburi.NewComponentType[SessionData]()
