package tags

import "github.com/yohamta/donburi"

var (
	Car  = donburi.NewTag().SetName("Car")
	Ball = donburi.NewTag().SetName("Ball")
)
