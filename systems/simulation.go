package systems

import (
	"log"

	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/config"
	"github.com/automoto/rocketview/network"
	"github.com/automoto/rocketview/physics"
	"github.com/automoto/rocketview/shared/gamemath"
	"github.com/automoto/rocketview/shared/messages"
	"github.com/automoto/rocketview/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation advances the displayed state by one frame. Once the
// telemetry client has delivered a frame the latest received frame wins;
// until then the local engine steps with the sampled controls.
func UpdateSimulation(e *ecs.ECS) {
	sessionEntry, ok := components.Session.First(e.World)
	if !ok {
		return
	}
	session := components.Session.Get(sessionEntry)

	var state components.ControlsData
	if entry, ok := components.Controls.First(e.World); ok {
		state = *components.Controls.Get(entry)
	}
	handleToggles(e, session, state)

	if session.Client != nil && session.Client.Live() {
		session.Source = components.SourceRemote
		if frame := session.Client.LatestFrame(); frame != nil {
			applyFrame(e, session, frame)
		}
		return
	}

	session.Source = components.SourceLocal
	session.Engine.SetControls(physics.FromControlState(state.State))
	session.Engine.Step(config.Simulation.Substeps)
	writeBodies(e, session.Engine.State())
}

func handleToggles(e *ecs.ECS, session *components.SessionData, c components.ControlsData) {
	if c.State.Ballcam.JustPressed() {
		if entry, ok := components.Camera.First(e.World); ok {
			cam := components.Camera.Get(entry)
			cam.Follow.Ballcam = !cam.Follow.Ballcam
		}
	}

	if !c.State.Reset.JustPressed() {
		return
	}
	if session.Offline || session.Client == nil {
		session.Engine.ResetToKickoff()
		return
	}
	url := network.URL(session.Host, session.Port)
	if session.Client.Toggle(url) {
		log.Printf("[telemetry] connecting to %s", url)
	}
}

func applyFrame(e *ecs.ECS, session *components.SessionData, frame *messages.Frame) {
	s, err := frame.State()
	if err != nil {
		log.Printf("[telemetry] dropping frame: %v", err)
		return
	}
	session.RemoteFrames++
	writeBodies(e, s)

	if frame.Settings == nil {
		return
	}
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(entry)
	cam.Ease.Retarget(&cam.Follow, gamemath.CameraSettings{
		Distance: frame.Settings.Distance,
		Height:   frame.Settings.Height,
		Pitch:    frame.Settings.Pitch,
		FOV:      frame.Settings.FOV,
	})
}

func writeBodies(e *ecs.ECS, s physics.State) {
	if car, ok := tags.Car.First(e.World); ok {
		body := components.Body.Get(car)
		body.Pos = s.CarPos
		body.Ang = s.CarAng
		body.WheelPos = s.WheelPos
		body.WheelAng = s.WheelAng
	}
	if ball, ok := tags.Ball.First(e.World); ok {
		body := components.Body.Get(ball)
		body.Pos = s.BallPos
		body.Ang = s.BallAng
	}
}
