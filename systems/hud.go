package systems

import (
	"fmt"

	"github.com/automoto/rocketview/components"
	"github.com/automoto/rocketview/config"
	"github.com/automoto/rocketview/fonts"
	"github.com/automoto/rocketview/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 18

type axisRow struct {
	label  string
	status input.AxisStatus
}

type lampRow struct {
	label  string
	status input.ButtonStatus
}

// DrawHUD renders the control state, the camera settings and the telemetry
// connection in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	ui := config.UI
	x, y := float32(ui.HUDMargin), float32(ui.HUDMargin)

	if entry, ok := components.Session.First(e.World); ok {
		session := components.Session.Get(entry)
		drawText(screen, fonts.HUDSmall, connectionLine(session), x, y)
		y += hudLineHeight
		if session.Client != nil {
			if err := session.Client.LastError(); err != nil {
				drawText(screen, fonts.HUDSmall, "error: "+err.Error(), x, y)
				y += hudLineHeight
			}
		}
	}

	if entry, ok := components.Camera.First(e.World); ok {
		cam := components.Camera.Get(entry).Follow
		mode := "car"
		if cam.Ballcam {
			mode = "ball"
		}
		drawText(screen, fonts.HUDSmall, fmt.Sprintf("cam %s  dist %.0f  height %.0f  pitch %.1f  fov %.0f",
			mode, cam.Distance, cam.Height, cam.Pitch, cam.FOV), x, y)
		y += hudLineHeight
	}

	entry, ok := components.Controls.First(e.World)
	if !ok {
		return
	}
	s := components.Controls.Get(entry).State

	y += hudLineHeight / 2
	for _, row := range []axisRow{
		{"throttle", s.Throttle},
		{"steer", s.Steer},
		{"pitch", s.Pitch},
		{"yaw", s.Yaw},
		{"roll", s.Roll},
	} {
		drawText(screen, fonts.HUD, row.label, x, y)
		drawAxisBar(screen, x+70, y-float32(ui.BarHeight), row.status.Value)
		y += hudLineHeight
	}

	lx := x
	for _, row := range []lampRow{
		{"boost", s.Boost},
		{"jump", s.Jump},
		{"handbrake", s.Handbrake},
	} {
		clr := ui.LampOff
		if row.status.Value {
			clr = ui.LampOn
		}
		vector.DrawFilledRect(screen, lx, y-float32(ui.LampSize), float32(ui.LampSize), float32(ui.LampSize), clr, false)
		drawText(screen, fonts.HUD, row.label, lx+float32(ui.LampSize)+4, y)
		lx += 90
	}
}

func connectionLine(session *components.SessionData) string {
	if session.Offline || session.Client == nil {
		return "source: local (offline)"
	}
	line := fmt.Sprintf("source: %s  telemetry: %s", session.Source, session.Client.State())
	if session.Source == components.SourceRemote {
		line += fmt.Sprintf("  frames: %d", session.RemoteFrames)
	}
	return line
}

// drawAxisBar draws a signed bar filled from its centre towards v.
func drawAxisBar(screen *ebiten.Image, x, y float32, v float64) {
	ui := config.UI
	w, h := float32(ui.BarWidth), float32(ui.BarHeight)
	vector.DrawFilledRect(screen, x, y, w, h, ui.BarBg, false)

	mid := x + w/2
	fill := float32(v) * w / 2
	if fill < 0 {
		vector.DrawFilledRect(screen, mid+fill, y, -fill, h, ui.BarFg, false)
	} else {
		vector.DrawFilledRect(screen, mid, y, fill, h, ui.BarFg, false)
	}
	vector.StrokeLine(screen, mid, y, mid, y+h, 1, ui.Lines, false)
}

func drawText(screen *ebiten.Image, face fonts.FontName, str string, x, y float32) {
	text.Draw(screen, str, face.Get(), int(x), int(y), config.UI.Text)
}
