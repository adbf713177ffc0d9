package ui

import (
	"bytes"
	"image/color"
	"log"
	"strconv"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// StatusUI is the telemetry connection panel in the top-right corner.
type StatusUI struct {
	UI *ebitenui.UI

	// OnToggle connects to, or disconnects from, host:port.
	OnToggle func(host string, port int)

	hostInput   *widget.TextInput
	portInput   *widget.TextInput
	statusLabel *widget.Label
	toggleBtn   *widget.Button

	normalFace text.Face
	smallFace  text.Face

	defaultHost string
	defaultPort int
}

func NewStatusUI(host string, port int, onToggle func(host string, port int)) *StatusUI {
	ui := &StatusUI{
		OnToggle:    onToggle,
		defaultHost: host,
		defaultPort: port,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *StatusUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *StatusUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	ui.hostInput = ui.newInput(140, ui.defaultHost)
	ui.hostInput.SetText(ui.defaultHost)
	row.AddChild(ui.hostInput)

	ui.portInput = ui.newInput(60, strconv.Itoa(ui.defaultPort))
	ui.portInput.SetText(strconv.Itoa(ui.defaultPort))
	row.AddChild(ui.portInput)

	ui.toggleBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Connect", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnToggle != nil {
				host, port := ui.getAddress()
				ui.OnToggle(host, port)
			}
		}),
	)
	row.AddChild(ui.toggleBtn)
	panel.AddChild(row)

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("disconnected", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)

	rootContainer.AddChild(panel)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *StatusUI) newInput(width int, placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

// getAddress falls back to the defaults for empty or invalid fields.
func (ui *StatusUI) getAddress() (string, int) {
	host := ui.hostInput.GetText()
	if host == "" {
		host = ui.defaultHost
	}
	port, err := strconv.Atoi(ui.portInput.GetText())
	if err != nil || port <= 0 || port > 65535 {
		port = ui.defaultPort
	}
	return host, port
}

// SetStatus updates the status line and the button caption.
func (ui *StatusUI) SetStatus(msg string, connected bool) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
	if ui.toggleBtn == nil {
		return
	}
	if textWidget := ui.toggleBtn.Text(); textWidget != nil {
		if connected {
			textWidget.Label = "Disconnect"
		} else {
			textWidget.Label = "Connect"
		}
	}
}

func (ui *StatusUI) Update() {
	ui.UI.Update()
}

func (ui *StatusUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
