package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/rocketview/assets"
	"github.com/automoto/rocketview/config"
	"github.com/automoto/rocketview/fonts"
	"github.com/automoto/rocketview/network"
	"github.com/automoto/rocketview/physics"
	"github.com/automoto/rocketview/scenes"
	"github.com/automoto/rocketview/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.Close()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func loadFonts() {
	for name, size := range map[fonts.FontName]float64{
		fonts.HUD:      config.UI.HUDFontSize,
		fonts.HUDSmall: config.UI.HUDFontSize - 3,
	} {
		if err := fonts.LoadFontWithSize(name, goregular.TTF, size); err != nil {
			log.Fatalf("Failed to load fonts: %v", err)
		}
	}
}

func main() {
	// Initialize persistence and load saved settings before flags so that
	// flags override them.
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	host := flag.String("host", config.Network.Host, "Telemetry server host")
	port := flag.Int("port", config.Network.Port, "Telemetry server port")
	offline := flag.Bool("offline", config.Simulation.Offline, "Never connect; reset restarts the kickoff")
	arenaName := flag.String("arena", config.Simulation.Arena, "Embedded arena to drive in")
	connect := flag.Bool("connect", config.Network.Autoconnect, "Connect to the telemetry server on start")
	flag.Parse()

	config.Network.Host = *host
	config.Network.Port = *port
	config.Network.Autoconnect = *connect
	config.Simulation.Offline = *offline

	a, err := assets.LoadArena(*arenaName)
	if err != nil {
		names, _ := assets.ArenaNames()
		log.Fatalf("Failed to load arena: %v (available: %v)", err, names)
	}
	bindings, err := config.Bindings(config.Input.Bindings)
	if err != nil {
		log.Fatalf("Invalid bindings: %v", err)
	}

	var client *network.Client
	if !*offline {
		client = network.NewClient()
	}

	loadFonts()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	scene := scenes.NewArenaScene(scenes.ArenaConfig{
		Arena:    a,
		Engine:   physics.NewArcade(a),
		Client:   client,
		Bindings: bindings,
		Host:     *host,
		Port:     *port,
	})
	if err := ebiten.RunGame(NewGame(scene)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
