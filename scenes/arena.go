package scenes

import (
	"fmt"
	"log"
	"sync"

	"github.com/automoto/rocketview/components"
	cfg "github.com/automoto/rocketview/config"
	"github.com/automoto/rocketview/input"
	"github.com/automoto/rocketview/network"
	"github.com/automoto/rocketview/physics"
	"github.com/automoto/rocketview/shared/arena"
	"github.com/automoto/rocketview/systems"
	"github.com/automoto/rocketview/systems/factory"
	"github.com/automoto/rocketview/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaConfig holds everything the arena scene needs from main.
type ArenaConfig struct {
	Arena    *arena.Arena
	Engine   physics.Engine
	Client   *network.Client // nil when offline
	Bindings input.Bindings
	Host     string
	Port     int
}

// ArenaScene drives the car locally or mirrors a telemetry feed, and draws
// the result with the follow camera.
type ArenaScene struct {
	ecs      *ecs.ECS
	config   ArenaConfig
	statusUI *ui.StatusUI
	session  *donburi.Entry
	once     sync.Once
}

func NewArenaScene(config ArenaConfig) *ArenaScene {
	return &ArenaScene{config: config}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()

	if as.statusUI != nil {
		as.statusUI.Update()
		state := as.config.Client.State()
		as.statusUI.SetStatus(as.statusLine(), state == network.StateConnected || state == network.StateConnecting)
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	if as.ecs == nil {
		screen.Fill(cfg.UI.Background)
		return
	}
	as.ecs.Draw(screen)
	if as.statusUI != nil {
		as.statusUI.Draw(screen)
	}
}

// Close persists settings and drops the telemetry connection.
func (as *ArenaScene) Close() {
	if as.ecs != nil {
		systems.SaveCurrentSettings(as.ecs)
	}
	if as.config.Client != nil {
		as.config.Client.Disconnect()
	}
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdateSimulation)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(components.LayerWorld, systems.DrawArena)
	ecs.AddRenderer(components.LayerWorld, systems.DrawBodies)
	ecs.AddRenderer(components.LayerHUD, systems.DrawHUD)

	as.ecs = ecs

	factory.CreateCamera(as.ecs)
	factory.CreateControls(as.ecs, as.config.Bindings)
	factory.CreateBodies(as.ecs, as.config.Engine)
	as.session = factory.CreateSession(as.ecs, components.SessionData{
		Arena:   as.config.Arena,
		Engine:  as.config.Engine,
		Client:  as.config.Client,
		Host:    as.config.Host,
		Port:    as.config.Port,
		Offline: as.config.Client == nil,
	})

	if as.config.Client == nil {
		return
	}
	as.statusUI = ui.NewStatusUI(as.config.Host, as.config.Port, as.toggle)
	if cfg.Network.Autoconnect {
		as.toggle(as.config.Host, as.config.Port)
	}
}

func (as *ArenaScene) toggle(host string, port int) {
	session := components.Session.Get(as.session)
	session.Host = host
	session.Port = port
	cfg.Network.Host = host
	cfg.Network.Port = port

	url := network.URL(host, port)
	if as.config.Client.Toggle(url) {
		log.Printf("[telemetry] connecting to %s", url)
	}
}

func (as *ArenaScene) statusLine() string {
	client := as.config.Client
	switch client.State() {
	case network.StateConnected, network.StateConnecting:
		return fmt.Sprintf("%s %s", client.State(), client.URL())
	case network.StateError:
		if err := client.LastError(); err != nil {
			return fmt.Sprintf("error: %v", err)
		}
	}
	return client.State().String()
}
