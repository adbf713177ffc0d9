package config

import "image/color"

// Config is the window configuration.
type Config struct {
	Width  int
	Height int
	Title  string
}

// CameraConfig holds the follow camera defaults. Telemetry frames may
// override Distance, Height, Pitch and FOV at runtime.
type CameraConfig struct {
	Distance float64 // behind the car (or away from the ball with ballcam)
	Height   float64 // above the car
	Offset   float64 // vertical offset of the look-at point in car view
	Pitch    float64 // camera angle in degrees, negative looks down
	FOV      float64 // vertical field of view in degrees
	Ballcam  bool

	// Seconds to ease towards new settings received over telemetry.
	EaseSeconds float32

	Near float64 // points closer than this along the view axis are culled
}

// NetworkConfig describes the telemetry endpoint.
type NetworkConfig struct {
	Host        string
	Port        int
	Autoconnect bool
}

// SimulationConfig controls the local engine and the input adapter.
type SimulationConfig struct {
	Arena    string
	Substeps int // engine ticks per frame
	// Poll connected gamepads every frame instead of following connect
	// events, for platforms that never report them. The lowest ID then wins.
	ScanEveryFrame bool
	// Reset resets the local engine instead of toggling telemetry.
	Offline bool
}

// UIConfig contains HUD layout and colours.
type UIConfig struct {
	HUDMargin   float64
	BarWidth    float64
	BarHeight   float64
	LampSize    float64
	HUDFontSize float64

	Background color.RGBA
	Floor      color.RGBA
	Lines      color.RGBA
	Wall       color.RGBA
	BlueGoal   color.RGBA
	OrangeGoal color.RGBA
	Car        color.RGBA
	Wheel      color.RGBA
	Ball       color.RGBA
	BarBg      color.RGBA
	BarFg      color.RGBA
	LampOff    color.RGBA
	LampOn     color.RGBA
	Text       color.RGBA
}

var C *Config
var Camera CameraConfig
var Network NetworkConfig
var Simulation SimulationConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "rocketview",
	}

	Camera = CameraConfig{
		Distance:    350,
		Height:      110,
		Offset:      -4,
		Pitch:       -4,
		FOV:         110,
		Ballcam:     true,
		EaseSeconds: 0.5,
		Near:        10,
	}

	Network = NetworkConfig{
		Host:        "localhost",
		Port:        7777,
		Autoconnect: false,
	}

	Simulation = SimulationConfig{
		Arena:          "standard",
		Substeps:       2,
		ScanEveryFrame: false,
		Offline:        false,
	}

	UI = UIConfig{
		HUDMargin:   12,
		BarWidth:    120,
		BarHeight:   10,
		LampSize:    10,
		HUDFontSize: 14,

		Background: color.RGBA{R: 18, G: 22, B: 30, A: 255},
		Floor:      color.RGBA{R: 40, G: 92, B: 52, A: 255},
		Lines:      color.RGBA{R: 220, G: 230, B: 220, A: 140},
		Wall:       color.RGBA{R: 130, G: 140, B: 160, A: 255},
		BlueGoal:   color.RGBA{R: 40, G: 110, B: 255, A: 200},
		OrangeGoal: color.RGBA{R: 255, G: 130, B: 20, A: 200},
		Car:        color.RGBA{R: 70, G: 150, B: 255, A: 255},
		Wheel:      color.RGBA{R: 30, G: 30, B: 30, A: 255},
		Ball:       color.RGBA{R: 235, G: 235, B: 235, A: 255},
		BarBg:      color.RGBA{R: 0, G: 0, B: 0, A: 160},
		BarFg:      color.RGBA{R: 255, G: 200, B: 60, A: 255},
		LampOff:    color.RGBA{R: 60, G: 60, B: 60, A: 255},
		LampOn:     color.RGBA{R: 0, G: 255, B: 60, A: 255},
		Text:       White,
	}
}
