package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/rocketview/components"
	cfg "github.com/automoto/rocketview/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings = cfg.SavedSettings

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "rocketview",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettingsGlobal applies loaded settings to the config defaults
// before the scene is built.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	saved.Apply()
}

// SaveCurrentSettings saves the session endpoint and ballcam mode. Camera
// values come from the config so telemetry overrides are not persisted.
func SaveCurrentSettings(e *ecs.ECS) {
	saved := cfg.CurrentSettings()
	if entry, ok := components.Session.First(e.World); ok {
		session := components.Session.Get(entry)
		saved.Host = session.Host
		saved.Port = session.Port
	}
	if entry, ok := components.Camera.First(e.World); ok {
		ballcam := components.Camera.Get(entry).Follow.Ballcam
		saved.Ballcam = &ballcam
	}
	_ = SaveSettings(saved)
}
