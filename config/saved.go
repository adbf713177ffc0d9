package config

import "log"

// SavedSettings represents the settings data stored on disk. Ballcam and
// Pitch are pointers because their zero values are meaningful; a nil field
// keeps the default.
type SavedSettings struct {
	Host     string              `json:"host"`
	Port     int                 `json:"port"`
	Ballcam  *bool               `json:"ballcam,omitempty"`
	Distance float64             `json:"distance"`
	Height   float64             `json:"height"`
	Pitch    *float64            `json:"pitch,omitempty"`
	FOV      float64             `json:"fov"`
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// CurrentSettings snapshots the persisted parts of the configuration.
func CurrentSettings() *SavedSettings {
	ballcam := Camera.Ballcam
	pitch := Camera.Pitch
	return &SavedSettings{
		Host:     Network.Host,
		Port:     Network.Port,
		Ballcam:  &ballcam,
		Distance: Camera.Distance,
		Height:   Camera.Height,
		Pitch:    &pitch,
		FOV:      Camera.FOV,
		Bindings: Input.Bindings,
	}
}

// Apply overrides the defaults with every field present in s.
func (s *SavedSettings) Apply() {
	if s == nil {
		return
	}
	if s.Host != "" {
		Network.Host = s.Host
	}
	if s.Port > 0 {
		Network.Port = s.Port
	}
	if s.Ballcam != nil {
		Camera.Ballcam = *s.Ballcam
	}
	if s.Distance > 0 {
		Camera.Distance = s.Distance
	}
	if s.Height > 0 {
		Camera.Height = s.Height
	}
	if s.Pitch != nil {
		Camera.Pitch = *s.Pitch
	}
	if s.FOV > 0 {
		Camera.FOV = s.FOV
	}
	if s.Bindings != nil {
		if _, err := Bindings(s.Bindings); err != nil {
			log.Printf("Warning: Ignoring saved bindings: %v", err)
		} else {
			Input.Bindings = s.Bindings
		}
	}
}
