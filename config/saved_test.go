package config

import (
	"encoding/json"
	"testing"
)

// keepConfig restores the globals touched by Apply.
func keepConfig(t *testing.T) {
	t.Helper()
	camera, network, in := Camera, Network, Input
	t.Cleanup(func() { Camera, Network, Input = camera, network, in })
}

func TestSavedSettingsMissingFieldsKeepDefaults(t *testing.T) {
	keepConfig(t)
	Camera.Pitch = -4
	Camera.Ballcam = true

	var s SavedSettings
	if err := json.Unmarshal([]byte(`{"host":"10.0.0.2","port":7000}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.Apply()

	if Camera.Pitch != -4 {
		t.Errorf("pitch = %v, want the -4 default", Camera.Pitch)
	}
	if !Camera.Ballcam {
		t.Errorf("ballcam reset to false")
	}
	if Network.Host != "10.0.0.2" || Network.Port != 7000 {
		t.Errorf("endpoint = %s:%d", Network.Host, Network.Port)
	}
}

func TestSavedSettingsZeroValuesApply(t *testing.T) {
	keepConfig(t)
	Camera.Pitch = -4
	Camera.Ballcam = true

	var s SavedSettings
	if err := json.Unmarshal([]byte(`{"pitch":0,"ballcam":false}`), &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.Apply()

	if Camera.Pitch != 0 || Camera.Ballcam {
		t.Errorf("pitch = %v ballcam = %v, want 0 and false", Camera.Pitch, Camera.Ballcam)
	}
}

func TestSavedSettingsRoundTrip(t *testing.T) {
	keepConfig(t)
	Camera.Pitch = -7
	Camera.Ballcam = false

	data, err := json.Marshal(CurrentSettings())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	Camera.Pitch = -4
	Camera.Ballcam = true

	var s SavedSettings
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s.Apply()
	if Camera.Pitch != -7 || Camera.Ballcam {
		t.Errorf("pitch = %v ballcam = %v, want -7 and false", Camera.Pitch, Camera.Ballcam)
	}
}

func TestSavedSettingsBadBindingsIgnored(t *testing.T) {
	keepConfig(t)
	want := Input.Bindings

	s := SavedSettings{Bindings: map[string][]string{"fly": {"key:KeyF"}}}
	s.Apply()

	if len(Input.Bindings) != len(want) || Input.Bindings["forward"][0] != want["forward"][0] {
		t.Errorf("invalid saved bindings replaced the defaults")
	}
}
