package gamemath

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// CameraSettings are the follow camera tunables a server may override.
type CameraSettings struct {
	Distance float64
	Height   float64
	Pitch    float64
	FOV      float64
}

func (c *FollowCamera) Settings() CameraSettings {
	return CameraSettings{Distance: c.Distance, Height: c.Height, Pitch: c.Pitch, FOV: c.FOV}
}

func (c *FollowCamera) fields() [4]*float64 {
	return [4]*float64{&c.Distance, &c.Height, &c.Pitch, &c.FOV}
}

// CameraEase moves a FollowCamera towards a target over Seconds. A zero
// Seconds applies targets immediately.
type CameraEase struct {
	Seconds float32

	target    CameraSettings
	hasTarget bool
	tweens    [4]*gween.Tween
}

// Retarget starts easing cam towards to. It does nothing and returns false
// when to equals the current target, so repeated frames with the same
// settings do not restart the ease.
func (e *CameraEase) Retarget(cam *FollowCamera, to CameraSettings) bool {
	if e.hasTarget && e.target == to {
		return false
	}
	e.target = to
	e.hasTarget = true

	goals := [4]float64{to.Distance, to.Height, to.Pitch, to.FOV}
	for i, f := range cam.fields() {
		e.tweens[i] = nil
		if *f == goals[i] {
			continue
		}
		if e.Seconds <= 0 {
			*f = goals[i]
			continue
		}
		e.tweens[i] = gween.New(float32(*f), float32(goals[i]), e.Seconds, ease.OutCubic)
	}
	return true
}

// Update advances every running tween by dt seconds.
func (e *CameraEase) Update(cam *FollowCamera, dt float32) {
	goals := [4]float64{e.target.Distance, e.target.Height, e.target.Pitch, e.target.FOV}
	for i, f := range cam.fields() {
		tw := e.tweens[i]
		if tw == nil {
			continue
		}
		v, done := tw.Update(dt)
		if done {
			*f = goals[i]
			e.tweens[i] = nil
			continue
		}
		*f = float64(v)
	}
}

// Active reports whether any field is still moving.
func (e *CameraEase) Active() bool {
	for _, tw := range e.tweens {
		if tw != nil {
			return true
		}
	}
	return false
}

// Target returns the last settings passed to Retarget.
func (e *CameraEase) Target() (CameraSettings, bool) {
	return e.target, e.hasTarget
}
