package locomotion

import (
	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
)

// Effects is what presentation reads from the controller. Continuous values
// reflect the latest state; the events cover everything since the previous
// Effects call.
type Effects struct {
	FieldOfViewOffset float64 // degrees added to the camera field of view
	TimeScaleFactor   float64
	Height            float64

	CameraShakes     []config.CameraShake
	BulletTime       *config.BulletTime
	ThrustDownLanded bool
	ManeuverStarted  bool
	BlinkStarted     bool
	SlideStarted     bool
}

// Effects returns the presentation state and drains the pending events.
func (c *Controller) Effects() Effects {
	e := c.events
	c.events = Effects{}
	e.FieldOfViewOffset = c.fovCharge + c.fovBlink
	e.TimeScaleFactor = c.timeScale
	e.Height = c.height
	return e
}

// LateUpdate eases the field of view channels and the time scale factor.
// It runs once per rendered frame on unscaled time.
func (c *Controller) LateUpdate(unscaledDt float64) {
	b := c.settings.Blink

	chargeTarget, blinkTarget, scaleTarget := 0.0, 0.0, 1.0
	switch c.blink.phase {
	case BlinkCharging:
		chargeTarget = b.ChargeFieldOfView
		scaleTarget = b.ChargeTimeScale
	case BlinkBlinking:
		blinkTarget = b.BlinkFieldOfView
	}
	c.fovCharge = gamemath.Approach(c.fovCharge, chargeTarget, b.FieldOfViewFadeSharpness, unscaledDt)
	c.fovBlink = gamemath.Approach(c.fovBlink, blinkTarget, b.FieldOfViewFadeSharpness, unscaledDt)
	c.timeScale = gamemath.Approach(c.timeScale, scaleTarget, b.TimeScaleFadeInSharpness, unscaledDt)
}

// ModifyFieldOfView adds the blink channels to fov.
func (c *Controller) ModifyFieldOfView(fov, unmodified float64) float64 {
	return fov + c.fovCharge + c.fovBlink
}

// ModifyTimeScale applies the blink charge slowdown.
func (c *Controller) ModifyTimeScale(scale float64) float64 {
	return scale * c.timeScale
}
