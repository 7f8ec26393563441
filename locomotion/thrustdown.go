package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/motor"
	"github.com/automoto/momentum/shared/gamemath"
)

func (c *Controller) canThrustDown(contact motor.Contact) bool {
	return !contact.FoundAnyGround &&
		c.motor.GroundDistance() > c.settings.ThrustDown.MinHeight &&
		c.blink.phase == BlinkNone &&
		c.slide.phase == SlideIdle
}

func (c *Controller) processThrustDown(velocity mgl64.Vec3, dt float64, contact motor.Contact) mgl64.Vec3 {
	td := c.settings.ThrustDown
	t := &c.thrust

	if t.phase == ThrustDownIdle {
		requested := (td.ActivationMode.Has(config.ThrustDownInput) && c.inputs.ThrustDown.Pressed) ||
			(td.ActivationMode.Has(config.ThrustDownLastManeuver) && c.lastManeuverRequest)
		if !requested || !c.canThrustDown(contact) {
			return velocity
		}
		c.stopManeuver()
		c.accumulatedGravity = mgl64.Vec3{}
		*t = thrustDownState{phase: ThrustingDown}
	}

	up := c.motor.CharacterUp()
	push := up.Mul(-td.DownwardForce * td.DownwardForceCurve.Evaluate(t.elapsed) * dt)
	t.downward = gamemath.ClampMagnitude(t.downward.Add(push), td.MaxDownwardForceMagnitude)
	t.elapsed += dt

	return velocity.Sub(up.Mul(velocity.Dot(up))).Add(t.downward)
}

func (c *Controller) landThrustDown(point mgl64.Vec3) {
	td := c.settings.ThrustDown
	c.thrust = thrustDownState{}
	c.events.ThrustDownLanded = true
	c.events.CameraShakes = append(c.events.CameraShakes, td.CameraShake)
	if td.LandingBulletTime != nil {
		bt := *td.LandingBulletTime
		c.events.BulletTime = &bt
	}
	c.forces.AddForceAtPosition(point, td.ForceSettings)
}

func (c *Controller) stopThrustDown() {
	c.thrust = thrustDownState{}
}
