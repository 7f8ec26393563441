package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/motor"
)

// Motor is the kinematic body the controller steers.
type Motor interface {
	Contact() motor.Contact
	CharacterUp() mgl64.Vec3
	CharacterForward() mgl64.Vec3
	CharacterRight() mgl64.Vec3
	TransientPosition() mgl64.Vec3
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	GroundDistance() float64
	ForceUnground(duration float64)
	SetPositionAndRotation(position mgl64.Vec3, rotation mgl64.Quat, bypassInterpolation bool)
}

// Stamina is the resource pool abilities pay from.
type Stamina interface {
	HasEnoughStaminaFor(cost config.StaminaCost) bool
	ConsumeStamina(cost config.StaminaCost)
	Stamina() float64
	StaminaPerBar() float64
}

// Slows reduces speeds and forces and collects the penalties of weak actions.
type Slows interface {
	SlowSpeedValue(speed float64) float64
	AddSlow(slow config.Slow)
}

// Forces receives the thrust-down landing shockwave.
type Forces interface {
	AddForceAtPosition(position mgl64.Vec3, settings config.ForceSettings)
}
