package config

import (
	"fmt"
	"strings"

	"github.com/automoto/momentum/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// ManeuverType selects how a maneuver ends and which slow a weak one leaves behind.
type ManeuverType int

const (
	ManeuverJump ManeuverType = iota
	ManeuverDash
)

func (t ManeuverType) String() string {
	switch t {
	case ManeuverJump:
		return "jump"
	case ManeuverDash:
		return "dash"
	}
	return fmt.Sprintf("ManeuverType(%d)", int(t))
}

func (t *ManeuverType) UnmarshalYAML(node *yaml.Node) error {
	switch strings.ToLower(node.Value) {
	case "jump":
		*t = ManeuverJump
	case "dash":
		*t = ManeuverDash
	default:
		return fmt.Errorf("unknown maneuver type %q", node.Value)
	}
	return nil
}

// ThrustDownActivation is a bit set of ways thrust-down can start.
type ThrustDownActivation int

const (
	ThrustDownInput ThrustDownActivation = 1 << iota
	ThrustDownLastManeuver

	ThrustDownNone ThrustDownActivation = 0
)

func (a ThrustDownActivation) Has(flag ThrustDownActivation) bool {
	return a&flag != 0
}

// UnmarshalYAML accepts a list such as [input, lastManeuver].
func (a *ThrustDownActivation) UnmarshalYAML(node *yaml.Node) error {
	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	var act ThrustDownActivation
	for _, name := range names {
		switch name {
		case "input":
			act |= ThrustDownInput
		case "lastManeuver":
			act |= ThrustDownLastManeuver
		default:
			return fmt.Errorf("unknown thrust-down activation %q", name)
		}
	}
	*a = act
	return nil
}

// MovementConfig contains ground movement and rotation values
type MovementConfig struct {
	EnableSprint bool `yaml:"enableSprint"`

	MovementSpeedForward  float64 `yaml:"movementSpeedForward"`
	MovementSpeedSide     float64 `yaml:"movementSpeedSide"`
	MovementSpeedBackward float64 `yaml:"movementSpeedBackward"`
	MovementSpeedSprint   float64 `yaml:"movementSpeedSprint"`

	// Smoothing
	MovementSpeedIncreaseSharpness float64 `yaml:"movementSpeedIncreaseSharpness"`
	MovementSpeedDecaySharpness    float64 `yaml:"movementSpeedDecaySharpness"`
	MovementDirectionSharpness     float64 `yaml:"movementDirectionSharpness"` // grounded steering
	AirborneDirectionSharpness     float64 `yaml:"airborneDirectionSharpness"`
	MinimumMovementSpeed           float64 `yaml:"minimumMovementSpeed"` // floor after slows

	// Limits
	MaxHorizontalVelocity float64 `yaml:"maxHorizontalVelocity"`
	MaxVelocityMagnitude  float64 `yaml:"maxVelocityMagnitude"`

	// Rotation
	RotationSharpness float64 `yaml:"rotationSharpness"`
}

// GravityConfig contains gravity and external force values
type GravityConfig struct {
	GravityForce       float64 `yaml:"gravityForce"`
	MaxGravityVelocity float64 `yaml:"maxGravityVelocity"` // per-tick cap of the accumulated gravity
	AirResistance      float64 `yaml:"airResistance"`
	AtRestEpsilon      float64 `yaml:"atRestEpsilon"` // downward velocity kept while standing on stable ground

	// External force
	GroundedForceFactor float64 `yaml:"groundedForceFactor"`
	UnstableForceFactor float64 `yaml:"unstableForceFactor"`
	MaxExternalForce    float64 `yaml:"maxExternalForce"`
}

// ManeuverSettings is one entry of a maneuver table.
type ManeuverSettings struct {
	Type                  ManeuverType   `yaml:"type"`
	Force                 float64        `yaml:"force"`
	WeakForce             float64        `yaml:"weakForce"`
	PostSlideForce        float64        `yaml:"postSlideForce"`
	ForceFactorOverTime   gamemath.Curve `yaml:"forceFactorOverTime"`   // seconds since start
	GravityFactorOverTime gamemath.Curve `yaml:"gravityFactorOverTime"` // seconds since start
	Duration              float64        `yaml:"duration"`              // 0 runs until ground contact
	Cooldown              float64        `yaml:"cooldown"`
	MinDuration           float64        `yaml:"minDuration"` // ground contact is ignored while running
	StaminaCost           StaminaCost    `yaml:"staminaCost"`
}

// ManeuverOverride replaces selected fields of a maneuver while its grace time runs.
type ManeuverOverride struct {
	GraceTime             float64         `yaml:"graceTime"`
	Type                  *ManeuverType   `yaml:"type"`
	Force                 *float64        `yaml:"force"`
	WeakForce             *float64        `yaml:"weakForce"`
	PostSlideForce        *float64        `yaml:"postSlideForce"`
	ForceFactorOverTime   *gamemath.Curve `yaml:"forceFactorOverTime"`
	GravityFactorOverTime *gamemath.Curve `yaml:"gravityFactorOverTime"`
	Cooldown              *float64        `yaml:"cooldown"`
	MinDuration           *float64        `yaml:"minDuration"`
	StaminaCost           *StaminaCost    `yaml:"staminaCost"`
}

// Apply returns s with every set override field replaced.
func (o ManeuverOverride) Apply(s ManeuverSettings) ManeuverSettings {
	if o.Type != nil {
		s.Type = *o.Type
	}
	if o.Force != nil {
		s.Force = *o.Force
	}
	if o.WeakForce != nil {
		s.WeakForce = *o.WeakForce
	}
	if o.PostSlideForce != nil {
		s.PostSlideForce = *o.PostSlideForce
	}
	if o.ForceFactorOverTime != nil {
		s.ForceFactorOverTime = *o.ForceFactorOverTime
	}
	if o.GravityFactorOverTime != nil {
		s.GravityFactorOverTime = *o.GravityFactorOverTime
	}
	if o.Cooldown != nil {
		s.Cooldown = *o.Cooldown
	}
	if o.MinDuration != nil {
		s.MinDuration = *o.MinDuration
	}
	if o.StaminaCost != nil {
		s.StaminaCost = *o.StaminaCost
	}
	return s
}

// ReferenceDirections are maneuver directions in character space (+Z forward, +Y up).
type ReferenceDirections struct {
	Standstill mgl64.Vec3 `yaml:"standstill"`
	Forward    mgl64.Vec3 `yaml:"forward"`
	Sprint     mgl64.Vec3 `yaml:"sprint"`
	PostSlide  mgl64.Vec3 `yaml:"postSlide"`
}

// ManeuverConfig contains jump and dash tables
type ManeuverConfig struct {
	ManeuverCount              int     `yaml:"maneuverCount"`
	JumpPostGroundingGraceTime float64 `yaml:"jumpPostGroundingGraceTime"`
	MinForce                   float64 `yaml:"minForce"` // floor after slows

	// Post slide bonus, factor sampled between MinPostSlideMagnitude and Crouch.MaxSlideMagnitude
	MinPostSlideMagnitude    float64        `yaml:"minPostSlideMagnitude"`
	PostSlideMagnitudeFactor gamemath.Curve `yaml:"postSlideMagnitudeFactor"`

	PostWeakJumpSlow Slow `yaml:"postWeakJumpSlow"`
	PostWeakDashSlow Slow `yaml:"postWeakDashSlow"`

	Directions ReferenceDirections `yaml:"directions"`

	StandstillManeuver []ManeuverSettings `yaml:"standstillManeuver"`
	ForwardManeuver    []ManeuverSettings `yaml:"forwardManeuver"`
	SideManeuver       []ManeuverSettings `yaml:"sideManeuver"`
	BackwardsManeuver  []ManeuverSettings `yaml:"backwardsManeuver"`

	PostBlinkManeuverOverride ManeuverOverride `yaml:"postBlinkManeuverOverride"`
}

// CrouchConfig contains crouch and slide values
type CrouchConfig struct {
	CrouchMovementSpeedFactor float64 `yaml:"crouchMovementSpeedFactor"`
	StandingHeight            float64 `yaml:"standingHeight"`
	CrouchHeight              float64 `yaml:"crouchHeight"`
	HeightDownSharpness       float64 `yaml:"heightDownSharpness"`
	HeightUpSharpness         float64 `yaml:"heightUpSharpness"`

	// Slide
	SlideDownDotThreshold        float64        `yaml:"slideDownDotThreshold"` // in [-1, 0]
	SlideHeight                  float64        `yaml:"slideHeight"`
	SlideFriction                float64        `yaml:"slideFriction"`
	SlideDuration                float64        `yaml:"slideDuration"`
	SlideDurationSprint          float64        `yaml:"slideDurationSprint"`
	SlideAdjustmentStrength      float64        `yaml:"slideAdjustmentStrength"`
	MaxSlideMagnitude            float64        `yaml:"maxSlideMagnitude"`
	SlideDownVelocityIncrease    float64        `yaml:"slideDownVelocityIncrease"`
	PostSlideGraceTime           float64        `yaml:"postSlideGraceTime"`
	SlideFrictionFactor          gamemath.Curve `yaml:"slideFrictionFactor"` // over normalized slide progress
	RequireSprintForForwardSlide bool           `yaml:"requireSprintForForwardSlide"`
	PostWeakSlideSlow            Slow           `yaml:"postWeakSlideSlow"`
}

// StaminaConfig contains the stamina pool and action costs
type StaminaConfig struct {
	StaminaCostSprint           StaminaCost `yaml:"staminaCostSprint"`
	StaminaCostSlide            StaminaCost `yaml:"staminaCostSlide"`
	StaminaPerBar               int         `yaml:"staminaPerBar"`
	StaminaBars                 int         `yaml:"staminaBars"`
	StaminaRegenerationCooldown float64     `yaml:"staminaRegenerationCooldown"` // seconds after a consumption
	StaminaRegenerationSpeed    float64     `yaml:"staminaRegenerationSpeed"`    // per second
}

// BlinkConfig contains blink charge and execution values
type BlinkConfig struct {
	Force                      float64     `yaml:"force"`
	WeakForce                  float64     `yaml:"weakForce"`
	DurationPerCharge          float64     `yaml:"durationPerCharge"`
	CooldownInSecondsPerCharge float64     `yaml:"cooldownInSecondsPerCharge"`
	StaminaCost                StaminaCost `yaml:"staminaCost"`
	PostWeakBlinkSlow          Slow        `yaml:"postWeakBlinkSlow"`

	MaxCharges       int     `yaml:"maxCharges"`
	ChargePerSeconds float64 `yaml:"chargePerSeconds"` // unscaled

	ChargeTimeScale              float64 `yaml:"chargeTimeScale"`
	TimeScaleFadeInSharpness     float64 `yaml:"timeScaleFadeInSharpness"`
	PostBlinkMagnitudeLimitation float64 `yaml:"postBlinkMagnitudeLimitation"`

	// Field of view
	ChargeFieldOfView        float64 `yaml:"chargeFieldOfView"`
	BlinkFieldOfView         float64 `yaml:"blinkFieldOfView"`
	FieldOfViewFadeSharpness float64 `yaml:"fieldOfViewFadeSharpness"`
}

// ThrustDownConfig contains the airborne downward burst
type ThrustDownConfig struct {
	ActivationMode            ThrustDownActivation `yaml:"activationMode"`
	DownwardForce             float64              `yaml:"downwardForce"`
	DownwardForceCurve        gamemath.Curve       `yaml:"downwardForceCurve"` // seconds since start
	MaxDownwardForceMagnitude float64              `yaml:"maxDownwardForceMagnitude"`
	MinHeight                 float64              `yaml:"minHeight"`
	CameraShake               CameraShake          `yaml:"cameraShake"`
	ForceSettings             ForceSettings        `yaml:"forceSettings"`
	LandingBulletTime         *BulletTime          `yaml:"landingBulletTime"`
}

// LocomotionInputConfig contains input interpretation values
type LocomotionInputConfig struct {
	TransitionAngle float64 `yaml:"transitionAngle"` // degrees blended on each side of a direction edge
}

// SaveDataConfig names the persisted locomotion preferences
type SaveDataConfig struct {
	ToggleCrouchDesktopKey string `yaml:"toggleCrouchDesktopKey"`
	ToggleCrouchGamepadKey string `yaml:"toggleCrouchGamepadKey"`
}

// Locomotion groups every locomotion subsystem.
type Locomotion struct {
	Movement   MovementConfig        `yaml:"movement"`
	Gravity    GravityConfig         `yaml:"gravity"`
	Maneuver   ManeuverConfig        `yaml:"maneuver"`
	Crouch     CrouchConfig          `yaml:"crouch"`
	Stamina    StaminaConfig         `yaml:"stamina"`
	Blink      BlinkConfig           `yaml:"blink"`
	ThrustDown ThrustDownConfig      `yaml:"thrustDown"`
	Input      LocomotionInputConfig `yaml:"input"`
	SaveData   SaveDataConfig        `yaml:"saveData"`
}

func jump(force, weakForce float64) ManeuverSettings {
	return ManeuverSettings{
		Type:                  ManeuverJump,
		Force:                 force,
		WeakForce:             weakForce,
		PostSlideForce:        60,
		ForceFactorOverTime:   gamemath.NewCurve(gamemath.EaseOutQuad, 1, 0, 0.25),
		GravityFactorOverTime: gamemath.NewCurve(gamemath.EaseInQuad, 0, 1, 0.35),
		Cooldown:              0.25,
		StaminaCost:           BarCost(),
	}
}

func dash() ManeuverSettings {
	return ManeuverSettings{
		Type:                  ManeuverDash,
		Force:                 250,
		WeakForce:             120,
		ForceFactorOverTime:   gamemath.NewCurve(gamemath.EaseOutCubic, 1, 0, 0.2),
		GravityFactorOverTime: gamemath.ConstantCurve(0),
		Duration:              0.2,
		Cooldown:              0.4,
		MinDuration:           0.15,
		StaminaCost:           BarCost(),
	}
}

// DefaultLocomotion returns the built-in locomotion settings.
func DefaultLocomotion() Locomotion {
	blinkCooldown := 0.1
	return Locomotion{
		Movement: MovementConfig{
			EnableSprint:                   true,
			MovementSpeedForward:           4.6,
			MovementSpeedSide:              4.3,
			MovementSpeedBackward:          3.2,
			MovementSpeedSprint:            9,
			MovementSpeedIncreaseSharpness: 7,
			MovementSpeedDecaySharpness:    25,
			MovementDirectionSharpness:     25,
			AirborneDirectionSharpness:     5,
			MinimumMovementSpeed:           0.5,
			MaxHorizontalVelocity:          20,
			MaxVelocityMagnitude:           60,
			RotationSharpness:              25,
		},
		Gravity: GravityConfig{
			GravityForce:        9.81,
			MaxGravityVelocity:  1,
			AirResistance:       1,
			AtRestEpsilon:       0.01,
			GroundedForceFactor: 0.25,
			UnstableForceFactor: 0.6,
			MaxExternalForce:    50,
		},
		Maneuver: ManeuverConfig{
			ManeuverCount:              2,
			JumpPostGroundingGraceTime: 0.1,
			MinForce:                   20,
			MinPostSlideMagnitude:      6,
			PostSlideMagnitudeFactor:   gamemath.LinearCurve(0, 1),
			PostWeakJumpSlow:           Slow{Strength: 40, Duration: 1.5, Curve: gamemath.LinearCurve(1, 0)},
			PostWeakDashSlow:           Slow{Strength: 50, Duration: 2, Curve: gamemath.LinearCurve(1, 0)},
			Directions: ReferenceDirections{
				Standstill: mgl64.Vec3{0, 1, 0},
				Forward:    mgl64.Vec3{0, 1, 0.35},
				Sprint:     mgl64.Vec3{0, 0.8, 0.6},
				PostSlide:  mgl64.Vec3{0, 0.7, 0.7},
			},
			StandstillManeuver: []ManeuverSettings{jump(150, 80), jump(130, 70)},
			ForwardManeuver:    []ManeuverSettings{jump(150, 80), jump(130, 70)},
			SideManeuver:       []ManeuverSettings{dash(), dash()},
			BackwardsManeuver:  []ManeuverSettings{dash(), dash()},
			PostBlinkManeuverOverride: ManeuverOverride{
				GraceTime: 0.3,
				Cooldown:  &blinkCooldown,
			},
		},
		Crouch: CrouchConfig{
			CrouchMovementSpeedFactor:    0.4,
			StandingHeight:               2,
			CrouchHeight:                 1.4,
			HeightDownSharpness:          15,
			HeightUpSharpness:            4,
			SlideDownDotThreshold:        -0.2,
			SlideHeight:                  1,
			SlideFriction:                1,
			SlideDuration:                1,
			SlideDurationSprint:          1,
			SlideAdjustmentStrength:      10,
			MaxSlideMagnitude:            17,
			SlideDownVelocityIncrease:    0.1,
			PostSlideGraceTime:           0.7,
			SlideFrictionFactor:          gamemath.NewCurve(gamemath.EaseInQuad, 0.2, 1, 1),
			RequireSprintForForwardSlide: false,
			PostWeakSlideSlow:            Slow{Strength: 30, Duration: 1, Curve: gamemath.LinearCurve(1, 0)},
		},
		Stamina: StaminaConfig{
			StaminaCostSprint:           PerSecondsCost(10),
			StaminaCostSlide:            FlatCost(10),
			StaminaPerBar:               25,
			StaminaBars:                 6,
			StaminaRegenerationCooldown: 3,
			StaminaRegenerationSpeed:    50,
		},
		Blink: BlinkConfig{
			Force:                        100,
			WeakForce:                    60,
			DurationPerCharge:            0.05,
			CooldownInSecondsPerCharge:   0.3,
			StaminaCost:                  BarCost(),
			PostWeakBlinkSlow:            Slow{Strength: 40, Duration: 1.5, Curve: gamemath.LinearCurve(1, 0)},
			MaxCharges:                   3,
			ChargePerSeconds:             1,
			ChargeTimeScale:              0.1,
			TimeScaleFadeInSharpness:     25,
			PostBlinkMagnitudeLimitation: 20,
			ChargeFieldOfView:            10,
			BlinkFieldOfView:             20,
			FieldOfViewFadeSharpness:     10,
		},
		ThrustDown: ThrustDownConfig{
			ActivationMode:            ThrustDownInput | ThrustDownLastManeuver,
			DownwardForce:             120,
			DownwardForceCurve:        gamemath.NewCurve(gamemath.EaseInQuad, 0.2, 1, 0.3),
			MaxDownwardForceMagnitude: 32,
			MinHeight:                 1.5,
			CameraShake: CameraShake{
				Frequency: gamemath.ConstantCurve(25),
				Amplitude: gamemath.LinearCurve(0.6, 0),
				Duration:  0.35,
			},
			ForceSettings: ForceSettings{
				Type:           ForceShockwave,
				Force:          60,
				Radius:         6,
				Flags:          ForceGroundSensitive | ForceUnground,
				Curve:          gamemath.LinearCurve(1, 0),
				ShockwaveSpeed: 30,
			},
		},
		Input: LocomotionInputConfig{
			TransitionAngle: 10,
		},
		SaveData: SaveDataConfig{
			ToggleCrouchDesktopKey: "toggleCrouchDesktop",
			ToggleCrouchGamepadKey: "toggleCrouchGamepad",
		},
	}
}

// Tables returns the standstill, forward, side and backwards tables in that order.
func (m ManeuverConfig) Tables() [][]ManeuverSettings {
	return [][]ManeuverSettings{m.StandstillManeuver, m.ForwardManeuver, m.SideManeuver, m.BackwardsManeuver}
}
