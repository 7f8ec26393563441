package config

import "github.com/automoto/momentum/shared/gamemath"

// FirstPersonConfig contains first person look values
type FirstPersonConfig struct {
	MouseSensitivity float64 `yaml:"mouseSensitivity"`
	MinVerticalAngle float64 `yaml:"minVerticalAngle"` // degrees
	MaxVerticalAngle float64 `yaml:"maxVerticalAngle"`
	EyeHeightOffset  float64 `yaml:"eyeHeightOffset"` // below the head height
}

// ThirdPersonConfig contains orbit camera values
type ThirdPersonConfig struct {
	LookSharpness    float64 `yaml:"lookSharpness"` // unscaled
	LookSensitivity  float64 `yaml:"lookSensitivity"`
	MinVerticalAngle float64 `yaml:"minVerticalAngle"`
	MaxVerticalAngle float64 `yaml:"maxVerticalAngle"`
	ResetAngle       float64 `yaml:"resetAngle"` // vertical angle after ResetAngles
	Distance         float64 `yaml:"distance"`   // behind the shoulder
	ShoulderHeight   float64 `yaml:"shoulderHeight"`
}

// TopdownConfig contains the fixed overhead camera values
type TopdownConfig struct {
	Pitch             float64 `yaml:"pitch"` // degrees looking down
	Height            float64 `yaml:"height"`
	RotationSpeed     float64 `yaml:"rotationSpeed"` // degrees per second from rotate keys
	RotationSharpness float64 `yaml:"rotationSharpness"`
}

// FreeCameraConfig contains the detached fly camera values
type FreeCameraConfig struct {
	MouseSensitivity      float64        `yaml:"mouseSensitivity"`
	AccelerationSharpness float64        `yaml:"accelerationSharpness"`
	MaxXAngle             float64        `yaml:"maxXAngle"`
	StartSpeed            float64        `yaml:"startSpeed"`
	MinSpeed              float64        `yaml:"minSpeed"`
	MaxSpeed              float64        `yaml:"maxSpeed"`
	BrakeSpeedMultiplier  float64        `yaml:"brakeSpeedMultiplier"`
	SprintSpeedMultiplier float64        `yaml:"sprintSpeedMultiplier"`
	SpeedCurve            gamemath.Curve `yaml:"speedCurve"`   // over normalized speed
	ScrollFactor          float64        `yaml:"scrollFactor"` // raw wheel delta multiplier
	SkipLookFrames        int            `yaml:"skipLookFrames"`
}

// CameraSettings groups the camera variants and shared presentation values.
type CameraSettings struct {
	FieldOfView     float64           `yaml:"fieldOfView"`     // degrees
	GamepadLookRate float64           `yaml:"gamepadLookRate"` // degrees per second at full stick
	FirstPerson     FirstPersonConfig `yaml:"firstPerson"`
	ThirdPerson     ThirdPersonConfig `yaml:"thirdPerson"`
	Topdown         TopdownConfig     `yaml:"topdown"`
	Free            FreeCameraConfig  `yaml:"free"`
}

// DefaultCamera returns the built-in camera settings.
func DefaultCamera() CameraSettings {
	return CameraSettings{
		FieldOfView:     75,
		GamepadLookRate: 180,
		FirstPerson: FirstPersonConfig{
			MouseSensitivity: 1,
			MinVerticalAngle: -90,
			MaxVerticalAngle: 90,
			EyeHeightOffset:  0.25,
		},
		ThirdPerson: ThirdPersonConfig{
			LookSharpness:    15,
			LookSensitivity:  1,
			MinVerticalAngle: -60,
			MaxVerticalAngle: 60,
			ResetAngle:       20,
			Distance:         4,
			ShoulderHeight:   1.6,
		},
		Topdown: TopdownConfig{
			Pitch:             60,
			Height:            14,
			RotationSpeed:     90,
			RotationSharpness: 10,
		},
		Free: FreeCameraConfig{
			MouseSensitivity:      1,
			AccelerationSharpness: 5,
			MaxXAngle:             90,
			StartSpeed:            10,
			MinSpeed:              0.1,
			MaxSpeed:              100,
			BrakeSpeedMultiplier:  0.35,
			SprintSpeedMultiplier: 2,
			SpeedCurve:            gamemath.NewCurve(gamemath.EaseInOutSine, 1, 2, 1),
			ScrollFactor:          0.01,
			SkipLookFrames:        2,
		},
	}
}
