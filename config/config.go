package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/shared/gamemath"
)

// Render layers
const (
	LayerDefault ecs.LayerID = iota
	LayerDebug
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// SimulationConfig contains the fixed-step loop values
type SimulationConfig struct {
	FixedStep        float64 `yaml:"fixedStep"`        // seconds per physics step
	MaxStepsPerFrame int     `yaml:"maxStepsPerFrame"` // accumulator is dropped beyond this
	TickRate         int     `yaml:"tickRate"`         // headless frames per second
	Arena            string  `yaml:"arena"`            // TMX path, empty for the embedded sandbox
	StartCamera      string  `yaml:"startCamera"`      // firstPerson, thirdPerson, topdown or free

	BulletTime BulletTime `yaml:"bulletTime"` // pulse played by the bullet time action
}

// MotorConfig contains the kinematic capsule values
type MotorConfig struct {
	Radius              float64 `yaml:"radius"`
	Height              float64 `yaml:"height"`
	StepOffset          float64 `yaml:"stepOffset"`          // highest ledge walked onto without a jump
	MaxStableSlopeAngle float64 `yaml:"maxStableSlopeAngle"` // degrees
	MaxSnapDistance     float64 `yaml:"maxSnapDistance"`     // ground is followed down this far while stable
	UngroundDuration    float64 `yaml:"ungroundDuration"`    // used when ForceUnground gets no duration
}

// DebugConfig contains debug command-line options
type DebugConfig struct {
	ShowOverlay bool // Draw the locomotion readout
	LogFrames   bool // Log one line per headless frame
}

// Settings is everything a simulation needs, loaded once and then treated as
// immutable. Hot reload builds a new value and swaps it in.
type Settings struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Motor      MotorConfig      `yaml:"motor"`
	Locomotion Locomotion       `yaml:"locomotion"`
	Camera     CameraSettings   `yaml:"camera"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Simulation: SimulationConfig{
			FixedStep:        1.0 / 60.0,
			MaxStepsPerFrame: 5,
			TickRate:         60,
			StartCamera:      "thirdPerson",
			BulletTime: BulletTime{
				TimeScaleOverTime:   gamemath.NewCurve(gamemath.EaseInQuad, 0.2, 1, 1),
				Duration:            1.5,
				UseUnscaledDuration: true,
			},
		},
		Motor: MotorConfig{
			Radius:              0.4,
			Height:              2,
			StepOffset:          0.3,
			MaxStableSlopeAngle: 60,
			MaxSnapDistance:     0.5,
			UngroundDuration:    0.1,
		},
		Locomotion: DefaultLocomotion(),
		Camera:     DefaultCamera(),
	}
}

// Global configuration instances
var C *Config
var Debug DebugConfig

// Overlay colors
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Ground       = color.RGBA{R: 70, G: 80, B: 90, A: 255}
	Ramp         = color.RGBA{R: 110, G: 90, B: 70, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}
}
