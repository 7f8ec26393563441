package config

import (
	"fmt"
	"strings"

	"github.com/automoto/momentum/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

// StaminaCostMode selects how a StaminaCost turns into a flat amount.
type StaminaCostMode int

const (
	CostFlat          StaminaCostMode = iota // Value as is
	CostPerSeconds                           // Value times the step duration
	CostRemainingBar                         // whatever is left in the current bar
	CostPercentage                           // Value percent of the maximum
	CostBar                                  // one full bar
	CostBarsPerSecond                        // Value bars per second times the step duration
)

var costModeNames = map[StaminaCostMode]string{
	CostFlat:          "flat",
	CostPerSeconds:    "perSeconds",
	CostRemainingBar:  "remainingBar",
	CostPercentage:    "percentage",
	CostBar:           "bar",
	CostBarsPerSecond: "barsPerSecond",
}

func (m StaminaCostMode) String() string {
	if name, ok := costModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("StaminaCostMode(%d)", int(m))
}

func (m *StaminaCostMode) UnmarshalYAML(node *yaml.Node) error {
	for mode, name := range costModeNames {
		if strings.EqualFold(name, node.Value) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("unknown stamina cost mode %q", node.Value)
}

// StaminaCost is the price of an action.
type StaminaCost struct {
	Mode  StaminaCostMode `yaml:"mode"`
	Value float64         `yaml:"value"`
}

func FlatCost(v float64) StaminaCost       { return StaminaCost{Mode: CostFlat, Value: v} }
func PerSecondsCost(v float64) StaminaCost { return StaminaCost{Mode: CostPerSeconds, Value: v} }
func PercentageCost(v float64) StaminaCost { return StaminaCost{Mode: CostPercentage, Value: v} }
func RemainingBarCost() StaminaCost        { return StaminaCost{Mode: CostRemainingBar} }
func BarCost() StaminaCost                 { return StaminaCost{Mode: CostBar} }
func BarsPerSecondCost(v float64) StaminaCost {
	return StaminaCost{Mode: CostBarsPerSecond, Value: v}
}

// Slow is a timed percentage speed debuff.
type Slow struct {
	Strength float64        `yaml:"strength"` // percent, 0-100
	Duration float64        `yaml:"duration"` // seconds
	Curve    gamemath.Curve `yaml:"curve"`    // intensity over normalized lifetime
}

// ForceType selects how the force system applies a force.
type ForceType int

const (
	ForceImmediate ForceType = iota
	ForceShockwave
)

func (t ForceType) String() string {
	switch t {
	case ForceImmediate:
		return "immediate"
	case ForceShockwave:
		return "shockwave"
	}
	return fmt.Sprintf("ForceType(%d)", int(t))
}

// ParseForceType accepts "immediate" or "shockwave" in any case.
func ParseForceType(name string) (ForceType, error) {
	switch strings.ToLower(name) {
	case "immediate":
		return ForceImmediate, nil
	case "shockwave":
		return ForceShockwave, nil
	}
	return 0, fmt.Errorf("unknown force type %q", name)
}

func (t *ForceType) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseForceType(node.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ForceFlags change how a receiver treats an incoming force.
type ForceFlags int

const (
	ForceIgnoreWhenGrounded ForceFlags = 1 << iota
	ForceGroundSensitive
	ForceUnground
	ForceKillGravity

	ForceNone ForceFlags = 0
)

var forceFlagNames = map[string]ForceFlags{
	"ignoreWhenGrounded": ForceIgnoreWhenGrounded,
	"groundSensitive":    ForceGroundSensitive,
	"forceUnground":      ForceUnground,
	"killGravity":        ForceKillGravity,
}

func (f ForceFlags) Has(flag ForceFlags) bool {
	return f&flag != 0
}

// UnmarshalYAML accepts a list of flag names or a raw bitmask.
func (f *ForceFlags) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var raw int
		if err := node.Decode(&raw); err != nil {
			return err
		}
		*f = ForceFlags(raw)
		return nil
	}
	var names []string
	if err := node.Decode(&names); err != nil {
		return err
	}
	flags, err := ParseForceFlags(names...)
	if err != nil {
		return err
	}
	*f = flags
	return nil
}

// ParseForceFlags combines flag names such as "groundSensitive".
func ParseForceFlags(names ...string) (ForceFlags, error) {
	var flags ForceFlags
	for _, name := range names {
		flag, ok := forceFlagNames[strings.TrimSpace(name)]
		if !ok {
			return 0, fmt.Errorf("unknown force flag %q", name)
		}
		flags |= flag
	}
	return flags, nil
}

// ForceSettings describes a point force.
type ForceSettings struct {
	Type            ForceType      `yaml:"type"`
	Force           float64        `yaml:"force"`
	Radius          float64        `yaml:"radius"`
	Flags           ForceFlags     `yaml:"flags"`
	Curve           gamemath.Curve `yaml:"curve"`           // falloff over normalized distance
	ExplosionOffset mgl64.Vec3     `yaml:"explosionOffset"` // added to the origin
	ShockwaveSpeed  float64        `yaml:"shockwaveSpeed"`  // meters per second, shockwave only
}

// CameraShake is played by the active camera.
type CameraShake struct {
	Frequency gamemath.Curve `yaml:"frequency"` // over normalized duration
	Amplitude gamemath.Curve `yaml:"amplitude"` // over normalized duration
	Duration  float64        `yaml:"duration"`
}

// BulletTime is a global time scale pulse.
type BulletTime struct {
	TimeScaleOverTime   gamemath.Curve `yaml:"timeScaleOverTime"` // over normalized duration
	Duration            float64        `yaml:"duration"`
	UseUnscaledDuration bool           `yaml:"useUnscaledDuration"`
}
