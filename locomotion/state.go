package locomotion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/simtime"
)

type ManeuverPhase int

const (
	ManeuverIdle ManeuverPhase = iota
	ManeuverActive
)

type BlinkPhase int

const (
	BlinkNone BlinkPhase = iota
	BlinkCharging
	BlinkBlinking
)

type SlidePhase int

const (
	SlideIdle SlidePhase = iota
	Sliding
)

type ThrustDownPhase int

const (
	ThrustDownIdle ThrustDownPhase = iota
	ThrustingDown
)

var phaseNames = map[any]string{
	ManeuverIdle:   "idle",
	ManeuverActive: "active",
	BlinkNone:      "none",
	BlinkCharging:  "charging",
	BlinkBlinking:  "blinking",
	SlideIdle:      "idle",
	Sliding:        "sliding",
	ThrustDownIdle: "idle",
	ThrustingDown:  "thrusting",
}

func phaseName(p any, n int) string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("%T(%d)", p, n)
}

func (p ManeuverPhase) String() string   { return phaseName(p, int(p)) }
func (p BlinkPhase) String() string      { return phaseName(p, int(p)) }
func (p SlidePhase) String() string      { return phaseName(p, int(p)) }
func (p ThrustDownPhase) String() string { return phaseName(p, int(p)) }

type maneuverState struct {
	phase            ManeuverPhase
	settings         config.ManeuverSettings
	performed        int
	cooldown         simtime.Timer
	minDuration      simtime.Timer
	weak             bool
	elapsed          float64
	direction        mgl64.Vec3
	force            float64
	startedSprinting bool
}

type blinkState struct {
	phase     BlinkPhase
	meter     float64
	charges   int
	sampledAt float64 // unscaled time of the last meter update
	execution simtime.Timer
	cooldown  simtime.Timer
	direction mgl64.Vec3
	force     float64
	weak      bool
}

type slideState struct {
	phase       SlidePhase
	remaining   float64
	duration    float64
	velocity    mgl64.Vec3
	slidingDown bool
	magnitude   float64
	weak        bool
}

type thrustDownState struct {
	phase    ThrustDownPhase
	elapsed  float64
	downward mgl64.Vec3
}

// State is a read-only view of the controller for overlays and tests.
type State struct {
	Direction          Direction
	MovementSpeed      float64
	Sprinting          bool
	Crouching          bool
	Height             float64
	AccumulatedGravity mgl64.Vec3

	Maneuver          ManeuverPhase
	ManeuverType      config.ManeuverType
	ManeuversDone     int
	ManeuverWeak      bool
	ManeuverForce     float64
	ManeuverCooldown  float64 // remaining seconds
	ManeuverDirection mgl64.Vec3

	Blink        BlinkPhase
	BlinkCharges int
	BlinkMeter   float64
	BlinkWeak    bool

	Slide          SlidePhase
	SlideMagnitude float64
	SlideRemaining float64
	SlidingDown    bool
	SlideWeak      bool

	ThrustDown ThrustDownPhase
}
