package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/force"
	"github.com/automoto/momentum/shared/simtime"
)

// SimulationData drives the fixed-step physics loop.
type SimulationData struct {
	Clock    *simtime.Clock
	Forces   *force.System
	Settings cfg.Settings

	Accumulator float64 // scaled seconds not yet stepped
	Alpha       float64 // Accumulator / FixedStep after the last frame
	Frame       int     // frames run so far
	Steps       int     // physics steps of the last frame
	TotalSteps  int
	Dropped     float64 // scaled seconds discarded past MaxStepsPerFrame
}

var Simulation = donburi.NewComponentType[SimulationData]()
