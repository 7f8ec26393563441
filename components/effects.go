package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/shared/simtime"
)

// EffectsData holds the presentation state pulled from locomotion each frame.
type EffectsData struct {
	// BulletTime is the pulse registered on the clock, nil when none played yet.
	BulletTime *simtime.BulletTime
	Last       locomotion.Effects

	// Event counters since the world started, for overlays and tests.
	Maneuvers          int
	Blinks             int
	Slides             int
	ThrustDownLandings int
	Shakes             int
	BulletTimes        int
}

var Effects = donburi.NewComponentType[EffectsData]()
