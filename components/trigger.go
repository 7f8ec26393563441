package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/shared/simtime"
)

// ObjectData is the broad phase object of a trigger volume.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

type TeleporterData struct {
	level.Teleporter
	Target   *donburi.Entry // destination teleporter, nil when destination only
	SkipNext bool           // set on arrival so the destination does not send back
	Inside   bool
}

var Teleporter = donburi.NewComponentType[TeleporterData]()

type DeathPlaneData struct {
	level.DeathPlane
	Inside bool
}

var DeathPlane = donburi.NewComponentType[DeathPlaneData]()

type ForcePadData struct {
	level.ForcePad
	Rearm    simtime.Timer // runs while the pad is cooling down
	Inside   bool
	Fired    int
}

var ForcePad = donburi.NewComponentType[ForcePadData]()
