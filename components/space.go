package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/momentum/shared/broadphase"
)

// Space indexes the trigger volumes by their XZ footprint.
var Space = donburi.NewComponentType[broadphase.Grid]()
