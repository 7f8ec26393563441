package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Teleporter = donburi.NewTag().SetName("Teleporter")
	DeathPlane = donburi.NewTag().SetName("DeathPlane")
	ForcePad   = donburi.NewTag().SetName("ForcePad")
)

// Resolv tags for the XZ broad phase
const (
	ResolvSolid         = "solid"
	ResolvRamp          = "ramp"
	ResolvForceReceiver = "forceReceiver"
	ResolvTeleporter    = "teleporter"
	ResolvDeathPlane    = "deathplane"
	ResolvForcePad      = "forcepad"
)
