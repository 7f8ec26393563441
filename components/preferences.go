package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/momentum/prefs"
)

type PreferencesData struct {
	Store *prefs.Store
	// Subscribed is set once the player's settings follow the store.
	Subscribed bool
}

var Preferences = donburi.NewComponentType[PreferencesData]()

// DebugData holds the overlay toggle.
type DebugData struct {
	ShowOverlay bool
}

var Debug = donburi.NewComponentType[DebugData]()
