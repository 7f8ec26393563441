package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/momentum/camera"
	"github.com/automoto/momentum/components"
	cfg "github.com/automoto/momentum/config"
	"github.com/automoto/momentum/prefs"
	"github.com/automoto/momentum/tags"
)

// UpdatePreferences binds the player and camera to the preference store the
// first time both exist, then handles the crouch mode toggle. Stored values
// reach the player through the subscriptions, so a change made anywhere
// else applies on the spot.
func UpdatePreferences(e *ecs.ECS) {
	prefsEntry, ok := components.Preferences.First(e.World)
	if !ok {
		return
	}
	p := components.Preferences.Get(prefsEntry)
	if p.Store == nil {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	keys := player.Locomotion.Settings().SaveData

	if !p.Subscribed {
		subscribePreferences(e, p.Store, player, keys)
		p.Subscribed = true
	}

	input := getOrCreateInput(e)
	if GetAction(input, cfg.ActionToggleCrouchMode).JustPressed {
		key := keys.ToggleCrouchDesktopKey
		if input.Gamepad() {
			key = keys.ToggleCrouchGamepadKey
		}
		// A failed save is logged by the store and still applies for this session
		_ = prefs.Set(p.Store, key, !prefs.Get(p.Store, key, false))
	}
}

func subscribePreferences(e *ecs.ECS, store *prefs.Store, player *components.PlayerData, keys cfg.SaveDataConfig) {
	var desktop, gamepad bool
	prefs.Subscribe(store, keys.ToggleCrouchDesktopKey, false, func(v bool) {
		desktop = v
		player.Locomotion.SetCrouchToggle(desktop, gamepad)
	})
	prefs.Subscribe(store, keys.ToggleCrouchGamepadKey, false, func(v bool) {
		gamepad = v
		player.Locomotion.SetCrouchToggle(desktop, gamepad)
	})

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	rig := components.Camera.Get(cameraEntry).Rig
	sensitivity := camera.Sensitivity{Desktop: 1, Gamepad: 1}
	prefs.Subscribe(store, prefs.LookSensitivityDesktop, 1.0, func(v float64) {
		sensitivity.Desktop = v
		rig.SetSensitivity(sensitivity)
	})
	prefs.Subscribe(store, prefs.LookSensitivityGamepad, 1.0, func(v float64) {
		sensitivity.Gamepad = v
		rig.SetSensitivity(sensitivity)
	})
}
