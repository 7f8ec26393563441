package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/locomotion"
	"github.com/automoto/momentum/motor"
	"github.com/automoto/momentum/slow"
	"github.com/automoto/momentum/stamina"
)

// PlayerData is the simulated character and its collaborators.
type PlayerData struct {
	Motor      *motor.Motor
	Locomotion *locomotion.Controller
	Stamina    *stamina.Controller
	Slows      *slow.Controller
	Spawn      level.Spawn // respawn target

	Respawns int
}

var Player = donburi.NewComponentType[PlayerData]()
