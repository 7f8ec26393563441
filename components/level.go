package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/momentum/level"
	"github.com/automoto/momentum/motor"
)

type LevelData struct {
	Arena    *level.Arena
	Geometry *motor.Geometry
}

var Level = donburi.NewComponentType[LevelData]()
