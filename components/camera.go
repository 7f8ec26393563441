package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/momentum/camera"
	"github.com/automoto/momentum/shared/gamemath"
)

type CameraData struct {
	Rig         *camera.Rig
	View        gamemath.Transform // active camera plus shake
	FieldOfView float64            // degrees, after every modifier
}

var Camera = donburi.NewComponentType[CameraData]()
