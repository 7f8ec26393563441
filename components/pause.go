package components

import "github.com/yohamta/donburi"

// PauseData freezes the fixed steps while set. Cameras keep running.
type PauseData struct {
	IsPaused bool
	Frames   int // frames spent paused since the last toggle
}

var Pause = donburi.NewComponentType[PauseData]()
