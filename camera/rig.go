package camera

import (
	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/simtime"
)

// Rig is the full camera setup for one character.
type Rig struct {
	FirstPerson *FirstPerson
	ThirdPerson *ThirdPerson
	Topdown     *Topdown
	Free        *Free
	Machine     *StateMachine
	Shake       *Shake
	FieldOfView *FieldOfView
}

// NewRig builds every camera around target and activates start.
func NewRig(settings config.CameraSettings, target Target, clock *simtime.Clock, start Kind) *Rig {
	r := &Rig{
		FirstPerson: NewFirstPerson(settings.FirstPerson, target),
		ThirdPerson: NewThirdPerson(settings.ThirdPerson, target),
		Topdown:     NewTopdown(settings.Topdown, target),
		Free:        NewFree(settings.Free),
		Shake:       NewShake(clock),
		FieldOfView: NewFieldOfView(settings.FieldOfView),
	}
	r.Machine = NewStateMachine(r.FirstPerson, r.ThirdPerson, r.Topdown, r.Free)
	if !r.Machine.Select(start) {
		r.Machine.Activate(r.ThirdPerson)
	}
	return r
}

// SetSettings pushes reloaded settings into every camera.
func (r *Rig) SetSettings(settings config.CameraSettings) {
	r.FirstPerson.SetSettings(settings.FirstPerson)
	r.ThirdPerson.SetSettings(settings.ThirdPerson)
	r.Topdown.SetSettings(settings.Topdown)
	r.Free.SetSettings(settings.Free)
	r.FieldOfView.SetBase(settings.FieldOfView)
}

// SetSensitivity applies the look preferences to the cameras that use them.
func (r *Rig) SetSensitivity(s Sensitivity) {
	r.FirstPerson.SetSensitivity(s)
	r.ThirdPerson.SetSensitivity(s)
}
