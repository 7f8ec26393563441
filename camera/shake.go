package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/simtime"
)

// Shake plays one camera shake at a time. A new shake replaces the
// current one.
type Shake struct {
	clock     *simtime.Clock
	shake     config.CameraShake
	timer     simtime.Timer
	amplitude float64
	frequency float64
	phase     float64
}

func NewShake(clock *simtime.Clock) *Shake {
	return &Shake{clock: clock}
}

func (s *Shake) Play(shake config.CameraShake) {
	s.shake = shake
	s.timer = s.clock.Timer(shake.Duration)
}

// Update samples the curves over the shake's normalized lifetime and
// advances the oscillation by dt.
func (s *Shake) Update(dt float64) {
	if s.timer.ExpiredOrNotRunning() {
		s.stop()
		return
	}
	delta := s.timer.Delta()
	s.amplitude = s.shake.Amplitude.Evaluate(delta)
	s.frequency = s.shake.Frequency.Evaluate(delta)
	s.phase += s.frequency * dt * 2 * math.Pi
}

func (s *Shake) stop() {
	s.amplitude = 0
	s.frequency = 0
	s.timer = simtime.None
}

func (s *Shake) Active() bool { return s.timer.IsRunning() }

func (s *Shake) Amplitude() float64 { return s.amplitude }
func (s *Shake) Frequency() float64 { return s.frequency }

// Offset is the view displacement for the current frame.
func (s *Shake) Offset() mgl64.Vec3 {
	return mgl64.Vec3{
		math.Sin(s.phase*1.1) * s.amplitude,
		math.Cos(s.phase*1.3) * s.amplitude,
		0,
	}
}
