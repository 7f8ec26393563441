package simtime

import (
	"github.com/automoto/momentum/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BulletTime is a time scale pulse: while active it multiplies the global
// scale by a curve sampled over its normalized progress.
type BulletTime struct {
	curve    gamemath.Curve
	progress *gween.Tween
	unscaled bool
	value    float64
	active   bool
}

// NewBulletTime prepares a pulse. It does nothing until Start is called.
func NewBulletTime(curve gamemath.Curve, duration float64, unscaled bool) *BulletTime {
	if duration <= 0 {
		duration = 0
	}
	return &BulletTime{
		curve:    curve,
		progress: gween.New(0, 1, float32(duration), ease.Linear),
		unscaled: unscaled,
		value:    1,
	}
}

// Start restarts the pulse from the beginning.
func (b *BulletTime) Start() {
	b.progress.Reset()
	b.active = true
	b.value = b.curve.Evaluate(0)
}

// Active reports whether the pulse is still running.
func (b *BulletTime) Active() bool {
	return b.active
}

// Update advances the pulse by the clock's last frame delta, scaled or
// unscaled per the pulse settings.
func (b *BulletTime) Update(c *Clock) {
	if !b.active {
		return
	}
	dt := c.DeltaTime()
	if b.unscaled {
		dt = c.UnscaledDeltaTime()
	}
	p, done := b.progress.Update(float32(dt))
	b.value = b.curve.Evaluate(float64(p))
	if done {
		b.active = false
		b.value = 1
	}
}

func (b *BulletTime) ModifyTimeScale(scale float64) float64 {
	if !b.active {
		return scale
	}
	return scale * b.value
}
