// Package simtime keeps simulation time: a scaled clock that advances in
// fixed steps, an unscaled clock that follows wall time, and timers that are
// plain start-plus-duration values polled against either.
package simtime

// TimeScaleModifier adjusts the global time scale each frame. Modifiers are
// applied in registration order to the base scale.
type TimeScaleModifier interface {
	ModifyTimeScale(scale float64) float64
}

// Clock tracks scaled and unscaled simulation time.
type Clock struct {
	time          float64
	unscaledTime  float64
	deltaTime     float64
	unscaledDelta float64
	stepDelta     float64
	baseScale     float64
	scale         float64
	modifiers     []TimeScaleModifier
}

func NewClock() *Clock {
	return &Clock{baseScale: 1, scale: 1}
}

// BeginFrame advances unscaled time by unscaledDt, recomputes the time scale
// from the registered modifiers and returns the scaled frame delta.
func (c *Clock) BeginFrame(unscaledDt float64) float64 {
	if unscaledDt < 0 {
		unscaledDt = 0
	}
	c.unscaledDelta = unscaledDt
	c.unscaledTime += unscaledDt

	scale := c.baseScale
	for _, m := range c.modifiers {
		scale = m.ModifyTimeScale(scale)
	}
	if scale < 0 {
		scale = 0
	}
	c.scale = scale
	c.deltaTime = unscaledDt * scale
	return c.deltaTime
}

// Step advances scaled time by dt. The fixed update loop calls it once per
// physics step.
func (c *Clock) Step(dt float64) {
	c.time += dt
	c.stepDelta = dt
}

// Time is the scaled time in seconds.
func (c *Clock) Time() float64 { return c.time }

// UnscaledTime is the wall-clock time in seconds.
func (c *Clock) UnscaledTime() float64 { return c.unscaledTime }

// DeltaTime is the scaled duration of the current frame.
func (c *Clock) DeltaTime() float64 { return c.deltaTime }

// StepDeltaTime is the duration of the last physics step.
func (c *Clock) StepDeltaTime() float64 { return c.stepDelta }

// UnscaledDeltaTime is the unscaled duration of the current frame.
func (c *Clock) UnscaledDeltaTime() float64 { return c.unscaledDelta }

// TimeScale is the scale computed by the last BeginFrame.
func (c *Clock) TimeScale() float64 { return c.scale }

// SetBaseScale sets the scale the modifiers start from.
func (c *Clock) SetBaseScale(scale float64) {
	c.baseScale = scale
}

func (c *Clock) AddModifier(m TimeScaleModifier) {
	c.modifiers = append(c.modifiers, m)
}

func (c *Clock) RemoveModifier(m TimeScaleModifier) {
	for i, existing := range c.modifiers {
		if existing == m {
			c.modifiers = append(c.modifiers[:i], c.modifiers[i+1:]...)
			return
		}
	}
}

// Timer starts a timer of the given duration on scaled time.
func (c *Clock) Timer(duration float64) Timer {
	return Timer{clock: c, start: c.time, duration: duration}
}

// UnscaledTimer starts a timer of the given duration on unscaled time.
func (c *Clock) UnscaledTimer(duration float64) Timer {
	return Timer{clock: c, start: c.unscaledTime, duration: duration, unscaled: true}
}
