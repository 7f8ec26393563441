package simtime

// Timer is a start timestamp and a duration. The zero Timer is not running.
type Timer struct {
	clock    *Clock
	start    float64
	duration float64
	unscaled bool
}

// None is a timer that never runs.
var None = Timer{}

func (t Timer) now() float64 {
	if t.unscaled {
		return t.clock.UnscaledTime()
	}
	return t.clock.Time()
}

// Started reports whether the timer was ever started.
func (t Timer) Started() bool {
	return t.clock != nil
}

// IsRunning reports whether the timer was started and has time left.
func (t Timer) IsRunning() bool {
	return t.Started() && t.now() < t.start+t.duration
}

// Expired reports whether the timer was started and its duration has passed.
func (t Timer) Expired() bool {
	return t.Started() && t.now() >= t.start+t.duration
}

// ExpiredOrNotRunning is the negation of IsRunning.
func (t Timer) ExpiredOrNotRunning() bool {
	return !t.IsRunning()
}

// Remaining returns the time left, never negative.
func (t Timer) Remaining() float64 {
	if !t.Started() {
		return 0
	}
	r := t.start + t.duration - t.now()
	if r < 0 {
		return 0
	}
	return r
}

// Elapsed returns the time since the timer started.
func (t Timer) Elapsed() float64 {
	if !t.Started() {
		return 0
	}
	return t.now() - t.start
}

// Delta returns the elapsed fraction of the duration in [0, 1]. A timer with
// no duration is complete as soon as it starts.
func (t Timer) Delta() float64 {
	if !t.Started() {
		return 0
	}
	if t.duration <= 0 {
		return 1
	}
	d := t.Elapsed() / t.duration
	if d > 1 {
		return 1
	}
	if d < 0 {
		return 0
	}
	return d
}

// Duration returns the configured duration.
func (t Timer) Duration() float64 {
	return t.duration
}
