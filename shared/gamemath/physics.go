package gamemath

import "math"

// Lerp interpolates from a to b. t is clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// InverseLerp returns where value sits between a and b, clamped to [0, 1].
// A zero-width range returns 0.
func InverseLerp(a, b, value float64) float64 {
	if a == b {
		return 0
	}
	return Clamp01((value - a) / (b - a))
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// Clamp clamps v to [low, high].
func Clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// Approach moves current toward target with exponential smoothing.
// sharpness is the rate per second; dt is the step in seconds.
func Approach(current, target, sharpness, dt float64) float64 {
	return Lerp(current, target, 1-math.Exp(-sharpness*dt))
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// Percentage returns percent of value.
func Percentage(value, percent float64) float64 {
	return value * percent / 100
}
