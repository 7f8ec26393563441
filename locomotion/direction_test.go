package locomotion

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func heading(deg float64) mgl64.Vec3 {
	r := mgl64.DegToRad(deg)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}

func TestBucketDirection(t *testing.T) {
	tests := []struct {
		name     string
		movement mgl64.Vec3
		want     Direction
	}{
		{"none", mgl64.Vec3{}, DirectionNone},
		{"vertical only", mgl64.Vec3{0, 1, 0}, DirectionNone},
		{"forward", heading(0), DirectionForward},
		{"forward right", heading(44), DirectionForward},
		{"forward left", heading(-44), DirectionForward},
		{"right", heading(90), DirectionRight},
		{"back right", heading(134), DirectionRight},
		{"backward", heading(180), DirectionBackward},
		{"back left", heading(-136), DirectionBackward},
		{"left", heading(-90), DirectionLeft},
		{"front left", heading(-46), DirectionLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BucketDirection(tt.movement); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendDirectionSpeed(t *testing.T) {
	speeds := map[Direction]float64{
		DirectionNone:     0,
		DirectionForward:  4,
		DirectionRight:    2,
		DirectionBackward: 1,
		DirectionLeft:     3,
	}
	speedOf := func(d Direction) float64 { return speeds[d] }

	tests := []struct {
		name  string
		angle float64
		want  float64
	}{
		{"inside forward", 20, 4},
		{"on the edge", 45, 3},
		{"quarter into the transition", 40, 3.5},
		{"left edge", -45, 3.5},
		{"back edge", 135, 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := blendDirection(heading(tt.angle), 10).speed(speedOf)
			if !approx(got, tt.want, 1e-6) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlendDirectionWithoutTransition(t *testing.T) {
	b := blendDirection(heading(44), 0)
	if b.from != DirectionForward || b.to != DirectionForward {
		t.Fatalf("got %+v, want forward only", b)
	}
}
