package locomotion

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/shared/gamemath"
)

// Direction is the movement input bucketed by angle.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionForward
	DirectionRight
	DirectionBackward
	DirectionLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "none"
	case DirectionForward:
		return "forward"
	case DirectionRight:
		return "right"
	case DirectionBackward:
		return "backward"
	case DirectionLeft:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// directionBlend is where the input sits between two buckets. Speeds are
// interpolated by t from the speed of from to the speed of to.
type directionBlend struct {
	from, to Direction
	t        float64
}

type bucketEdge struct {
	angle        float64
	below, above Direction
}

var bucketEdges = [...]bucketEdge{
	{-135, DirectionBackward, DirectionLeft},
	{-45, DirectionLeft, DirectionForward},
	{45, DirectionForward, DirectionRight},
	{135, DirectionRight, DirectionBackward},
}

// InputAngle is the heading of a movement vector in degrees, 0 forward and
// 90 right.
func InputAngle(movement mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(movement.X(), movement.Z()))
}

// BucketDirection maps a movement vector to its direction. Forward owns
// [-45, 45], right (45, 135], left [-135, -45) and backward the rest.
func BucketDirection(movement mgl64.Vec3) Direction {
	if gamemath.Horizontal(movement).Len() <= 0 {
		return DirectionNone
	}
	a := InputAngle(movement)
	switch {
	case a >= -45 && a <= 45:
		return DirectionForward
	case a > 45 && a <= 135:
		return DirectionRight
	case a < -45 && a >= -135:
		return DirectionLeft
	default:
		return DirectionBackward
	}
}

// blendDirection finds the buckets whose speeds mix at the input angle. Inside
// transition degrees of an edge both neighbours contribute.
func blendDirection(movement mgl64.Vec3, transition float64) directionBlend {
	d := BucketDirection(movement)
	if d == DirectionNone || transition <= 0 {
		return directionBlend{from: d, to: d}
	}
	a := InputAngle(movement)
	for _, e := range bucketEdges {
		if math.Abs(a-e.angle) < transition {
			t := gamemath.InverseLerp(e.angle-transition, e.angle+transition, a)
			return directionBlend{from: e.below, to: e.above, t: t}
		}
	}
	return directionBlend{from: d, to: d}
}

func (b directionBlend) speed(speedOf func(Direction) float64) float64 {
	if b.from == b.to {
		return speedOf(b.from)
	}
	return gamemath.Lerp(speedOf(b.from), speedOf(b.to), b.t)
}
