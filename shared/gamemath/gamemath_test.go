package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func approxVec(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func TestInverseLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, v float64
		want    float64
	}{
		{"midpoint", 0, 10, 5, 0.5},
		{"below range clamps", 0, 10, -3, 0},
		{"above range clamps", 0, 10, 30, 1},
		{"zero width", 4, 4, 4, 0},
		{"descending range", 10, 0, 2.5, 0.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InverseLerp(tt.a, tt.b, tt.v); !approx(got, tt.want, 1e-12) {
				t.Fatalf("InverseLerp(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.v, got, tt.want)
			}
		})
	}
}

func TestApproachConvergesWithoutOvershoot(t *testing.T) {
	v := 0.0
	prev := v
	for i := 0; i < 600; i++ {
		v = Approach(v, 9, 7, 1.0/60)
		if v < prev || v > 9 {
			t.Fatalf("step %d: value %v left the monotone path (prev %v)", i, v, prev)
		}
		prev = v
	}
	if !approx(v, 9, 1e-6) {
		t.Fatalf("Approach settled at %v, want 9", v)
	}
}

func TestClampMagnitude(t *testing.T) {
	v := mgl64.Vec3{3, 0, 4}
	if got := ClampMagnitude(v, 10); got != v {
		t.Fatalf("short vector changed: %v", got)
	}
	got := ClampMagnitude(v, 2.5)
	if !approx(got.Len(), 2.5, 1e-12) {
		t.Fatalf("clamped length = %v, want 2.5", got.Len())
	}
	if !approx(got.Normalize().Dot(v.Normalize()), 1, 1e-12) {
		t.Fatalf("clamping changed direction: %v", got)
	}
	if got := ClampMagnitude(v, 0); got != (mgl64.Vec3{}) {
		t.Fatalf("zero max should yield zero vector, got %v", got)
	}
}

func TestSafeNormalizeZero(t *testing.T) {
	if got := SafeNormalize(mgl64.Vec3{}); got != (mgl64.Vec3{}) {
		t.Fatalf("SafeNormalize(0) = %v, want zero", got)
	}
}

func TestDirectionTangentToSurface(t *testing.T) {
	flat := DirectionTangentToSurface(Forward, Up, Up)
	if !approxVec(flat, Forward, 1e-9) {
		t.Fatalf("flat ground tangent = %v, want %v", flat, Forward)
	}

	// Ground tilted so that it rises toward +Z.
	normal := SafeNormalize(mgl64.Vec3{0, 1, -1})
	tangent := DirectionTangentToSurface(Forward, normal, Up)
	if !approx(tangent.Dot(normal), 0, 1e-9) {
		t.Fatalf("tangent %v is not perpendicular to normal %v", tangent, normal)
	}
	if tangent.Y() <= 0 || tangent.Z() <= 0 {
		t.Fatalf("tangent %v should climb forward", tangent)
	}
}

func TestLookRotationMatchesDirection(t *testing.T) {
	dirs := []mgl64.Vec3{Forward, Right, {-1, 0, 0}, {0, 0, -1}, SafeNormalize(mgl64.Vec3{1, 1, 1})}
	for _, d := range dirs {
		got := LookRotation(d).Rotate(Forward)
		if !approxVec(got, d, 1e-9) {
			t.Fatalf("LookRotation(%v) forward = %v", d, got)
		}
	}
}

func TestEulerYawAndPitch(t *testing.T) {
	q := Euler(0, 90)
	if got := q.Rotate(Forward); !approxVec(got, Right, 1e-9) {
		t.Fatalf("yaw 90 forward = %v, want +X", got)
	}
	if got := Yaw(q); !approx(got, 90, 1e-9) {
		t.Fatalf("Yaw = %v, want 90", got)
	}
	down := Euler(30, 0).Rotate(Forward)
	if down.Y() >= 0 {
		t.Fatalf("positive pitch should look down, got %v", down)
	}
}

func TestCurveEvaluate(t *testing.T) {
	c := LinearCurve(1, 0)
	if got := c.Evaluate(0.25); !approx(got, 0.75, 1e-6) {
		t.Fatalf("linear(0.25) = %v, want 0.75", got)
	}
	if got := c.Evaluate(-1); got != 1 {
		t.Fatalf("evaluate before span = %v, want 1", got)
	}
	if got := c.Evaluate(5); got != 0 {
		t.Fatalf("evaluate after span = %v, want 0", got)
	}
	if got := ConstantCurve(0.4).Evaluate(123); got != 0.4 {
		t.Fatalf("constant curve = %v, want 0.4", got)
	}

	eased := NewCurve(EaseOutQuad, 0, 1, 2)
	if got := eased.Evaluate(1); got <= 0.5 || got >= 1 {
		t.Fatalf("outQuad midpoint = %v, want in (0.5, 1)", got)
	}
}

func TestCurveUnmarshalYAML(t *testing.T) {
	var doc struct {
		A Curve `yaml:"a"`
		B Curve `yaml:"b"`
	}
	src := "a: 0.5\nb: {ease: inQuad, from: 0, to: 2, span: 1}\n"
	if err := yaml.Unmarshal([]byte(src), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.A.Evaluate(0.3) != 0.5 {
		t.Fatalf("scalar curve = %+v", doc.A)
	}
	if doc.B.Ease != EaseInQuad || doc.B.To != 2 {
		t.Fatalf("mapping curve = %+v", doc.B)
	}

	var bad struct {
		C Curve `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte("c: {ease: wobble}\n"), &bad); err == nil {
		t.Fatal("expected error for unknown ease")
	}
}

func TestRampSurface(t *testing.T) {
	ramp := Box{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{4, 4, 2}, Slope: SlopeUpEast}
	if got := ramp.SurfaceHeight(1, 1); !approx(got, 1, 1e-12) {
		t.Fatalf("ramp height at x=1 = %v, want 1", got)
	}
	n := ramp.SurfaceNormal()
	if n.X() >= 0 || n.Y() <= 0 {
		t.Fatalf("east-rising ramp normal = %v, want -X/+Y lean", n)
	}
	if got := ramp.SlopeAngle(); !approx(got, 45, 1e-9) {
		t.Fatalf("slope angle = %v, want 45", got)
	}
}
