package gamemath

import (
	"fmt"
	"strconv"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Ease names an easing function from the gween ease package.
type Ease string

const (
	EaseConstant   Ease = "constant"
	EaseLinear     Ease = "linear"
	EaseInQuad     Ease = "inQuad"
	EaseOutQuad    Ease = "outQuad"
	EaseInOutQuad  Ease = "inOutQuad"
	EaseInCubic    Ease = "inCubic"
	EaseOutCubic   Ease = "outCubic"
	EaseInOutCubic Ease = "inOutCubic"
	EaseInSine     Ease = "inSine"
	EaseOutSine    Ease = "outSine"
	EaseInOutSine  Ease = "inOutSine"
	EaseInExpo     Ease = "inExpo"
	EaseOutExpo    Ease = "outExpo"
	EaseInCirc     Ease = "inCirc"
	EaseOutCirc    Ease = "outCirc"
	EaseInBack     Ease = "inBack"
	EaseOutBack    Ease = "outBack"
	EaseOutBounce  Ease = "outBounce"
	EaseOutElastic Ease = "outElastic"
)

var easings = map[Ease]ease.TweenFunc{
	EaseLinear:     ease.Linear,
	EaseInQuad:     ease.InQuad,
	EaseOutQuad:    ease.OutQuad,
	EaseInOutQuad:  ease.InOutQuad,
	EaseInCubic:    ease.InCubic,
	EaseOutCubic:   ease.OutCubic,
	EaseInOutCubic: ease.InOutCubic,
	EaseInSine:     ease.InSine,
	EaseOutSine:    ease.OutSine,
	EaseInOutSine:  ease.InOutSine,
	EaseInExpo:     ease.InExpo,
	EaseOutExpo:    ease.OutExpo,
	EaseInCirc:     ease.InCirc,
	EaseOutCirc:    ease.OutCirc,
	EaseInBack:     ease.InBack,
	EaseOutBack:    ease.OutBack,
	EaseOutBounce:  ease.OutBounce,
	EaseOutElastic: ease.OutElastic,
}

// TweenFunc returns the easing function for e, falling back to linear.
func (e Ease) TweenFunc() ease.TweenFunc {
	if fn, ok := easings[e]; ok {
		return fn
	}
	return ease.Linear
}

// Valid reports whether e names a known easing.
func (e Ease) Valid() bool {
	if e == EaseConstant || e == "" {
		return true
	}
	_, ok := easings[e]
	return ok
}

// Curve maps a time in [0, Span] to a value moving from From to To along an
// easing function. Inputs outside the span are clamped to its ends.
type Curve struct {
	Ease Ease    `yaml:"ease"`
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
	Span float64 `yaml:"span"`
}

// NewCurve returns an eased curve over [0, span].
func NewCurve(e Ease, from, to, span float64) Curve {
	return Curve{Ease: e, From: from, To: to, Span: span}
}

// ConstantCurve always evaluates to v.
func ConstantCurve(v float64) Curve {
	return Curve{Ease: EaseConstant, From: v, To: v, Span: 1}
}

// LinearCurve runs from `from` to `to` over [0, 1].
func LinearCurve(from, to float64) Curve {
	return Curve{Ease: EaseLinear, From: from, To: to, Span: 1}
}

// Evaluate samples the curve at t.
func (c Curve) Evaluate(t float64) float64 {
	if c.Ease == EaseConstant {
		return c.From
	}
	span := c.Span
	if span <= 0 {
		span = 1
	}
	switch {
	case t <= 0:
		return c.From
	case t >= span:
		return c.To
	}
	fn := c.Ease.TweenFunc()
	return float64(fn(float32(t), float32(c.From), float32(c.To-c.From), float32(span)))
}

// UnmarshalYAML accepts either a mapping or a bare number, which becomes a
// constant curve.
func (c *Curve) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		v, err := strconv.ParseFloat(node.Value, 64)
		if err != nil {
			return fmt.Errorf("curve: %w", err)
		}
		*c = ConstantCurve(v)
		return nil
	}
	type plain Curve
	p := plain(*c)
	if err := node.Decode(&p); err != nil {
		return err
	}
	if !p.Ease.Valid() {
		return fmt.Errorf("curve: unknown ease %q", p.Ease)
	}
	*c = Curve(p)
	return nil
}
