// Package script drives the character from a tengo script instead of a
// keyboard. The script defines
//
//	update := func(input, world, state) { ... }
//
// which runs once per frame. input holds the output functions (move, look,
// hold, scroll, stop), world describes the character and state is a map
// kept between frames.
package script

import (
	"context"
	"fmt"
	"os"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/automoto/momentum/config"
	"github.com/automoto/momentum/shared/gamemath"
)

const dispatch = `
update(__input, __world, __state)
`

// Frame is the device state a script produced for one frame.
type Frame struct {
	Actions  [config.ActionCount]bool
	Movement mgl64.Vec2 // x right, y forward, clamped to unit length
	Look     mgl64.Vec2 // degrees, x right, y up
	Scroll   float64
}

// Held reports whether the script held a.
func (f Frame) Held(a config.ActionID) bool {
	return f.Actions[a]
}

// Observation is what the script can see of the world.
type Observation struct {
	Frame    int
	Time     float64
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Grounded bool
	Stamina  float64
}

// Device runs a compiled script once per Poll.
type Device struct {
	compiled *tengo.Compiled
	input    *tengo.ImmutableMap
	state    *tengo.Map
	out      Frame
	done     bool
}

// Load compiles the script file at path.
func Load(path string) (*Device, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	d, err := Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Compile builds a device from script source.
func Compile(src []byte) (*Device, error) {
	s := tengo.NewScript(append(append([]byte{}, src...), dispatch...))
	_ = s.Add("__input", map[string]any{})
	_ = s.Add("__world", map[string]any{})
	_ = s.Add("__state", map[string]any{})
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script: %w", err)
	}
	d := &Device{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}
	d.input = d.inputFunctions()
	return d, nil
}

// Done reports whether the script called stop.
func (d *Device) Done() bool {
	return d.done
}

// Poll runs the script for one frame. A stopped device returns an empty
// frame without running the script.
func (d *Device) Poll(ctx context.Context, obs Observation) (Frame, error) {
	d.out = Frame{}
	if d.done {
		return d.out, nil
	}
	if err := d.compiled.Set("__input", d.input); err != nil {
		return Frame{}, err
	}
	if err := d.compiled.Set("__world", world(obs)); err != nil {
		return Frame{}, err
	}
	if err := d.compiled.Set("__state", d.state); err != nil {
		return Frame{}, err
	}
	if err := d.compiled.RunContext(ctx); err != nil {
		return Frame{}, fmt.Errorf("script frame %d: %w", obs.Frame, err)
	}
	d.out.Movement = gamemath.ClampMagnitude2(d.out.Movement, 1)
	return d.out, nil
}

func vec3(v mgl64.Vec3) *tengo.Array {
	return &tengo.Array{Value: []tengo.Object{
		&tengo.Float{Value: v.X()},
		&tengo.Float{Value: v.Y()},
		&tengo.Float{Value: v.Z()},
	}}
}

func boolean(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func world(obs Observation) *tengo.ImmutableMap {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"frame":    &tengo.Int{Value: int64(obs.Frame)},
		"time":     &tengo.Float{Value: obs.Time},
		"position": vec3(obs.Position),
		"velocity": vec3(obs.Velocity),
		"speed":    &tengo.Float{Value: gamemath.Horizontal(obs.Velocity).Len()},
		"grounded": boolean(obs.Grounded),
		"stamina":  &tengo.Float{Value: obs.Stamina},
	}}
}

func floats(name string, args []tengo.Object, n int) ([]float64, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]float64, n)
	for i, a := range args {
		v, ok := tengo.ToFloat64(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{
				Name:     fmt.Sprintf("%s argument %d", name, i+1),
				Expected: "float",
				Found:    a.TypeName(),
			}
		}
		out[i] = v
	}
	return out, nil
}

func (d *Device) inputFunctions() *tengo.ImmutableMap {
	fn := func(name string, f tengo.CallableFunc) *tengo.UserFunction {
		return &tengo.UserFunction{Name: name, Value: f}
	}
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"move": fn("move", func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats("move", args, 2)
			if err != nil {
				return nil, err
			}
			d.out.Movement = mgl64.Vec2{v[0], v[1]}
			return tengo.UndefinedValue, nil
		}),
		"look": fn("look", func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats("look", args, 2)
			if err != nil {
				return nil, err
			}
			d.out.Look = d.out.Look.Add(mgl64.Vec2{v[0], v[1]})
			return tengo.UndefinedValue, nil
		}),
		"scroll": fn("scroll", func(args ...tengo.Object) (tengo.Object, error) {
			v, err := floats("scroll", args, 1)
			if err != nil {
				return nil, err
			}
			d.out.Scroll += v[0]
			return tengo.UndefinedValue, nil
		}),
		"hold": fn("hold", func(args ...tengo.Object) (tengo.Object, error) {
			for _, a := range args {
				name, _ := tengo.ToString(a)
				action, ok := config.ParseAction(name)
				if !ok {
					return nil, fmt.Errorf("hold: unknown action %q", name)
				}
				d.out.Actions[action] = true
			}
			return tengo.UndefinedValue, nil
		}),
		"stop": fn("stop", func(args ...tengo.Object) (tengo.Object, error) {
			d.done = true
			return tengo.UndefinedValue, nil
		}),
	}}
}
