package camera

// FieldOfViewModifier adjusts the field of view. unmodified is the base
// value before any modifier ran.
type FieldOfViewModifier interface {
	ModifyFieldOfView(fov, unmodified float64) float64
}

// FieldOfView runs the registered modifiers over a base value in
// registration order.
type FieldOfView struct {
	base      float64
	modifiers []FieldOfViewModifier
}

func NewFieldOfView(base float64) *FieldOfView {
	return &FieldOfView{base: base}
}

func (f *FieldOfView) SetBase(base float64) { f.base = base }
func (f *FieldOfView) Base() float64        { return f.base }

func (f *FieldOfView) Add(m FieldOfViewModifier) {
	f.modifiers = append(f.modifiers, m)
}

func (f *FieldOfView) Remove(m FieldOfViewModifier) {
	for i, existing := range f.modifiers {
		if existing == m {
			f.modifiers = append(f.modifiers[:i], f.modifiers[i+1:]...)
			return
		}
	}
}

// Value is the field of view after every modifier.
func (f *FieldOfView) Value() float64 {
	fov := f.base
	for _, m := range f.modifiers {
		fov = m.ModifyFieldOfView(fov, f.base)
	}
	return fov
}
