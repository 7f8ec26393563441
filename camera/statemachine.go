package camera

import "github.com/automoto/momentum/locomotion"

// StateMachine owns the active camera. Next and Previous cycle through the
// selectable cameras in order and wrap around.
type StateMachine struct {
	states  []Controller
	active  Controller
	index   int
	enabled bool
}

func NewStateMachine(states ...Controller) *StateMachine {
	if len(states) == 0 {
		panic("camera: state machine needs at least one state")
	}
	return &StateMachine{states: states, enabled: true}
}

// Active returns the active camera, nil before the first Activate.
func (m *StateMachine) Active() Controller { return m.active }

func (m *StateMachine) Enabled() bool { return m.enabled }

// Activate makes c the active camera. Activating the active camera does
// nothing.
func (m *StateMachine) Activate(c Controller) {
	if c == nil || c == m.active {
		return
	}
	prev := m.active
	if prev != nil {
		prev.OnExit(c)
	}
	m.active = c
	for i, s := range m.states {
		if s == c {
			m.index = i
		}
	}
	c.OnEnter(prev)
}

// Select activates the first selectable camera of kind k.
func (m *StateMachine) Select(k Kind) bool {
	for _, s := range m.states {
		if s.Kind() == k {
			m.Activate(s)
			return true
		}
	}
	return false
}

func (m *StateMachine) Next() {
	m.Activate(m.states[(m.index+1)%len(m.states)])
}

func (m *StateMachine) Previous() {
	m.Activate(m.states[(m.index-1+len(m.states))%len(m.states)])
}

func (m *StateMachine) Enable() {
	if m.enabled {
		return
	}
	m.enabled = true
	if m.active != nil {
		m.active.OnEnabled()
	}
}

func (m *StateMachine) Disable() {
	if !m.enabled {
		return
	}
	m.enabled = false
	if m.active != nil {
		m.active.OnDisabled()
	}
}

// LateUpdate runs the active camera. It reports false while disabled or
// before any camera was activated.
func (m *StateMachine) LateUpdate(f Frame) (locomotion.Inputs, bool) {
	if !m.enabled || m.active == nil {
		return locomotion.Inputs{}, false
	}
	return m.active.LateUpdate(f), true
}
