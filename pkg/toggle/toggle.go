// Package toggle implements the show/hide state machine shared by overlay
// style components. The machine owns the public Show/Hide/Toggle operations,
// the showing flag and the pending transition bookkeeping; the component
// supplies the visual side through Hooks and reports completion with
// ResolveShow/ResolveHide.
package toggle

// Hooks are implemented by the component that owns the machine.
type Hooks interface {
	// OnShow starts the opening transition. showing is already true.
	OnShow()
	// OnHide starts the closing transition. showing is already false.
	OnHide()
}

// Machine is the toggle state machine. The zero value is not usable; use New.
type Machine struct {
	hooks   Hooks
	showing bool

	showPending *Pending
	hidePending *Pending

	onInput []func(bool)
	onHid   []func()
}

// New creates a machine with the given initial state. Hooks are not invoked
// for the initial state.
func New(hooks Hooks, showing bool) *Machine {
	return &Machine{
		hooks:   hooks,
		showing: showing,
	}
}

// Showing reports the current open/closed intent.
func (m *Machine) Showing() bool {
	return m.showing
}

// Show opens the component. Calling Show while already showing is a no-op
// that returns the in-flight transition, if any.
func (m *Machine) Show() *Pending {
	if m.showing {
		if m.showPending != nil {
			return m.showPending
		}
		return Resolved()
	}
	if m.hidePending != nil {
		m.hidePending.reject()
		m.hidePending = nil
	}

	m.showing = true
	m.emitInput(true)

	p := newPending()
	m.showPending = p
	m.hooks.OnShow()
	return p
}

// Hide closes the component. Calling Hide while hidden is a no-op that
// returns the in-flight transition, if any.
func (m *Machine) Hide() *Pending {
	if !m.showing {
		if m.hidePending != nil {
			return m.hidePending
		}
		return Resolved()
	}
	if m.showPending != nil {
		m.showPending.reject()
		m.showPending = nil
	}

	m.showing = false
	m.emitInput(false)

	p := newPending()
	m.hidePending = p
	m.hooks.OnHide()
	return p
}

// Toggle flips the current state.
func (m *Machine) Toggle() *Pending {
	if m.showing {
		return m.Hide()
	}
	return m.Show()
}

// SetValue applies an externally bound value, the write half of the two-way
// binding.
func (m *Machine) SetValue(v bool) {
	if v != m.showing {
		if v {
			m.Show()
		} else {
			m.Hide()
		}
	}
}

// ShowPending returns the in-flight show transition, or nil.
func (m *Machine) ShowPending() *Pending {
	return m.showPending
}

// HidePending returns the in-flight hide transition, or nil.
func (m *Machine) HidePending() *Pending {
	return m.hidePending
}

// ResolveShow completes the in-flight show transition.
func (m *Machine) ResolveShow() {
	p := m.showPending
	if p == nil {
		return
	}
	m.showPending = nil
	p.resolve()
}

// ResolveHide completes the in-flight hide transition.
func (m *Machine) ResolveHide() {
	p := m.hidePending
	if p == nil {
		return
	}
	m.hidePending = nil
	for _, fn := range m.onHid {
		fn()
	}
	p.resolve()
}

// OnInput registers fn to be told about every change of showing.
func (m *Machine) OnInput(fn func(bool)) {
	m.onInput = append(m.onInput, fn)
}

// OnHidden registers fn to run when a hide transition completes.
func (m *Machine) OnHidden(fn func()) {
	m.onHid = append(m.onHid, fn)
}

func (m *Machine) emitInput(v bool) {
	for _, fn := range m.onInput {
		fn(v)
	}
}
