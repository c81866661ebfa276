// Package fsm is the top-level state dispatcher: it owns the current state
// and runs enter/exit hooks when a requested transition is applied.
package fsm

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownState = errors.New("unknown state")
	ErrNotStarted   = errors.New("machine not started")
)

// Hooks are the callbacks for one state. Either may be nil.
type Hooks struct {
	Enter func() error
	Exit  func()
}

// Machine is a finite-state machine over comparable state IDs. Transitions
// are requested at any time but only take effect in Apply, which the host
// calls once at the start of each tick.
type Machine[S comparable] struct {
	hooks      map[S]Hooks
	errorState S

	current  S
	previous S
	started  bool

	pending    S
	hasPending bool

	lastErr error
}

// NewMachine creates a machine that routes failed Enter hooks and Fail
// calls to errorState.
func NewMachine[S comparable](errorState S) *Machine[S] {
	return &Machine[S]{
		hooks:      make(map[S]Hooks),
		errorState: errorState,
	}
}

// Register sets the hooks for state, replacing any earlier registration.
func (m *Machine[S]) Register(state S, hooks Hooks) {
	m.hooks[state] = hooks
}

// Start enters the initial state.
func (m *Machine[S]) Start(initial S) error {
	if _, ok := m.hooks[initial]; !ok {
		return fmt.Errorf("start %v: %w", initial, ErrUnknownState)
	}
	m.started = true
	m.current = initial
	m.previous = initial
	return m.enter(initial)
}

// Request queues a transition. A later request in the same tick replaces
// an earlier one.
func (m *Machine[S]) Request(next S) {
	m.pending = next
	m.hasPending = true
}

// Fail records err and requests the error state.
func (m *Machine[S]) Fail(err error) {
	m.lastErr = err
	m.Request(m.errorState)
}

// Apply performs the pending transition, if any, and reports whether the
// state changed. Requesting the current state is a no-op.
func (m *Machine[S]) Apply() (bool, error) {
	if !m.hasPending {
		return false, nil
	}
	next := m.pending
	m.hasPending = false

	if !m.started {
		return false, ErrNotStarted
	}
	if _, ok := m.hooks[next]; !ok {
		return false, fmt.Errorf("transition %v -> %v: %w", m.current, next, ErrUnknownState)
	}
	if next == m.current {
		return false, nil
	}

	if exit := m.hooks[m.current].Exit; exit != nil {
		exit()
	}
	m.previous = m.current
	m.current = next
	return true, m.enter(next)
}

// enter runs next's Enter hook; a failure moves the machine to the error
// state, whose own Enter failure is returned as is.
func (m *Machine[S]) enter(next S) error {
	enter := m.hooks[next].Enter
	if enter == nil {
		return nil
	}
	err := enter()
	if err == nil || next == m.errorState {
		return err
	}

	err = fmt.Errorf("enter %v: %w", next, err)
	m.lastErr = err
	if _, ok := m.hooks[m.errorState]; !ok {
		return err
	}
	m.previous = next
	m.current = m.errorState
	if enterErr := m.enter(m.errorState); enterErr != nil {
		return errors.Join(err, enterErr)
	}
	return err
}

// Current returns the active state.
func (m *Machine[S]) Current() S { return m.current }

// Previous returns the state active before the last transition.
func (m *Machine[S]) Previous() S { return m.previous }

// Pending returns the queued transition, if any.
func (m *Machine[S]) Pending() (S, bool) { return m.pending, m.hasPending }

// LastError returns the error recorded by the most recent failure.
func (m *Machine[S]) LastError() error { return m.lastErr }

// ClearError forgets the recorded error.
func (m *Machine[S]) ClearError() { m.lastErr = nil }
