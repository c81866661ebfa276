package input

// ActionState is the frame-relative view of one action.
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// MaskOf returns the union of the actions' bits. Repeated actions have no
// effect beyond their first occurrence.
func MaskOf(actions ...Action) Mask {
	var m Mask
	for _, a := range actions {
		m |= a.Bit()
	}
	return m
}

// Has reports whether a's bit is set in m.
func (m Mask) Has(a Action) bool {
	return m&a.Bit() == a.Bit()
}

// Actions decodes m into its actions, in declaration order.
func (m Mask) Actions() []Action {
	var out []Action
	for _, a := range Actions() {
		if m.Has(a) {
			out = append(out, a)
		}
	}
	return out
}

// ActionQueue keeps two generations of input for one entity and answers
// edge queries against them. The zero value is ready to use.
//
// Update must be called exactly once per tick, before any query for that
// tick. Skipping a tick freezes history; calling twice produces spurious
// edges. An ActionQueue is owned by a single entity and is not safe for
// concurrent mutation.
type ActionQueue struct {
	current  Mask
	previous Mask
}

// NewActionQueue returns a queue with nothing pressed and no history.
func NewActionQueue() ActionQueue {
	return ActionQueue{}
}

// Update rotates history and records the actions active this tick.
// An empty call releases everything.
func (q *ActionQueue) Update(active ...Action) {
	q.previous = q.current
	q.current = MaskOf(active...)
}

// Current returns the mask recorded by the most recent Update.
func (q *ActionQueue) Current() Mask { return q.current }

// Previous returns the mask recorded by the Update before that.
func (q *ActionQueue) Previous() Mask { return q.previous }

// IsPressed reports whether a is active this tick.
func (q *ActionQueue) IsPressed(a Action) bool {
	return q.current.Has(a)
}

// JustPressed reports a released-to-pressed transition this tick.
func (q *ActionQueue) JustPressed(a Action) bool {
	return q.current.Has(a) && !q.previous.Has(a)
}

// JustReleased reports a pressed-to-released transition this tick.
func (q *ActionQueue) JustReleased(a Action) bool {
	return !q.current.Has(a) && q.previous.Has(a)
}

// Held reports that a was pressed last tick and still is.
func (q *ActionQueue) Held(a Action) bool {
	return q.current.Has(a) && q.previous.Has(a)
}

// State bundles the edge queries for a.
func (q *ActionQueue) State(a Action) ActionState {
	return ActionState{
		Pressed:      q.IsPressed(a),
		JustPressed:  q.JustPressed(a),
		JustReleased: q.JustReleased(a),
	}
}
