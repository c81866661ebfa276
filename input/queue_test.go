package input_test

import (
	"math/rand"
	"testing"

	"github.com/automoto/tilestep/input"
	"github.com/stretchr/testify/assert"
)

func TestNewQueueHasNothingPressed(t *testing.T) {
	q := input.NewActionQueue()

	for _, a := range input.Actions() {
		assert.False(t, q.IsPressed(a), a.String())
		assert.False(t, q.JustPressed(a), a.String())
		assert.False(t, q.JustReleased(a), a.String())
		assert.False(t, q.Held(a), a.String())
	}
	assert.Zero(t, q.Current())
	assert.Zero(t, q.Previous())
}

func TestAllPressed(t *testing.T) {
	var q input.ActionQueue
	q.Update(input.Left, input.Right, input.Up, input.Down)

	for _, a := range []input.Action{input.Left, input.Right, input.Up, input.Down} {
		assert.True(t, q.JustPressed(a), a.String())
		assert.True(t, q.IsPressed(a), a.String())
	}
	assert.False(t, q.IsPressed(input.Select))
}

func TestReleaseAfterEmptyUpdate(t *testing.T) {
	var q input.ActionQueue
	q.Update(input.Left)

	assert.True(t, q.IsPressed(input.Left))
	assert.False(t, q.IsPressed(input.Right))

	q.Update()

	assert.False(t, q.IsPressed(input.Left))
	assert.True(t, q.JustReleased(input.Left))
	assert.Zero(t, q.Current())
}

func TestHeldIsNotJustPressed(t *testing.T) {
	var q input.ActionQueue

	q.Update(input.Left)
	assert.True(t, q.JustPressed(input.Left))
	assert.False(t, q.JustPressed(input.Right))
	assert.False(t, q.Held(input.Left))

	q.Update(input.Left)
	assert.False(t, q.JustPressed(input.Left))
	assert.True(t, q.IsPressed(input.Left))
	assert.True(t, q.Held(input.Left))
}

func TestDuplicateActionsCollapse(t *testing.T) {
	var once, twice input.ActionQueue
	once.Update(input.Left)
	twice.Update(input.Left, input.Left)

	assert.Equal(t, once, twice)
	assert.False(t, twice.IsPressed(input.Right), "a repeated Left must not carry into Right")

	// Four Lefts would sum to Down's bit.
	var q input.ActionQueue
	q.Update(input.Left, input.Left, input.Left, input.Left)
	assert.False(t, q.IsPressed(input.Down))
	assert.Equal(t, input.Left.Bit(), q.Current())
}

func TestJustReleasedCycle(t *testing.T) {
	var q input.ActionQueue
	ticks := [][]input.Action{
		{input.Left, input.Right},
		{input.Left, input.Right},
		{input.Right},
		{input.Right},
	}
	want := []bool{false, false, true, false}

	for i, active := range ticks {
		q.Update(active...)
		assert.Equal(t, want[i], q.JustReleased(input.Left), "tick %d", i)
		assert.False(t, q.JustReleased(input.Right), "tick %d", i)
	}
}

func TestStateTable(t *testing.T) {
	tests := []struct {
		name     string
		previous bool
		current  bool
		want     input.ActionState
	}{
		{name: "idle", want: input.ActionState{}},
		{name: "rising", current: true, want: input.ActionState{Pressed: true, JustPressed: true}},
		{name: "held", previous: true, current: true, want: input.ActionState{Pressed: true}},
		{name: "falling", previous: true, want: input.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var q input.ActionQueue
			q.Update(when(tt.previous, input.Up)...)
			q.Update(when(tt.current, input.Up)...)
			assert.Equal(t, tt.want, q.State(input.Up))
		})
	}
}

func TestPreviousTracksLastCurrent(t *testing.T) {
	var q input.ActionQueue
	q.Update(input.Up, input.Select)
	before := q.Current()
	q.Update(input.Down)

	assert.Equal(t, before, q.Previous())
	assert.Equal(t, input.Down.Bit(), q.Current())
}

func TestJustPressedMatchesConsecutiveSamples(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	all := input.Actions()

	var q input.ActionQueue
	var lastPressed [8]bool

	for tick := 0; tick < 500; tick++ {
		var active []input.Action
		for _, a := range all {
			// Random repeats exercise duplicate-safety as well.
			for n := rng.Intn(3); n > 0; n-- {
				active = append(active, a)
			}
		}
		rng.Shuffle(len(active), func(i, j int) { active[i], active[j] = active[j], active[i] })
		q.Update(active...)

		for i, a := range all {
			pressed := q.IsPressed(a)
			assert.Equal(t, pressed && !lastPressed[i], q.JustPressed(a), "tick %d %s", tick, a)
			assert.Equal(t, !pressed && lastPressed[i], q.JustReleased(a), "tick %d %s", tick, a)
			lastPressed[i] = pressed
		}
	}
}

func when(ok bool, a input.Action) []input.Action {
	if ok {
		return []input.Action{a}
	}
	return nil
}
