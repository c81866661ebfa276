package input

import (
	"errors"
	"fmt"
	"strings"
)

// MaskBits is the width of Mask. Every Action must fit in it; adding an
// action past bit 7 means widening Mask and this constant together.
const MaskBits = 8

// Mask holds one bit per Action.
type Mask uint8

// Action is a logical input symbol, decoupled from any physical device.
// Each value is a single distinct bit.
type Action Mask

const (
	Left Action = 1 << iota
	Right
	Up
	Down
	Select
	Back

	numActions = iota // must stay last
)

// Compile-time guard: a negative array length if the actions outgrow Mask.
var _ [MaskBits - numActions]struct{}

var ErrUnknownAction = errors.New("unknown action")

var actionNames = map[Action]string{
	Left:   "Left",
	Right:  "Right",
	Up:     "Up",
	Down:   "Down",
	Select: "Select",
	Back:   "Back",
}

// Actions returns every action in declaration order.
func Actions() []Action {
	actions := make([]Action, numActions)
	for i := range actions {
		actions[i] = Action(1) << i
	}
	return actions
}

// Bit returns the action's mask bit.
func (a Action) Bit() Mask {
	return Mask(a)
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%#02x)", uint8(a))
}

// ParseAction maps a case-insensitive action name (as written in config
// files) to its Action.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}
