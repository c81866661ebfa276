package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/automoto/tilestep/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// ControlSchemeID selects which device and bindings drive a player
type ControlSchemeID int

const (
	SchemeArrows ControlSchemeID = iota // Arrow keys + Enter/Backspace
	SchemeWASD                          // WASD + Space/Escape
	SchemeGamepad                       // A bound standard-layout gamepad
	SchemeCount                         // Must be last - used for array sizing
)

var ErrUnknownScheme = errors.New("unknown control scheme")

var schemeNames = [SchemeCount]string{
	SchemeArrows:  "arrows",
	SchemeWASD:    "wasd",
	SchemeGamepad: "gamepad",
}

func (id ControlSchemeID) String() string {
	if id >= 0 && id < SchemeCount {
		return schemeNames[id]
	}
	return fmt.Sprintf("ControlSchemeID(%d)", int(id))
}

// ParseControlScheme maps a config name ("arrows", "wasd", "gamepad") to its ID.
func ParseControlScheme(name string) (ControlSchemeID, error) {
	for id, n := range schemeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return ControlSchemeID(id), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// InputBinding represents the keys and buttons that activate one action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// SchemeBindings maps each logical action to its physical inputs.
type SchemeBindings map[input.Action]InputBinding

// InputConfig holds all input mappings
type InputConfig struct {
	Schemes [SchemeCount]SchemeBindings
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = DefaultInput()
}

// DefaultInput returns the built-in keybinding tables.
func DefaultInput() InputConfig {
	return InputConfig{
		AnalogDeadzone: 0.25,
		Schemes: [SchemeCount]SchemeBindings{
			SchemeArrows: {
				input.Left:   {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
				input.Right:  {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
				input.Up:     {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
				input.Down:   {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
				input.Select: {Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}},
				input.Back:   {Keys: []ebiten.Key{ebiten.KeyBackspace}},
			},
			SchemeWASD: {
				input.Left:   {Keys: []ebiten.Key{ebiten.KeyA}},
				input.Right:  {Keys: []ebiten.Key{ebiten.KeyD}},
				input.Up:     {Keys: []ebiten.Key{ebiten.KeyW}},
				input.Down:   {Keys: []ebiten.Key{ebiten.KeyS}},
				input.Select: {Keys: []ebiten.Key{ebiten.KeySpace}},
				input.Back:   {Keys: []ebiten.Key{ebiten.KeyEscape}},
			},
			SchemeGamepad: {
				// D-pad (analog stick handled separately)
				input.Left: {StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				}},
				input.Right: {StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				}},
				input.Up: {StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				}},
				input.Down: {StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				}},
				// A / Cross, plus Start
				input.Select: {StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
					ebiten.StandardGamepadButtonCenterRight,
				}},
				// B / Circle
				input.Back: {StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				}},
			},
		},
	}
}

// RebindKeys replaces the keyboard keys bound to action under scheme.
// Key names are ebiten key names such as "ArrowLeft", "A" or "Space".
func (c *InputConfig) RebindKeys(scheme ControlSchemeID, action input.Action, keyNames []string) error {
	if scheme < 0 || scheme >= SchemeCount {
		return fmt.Errorf("%w: %d", ErrUnknownScheme, int(scheme))
	}
	keys := make([]ebiten.Key, 0, len(keyNames))
	for _, name := range keyNames {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return fmt.Errorf("bind %s/%s: %w", scheme, action, err)
		}
		keys = append(keys, k)
	}

	if c.Schemes[scheme] == nil {
		c.Schemes[scheme] = SchemeBindings{}
	}
	binding := c.Schemes[scheme][action]
	binding.Keys = keys
	c.Schemes[scheme][action] = binding
	return nil
}

// ApplyKeyOverrides applies a scheme -> action -> key names table, as read
// from the config file or saved settings. The table is applied whole or not
// at all: any bad scheme, action or key name leaves c unchanged.
func (c *InputConfig) ApplyKeyOverrides(overrides map[string]map[string][]string) error {
	next := *c
	for i, bindings := range c.Schemes {
		next.Schemes[i] = maps.Clone(bindings)
	}

	var errs []error
	for _, schemeName := range slices.Sorted(maps.Keys(overrides)) {
		scheme, err := ParseControlScheme(schemeName)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		actions := overrides[schemeName]
		for _, actionName := range slices.Sorted(maps.Keys(actions)) {
			action, err := input.ParseAction(actionName)
			if err != nil {
				errs = append(errs, fmt.Errorf("scheme %s: %w", scheme, err))
				continue
			}
			if err := next.RebindKeys(scheme, action, actions[actionName]); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	*c = next
	return nil
}
