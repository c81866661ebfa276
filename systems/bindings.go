package systems

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/input"
	"github.com/hajimehoshi/ebiten/v2"
)

var gamepadButtonNames = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonRightBottom: "A/Cross",
	ebiten.StandardGamepadButtonRightRight:  "B/Circle",
	ebiten.StandardGamepadButtonRightLeft:   "X/Square",
	ebiten.StandardGamepadButtonRightTop:    "Y/Triangle",
	ebiten.StandardGamepadButtonCenterRight: "Start",
	ebiten.StandardGamepadButtonCenterLeft:  "Back",
	ebiten.StandardGamepadButtonLeftLeft:    "D-Left",
	ebiten.StandardGamepadButtonLeftRight:   "D-Right",
	ebiten.StandardGamepadButtonLeftTop:     "D-Up",
	ebiten.StandardGamepadButtonLeftBottom:  "D-Down",
}

func gamepadButtonName(b ebiten.StandardGamepadButton) string {
	if name, ok := gamepadButtonNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Button%d", int(b))
}

// DescribeBindings lists "Action: inputs" for every action in scheme, in
// action declaration order. Unbound actions show "-".
func DescribeBindings(scheme cfg.ControlSchemeID) []string {
	bindings := cfg.Input.Schemes[scheme]
	lines := make([]string, 0, len(input.Actions()))
	for _, a := range input.Actions() {
		b := bindings[a]
		var names []string
		for _, k := range b.Keys {
			names = append(names, k.String())
		}
		for _, btn := range b.StandardGamepadButtons {
			names = append(names, gamepadButtonName(btn))
		}
		if len(names) == 0 {
			names = []string{"-"}
		}
		lines = append(lines, fmt.Sprintf("%s: %s", a, strings.Join(names, ", ")))
	}
	return lines
}
