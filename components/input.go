package components

import (
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

// PlayerInputData binds a player entity to the device it reads from.
type PlayerInputData struct {
	Slot          int                 // 0-3 player slot
	ControlScheme cfg.ControlSchemeID // Keyboard half or gamepad
	GamepadID     *ebiten.GamepadID   // Bound gamepad (nil = any, for SchemeGamepad)
	InputMethod   InputMethod         // Current input method (for UI prompts)
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()

// ActionQueue is the per-entity edge detector. Exactly one system updates
// it per tick; everything else only queries it.
var ActionQueue = donburi.NewComponentType[input.ActionQueue]()
