package systems

import "github.com/hajimehoshi/ebiten/v2"

// Device is the slice of ebiten's input API the adapters read. Tests
// substitute a fake.
type Device interface {
	IsKeyPressed(key ebiten.Key) bool
	AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64
	GamepadName(id ebiten.GamepadID) string
}

type ebitenDevice struct{}

// EbitenDevice reads the live keyboard and gamepads.
func EbitenDevice() Device { return ebitenDevice{} }

func (ebitenDevice) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (ebitenDevice) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(ids)
}

func (ebitenDevice) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (ebitenDevice) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (ebitenDevice) StandardGamepadAxisValue(id ebiten.GamepadID, axis ebiten.StandardGamepadAxis) float64 {
	return ebiten.StandardGamepadAxisValue(id, axis)
}

func (ebitenDevice) GamepadName(id ebiten.GamepadID) string { return ebiten.GamepadName(id) }
