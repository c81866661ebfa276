package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptFullscreen SettingsMenuOption = iota
	SettingsOptResolution
	SettingsOptShowMasks
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings screen
type SettingsMenuData struct {
	SelectedOption SettingsMenuOption

	// Current settings values
	Fullscreen      bool
	ResolutionIndex int
	ShowMasks       bool

	Dirty bool // changed since last save
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
