package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains settings screen configuration
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	Options                []string
	TitleY                 float64
	MenuStartY             float64
	MenuItemHeight         float64
	MenuItemGap            float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		Options:                []string{"Fullscreen", "Resolution", "Input Masks", "Back"},
		TitleY:                 50,
		MenuStartY:             100,
		MenuItemHeight:         24,
		MenuItemGap:            8,
	}
}
