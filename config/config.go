package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; scenes draw back to front in
// registration order.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// SplashConfig controls the title card shown on startup
type SplashConfig struct {
	Title           string
	FadeSeconds     float32
	HoldSeconds     float32
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
}

// LobbyConfig contains lobby screen configuration values
type LobbyConfig struct {
	MaxPlayers        int
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	SlotsY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GridConfig describes the playfield
type GridConfig struct {
	MapPath         string // path inside the embedded levels filesystem
	SolidLayer      string // tile layer whose non-empty tiles block movement
	SpawnGroup      string // object group holding player spawn points
	BackgroundColor color.RGBA
	SolidColor      color.RGBA
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipSplash bool // Go straight to the lobby
	ShowMasks  bool // Draw each player's raw input masks
}

// LogConfig selects the logger level and format
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Global configuration instances
var C *Config
var Splash SplashConfig
var Lobby LobbyConfig
var Grid GridConfig
var Debug DebugConfig
var Log LogConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Grey         = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	Navy         = color.RGBA{R: 15, G: 25, B: 50, A: 255}
)

// PlayerColors tints each player slot, indexed by slot.
var PlayerColors = []color.RGBA{
	{R: 100, G: 180, B: 255, A: 255},
	{R: 255, G: 100, B: 100, A: 255},
	{R: 100, G: 255, B: 100, A: 255},
	{R: 255, G: 255, B: 100, A: 255},
}

func init() {
	C = &Config{
		Title:  "tilestep",
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Splash = SplashConfig{
		Title:           "TILESTEP",
		FadeSeconds:     0.75,
		HoldSeconds:     1.0,
		BackgroundColor: color.RGBA{A: 255},
		TitleColor:      Orange,
	}

	Lobby = LobbyConfig{
		MaxPlayers:        4,
		BackgroundColor:   Navy,
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            50,
		SlotsY:            90,
		MenuStartY:        190,
		MenuItemHeight:    24,
		MenuItemGap:       6,
		MenuOptions:       []string{"Play", "Settings", "About", "Quit"},
	}

	Grid = GridConfig{
		MapPath:         "levels/arena.tmx",
		SolidLayer:      "solid",
		SpawnGroup:      "spawns",
		BackgroundColor: color.RGBA{R: 20, G: 20, B: 30, A: 255},
		SolidColor:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
	}

	Log = LogConfig{Level: "info", Format: "console"}
}
