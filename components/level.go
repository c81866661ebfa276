package components

import (
	"github.com/automoto/tilestep/level"
	"github.com/yohamta/donburi"
)

// LevelData holds the loaded map for the game scene.
type LevelData struct {
	Level *level.Level
}

var Level = donburi.NewComponentType[LevelData]()
