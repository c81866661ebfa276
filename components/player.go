package components

import (
	"github.com/automoto/tilestep/level"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PlayerData is a player's place on the grid.
type PlayerData struct {
	Cell  level.Cell
	Body  *resolv.Object // occupancy in the level's space
	Moves int            // successful steps taken
	Bumps int            // steps refused by a wall or another player
}

var Player = donburi.NewComponentType[PlayerData]()
