package config

import "fmt"

// GameState identifies a top-level screen of the game.
type GameState int

const (
	StateSplash GameState = iota
	StateLobby
	StateGame
	StateSettings
	StateAbout
	StateError
)

var gameStateNames = [...]string{
	StateSplash:   "Splash",
	StateLobby:    "Lobby",
	StateGame:     "Game",
	StateSettings: "Settings",
	StateAbout:    "About",
	StateError:    "Error",
}

func (s GameState) String() string {
	if s >= 0 && int(s) < len(gameStateNames) {
		return gameStateNames[s]
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}
