package components

import (
	cfg "github.com/automoto/tilestep/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// MaxPlayers is the number of lobby slots.
const MaxPlayers = 4

// PlayerSlot is one seat in the lobby.
type PlayerSlot struct {
	Joined        bool
	ControlScheme cfg.ControlSchemeID
	GamepadID     *ebiten.GamepadID // set for SchemeGamepad seats
}

// LobbyOption represents the lobby menu selections
type LobbyOption int

const (
	LobbyPlay LobbyOption = iota
	LobbySettings
	LobbyAbout
	LobbyQuit
)

// LobbyData stores the lobby seats and menu cursor.
type LobbyData struct {
	Slots         [MaxPlayers]PlayerSlot
	SelectedIndex int
	Status        string // one-line feedback, e.g. "join a player first"
}

// JoinedCount returns how many seats are taken.
func (l *LobbyData) JoinedCount() int {
	n := 0
	for _, s := range l.Slots {
		if s.Joined {
			n++
		}
	}
	return n
}

var Lobby = donburi.NewComponentType[LobbyData]()
