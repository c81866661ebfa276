package scenes

import (
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LobbyScene seats players and shows the main menu.
type LobbyScene struct {
	ecs       *ecs.ECS
	lobbyData *components.LobbyData
}

// NewLobbyScene restores the seats from a previous visit.
func NewLobbyScene(hub *systems.Hub, lobby components.LobbyData, nav systems.Navigator, quit func()) *LobbyScene {
	ls := &LobbyScene{ecs: ecs.NewECS(donburi.NewWorld())}

	entry := ls.ecs.World.Entry(ls.ecs.World.Create(components.Lobby))
	components.Lobby.SetValue(entry, lobby)
	ls.lobbyData = components.Lobby.Get(entry)

	ls.ecs.AddSystem(systems.NewUpdateLobby(hub, ls.lobbyData, nav, quit))
	ls.ecs.AddRenderer(cfg.Default, systems.NewDrawLobby(hub, ls.lobbyData))
	ls.ecs.AddRenderer(cfg.Default, func(_ *ecs.ECS, screen *ebiten.Image) {
		systems.DrawHubDebug(hub, screen)
	})
	return ls
}

// Data returns a copy of the seats and menu cursor.
func (ls *LobbyScene) Data() components.LobbyData {
	return *ls.lobbyData
}

func (ls *LobbyScene) Update() error {
	ls.ecs.Update()
	return nil
}

func (ls *LobbyScene) Draw(screen *ebiten.Image) {
	ls.ecs.Draw(screen)
}
