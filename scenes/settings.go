package scenes

import (
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SettingsScene edits display and debug options.
type SettingsScene struct {
	ecs      *ecs.ECS
	settings *components.SettingsMenuData
}

func NewSettingsScene(hub *systems.Hub, settings components.SettingsMenuData, display systems.DisplayApplier, nav systems.Navigator) *SettingsScene {
	ss := &SettingsScene{ecs: ecs.NewECS(donburi.NewWorld())}

	entry := ss.ecs.World.Entry(ss.ecs.World.Create(components.SettingsMenu))
	settings.SelectedOption = components.SettingsOptFullscreen
	components.SettingsMenu.SetValue(entry, settings)
	ss.settings = components.SettingsMenu.Get(entry)

	ss.ecs.AddSystem(systems.NewUpdateSettingsMenu(hub, ss.settings, display, nav))
	ss.ecs.AddRenderer(cfg.Default, systems.NewDrawSettingsMenu(hub, ss.settings))
	return ss
}

// Data returns a copy of the edited settings.
func (ss *SettingsScene) Data() components.SettingsMenuData {
	return *ss.settings
}

func (ss *SettingsScene) Update() error {
	ss.ecs.Update()
	return nil
}

func (ss *SettingsScene) Draw(screen *ebiten.Image) {
	ss.ecs.Draw(screen)
}
