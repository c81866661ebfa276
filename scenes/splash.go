package scenes

import (
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SplashScene fades the title in and out.
type SplashScene struct {
	ecs    *ecs.ECS
	splash *components.SplashData
}

func NewSplashScene(hub *systems.Hub, nav systems.Navigator) *SplashScene {
	ss := &SplashScene{ecs: ecs.NewECS(donburi.NewWorld())}

	entry := ss.ecs.World.Entry(ss.ecs.World.Create(components.Splash))
	components.Splash.SetValue(entry, systems.NewSplash())
	ss.splash = components.Splash.Get(entry)

	ss.ecs.AddSystem(systems.NewUpdateSplash(hub, ss.splash, nav))
	ss.ecs.AddRenderer(cfg.Default, systems.NewDrawSplash(ss.splash))
	return ss
}

func (ss *SplashScene) Phase() components.SplashPhase {
	return ss.splash.Phase
}

func (ss *SplashScene) Update() error {
	ss.ecs.Update()
	return nil
}

func (ss *SplashScene) Draw(screen *ebiten.Image) {
	ss.ecs.Draw(screen)
}
