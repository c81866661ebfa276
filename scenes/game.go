package scenes

import (
	"fmt"
	"image/color"
	"io/fs"

	"github.com/automoto/tilestep/archetypes"
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/level"
	"github.com/automoto/tilestep/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameScene is the grid level with one entity per seated player.
type GameScene struct {
	ecs   *ecs.ECS
	level *level.Level
}

// NewGameScene loads the configured map and spawns the seated players.
func NewGameScene(dev systems.Device, levels fs.FS, slots [components.MaxPlayers]components.PlayerSlot, nav systems.Navigator) (*GameScene, error) {
	lvl, err := level.Load(levels, cfg.Grid.MapPath, cfg.Grid.SolidLayer, cfg.Grid.SpawnGroup)
	if err != nil {
		return nil, fmt.Errorf("load level: %w", err)
	}

	gs := &GameScene{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		level: lvl,
	}

	lvlEntry := archetypes.Level.Spawn(gs.ecs)
	components.Level.SetValue(lvlEntry, components.LevelData{Level: lvl})
	systems.SpawnPlayers(gs.ecs, lvl, slots)

	// Input first so every later system sees this tick's edges.
	gs.ecs.AddSystem(systems.NewUpdatePlayerInput(dev))
	gs.ecs.AddSystem(systems.UpdatePlayers)
	gs.ecs.AddSystem(systems.NewUpdateGameExit(nav))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	gs.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	return gs, nil
}

// World exposes the entities, for inspection.
func (gs *GameScene) World() donburi.World {
	return gs.ecs.World
}

func (gs *GameScene) Level() *level.Level {
	return gs.level
}

// Close removes the players from the level.
func (gs *GameScene) Close() {
	systems.DespawnPlayers(gs.ecs)
}

func (gs *GameScene) Update() error {
	gs.ecs.Update()
	return nil
}

func (gs *GameScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	gs.ecs.Draw(screen)
}
