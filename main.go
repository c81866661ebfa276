package main

import (
	"errors"
	"log"
	"os"

	"github.com/automoto/tilestep/assets"
	"github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/fonts"
	"github.com/automoto/tilestep/logger"
	"github.com/automoto/tilestep/scenes"
	"github.com/automoto/tilestep/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

func loadConfig() error {
	env, err := config.LoadEnv(nil)
	if err != nil {
		return err
	}
	if env.ConfigPath != "" {
		f, err := config.Load(env.ConfigPath)
		if err != nil {
			return err
		}
		if err := f.Apply(); err != nil {
			return err
		}
	}
	env.Apply()
	return nil
}

func main() {
	if err := loadConfig(); err != nil {
		log.Fatal(err)
	}
	logger.Init(logger.Config{
		Level:  config.Log.Level,
		Format: config.Log.Format,
		Output: os.Stderr,
	})

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("tilestep"); err != nil {
		logger.L().Warn("could not initialize persistence", "err", err)
	}
	saved := systems.LoadSettings()
	if err := systems.ApplySavedSettingsGlobal(saved, systems.EbitenDisplay()); err != nil {
		logger.L().Warn("could not apply saved settings", "err", err)
	}

	initial := config.StateSplash
	if config.Debug.SkipSplash {
		initial = config.StateLobby
	}
	game, err := scenes.NewDirector(scenes.Options{
		Device:  systems.EbitenDevice(),
		Display: systems.EbitenDisplay(),
		Levels:  assets.Levels(),
		Saved:   saved,
	}, initial)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
