package scenes

import (
	"errors"
	"io/fs"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/fsm"
	"github.com/automoto/tilestep/logger"
	"github.com/automoto/tilestep/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Options configure a Director.
type Options struct {
	Device  systems.Device
	Display systems.DisplayApplier
	Levels  fs.FS
	Saved   *systems.SavedSettings
}

// Director is the ebiten.Game. It owns the state machine, the input hub
// and the data that outlives individual scenes.
type Director struct {
	machine *fsm.Machine[cfg.GameState]
	hub     *systems.Hub
	dev     systems.Device
	display systems.DisplayApplier
	levels  fs.FS

	scene    Scene
	lobby    components.LobbyData
	settings components.SettingsMenuData
	quit     bool
}

// NewDirector builds the director and enters initial.
func NewDirector(opts Options, initial cfg.GameState) (*Director, error) {
	d := &Director{
		machine: fsm.NewMachine(cfg.StateError),
		hub:     systems.NewHub(opts.Device),
		dev:     opts.Device,
		display: opts.Display,
		levels:  opts.Levels,
		settings: components.SettingsMenuData{
			ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
			ShowMasks:       cfg.Debug.ShowMasks,
		},
	}
	systems.SettingsFromSaved(&d.settings, opts.Saved)

	d.machine.Register(cfg.StateSplash, fsm.Hooks{
		Enter: func() error { d.scene = NewSplashScene(d.hub, d); return nil },
	})
	d.machine.Register(cfg.StateLobby, fsm.Hooks{
		Enter: func() error {
			d.scene = NewLobbyScene(d.hub, d.lobby, d, d.Quit)
			return nil
		},
		Exit: func() {
			if ls, ok := d.scene.(*LobbyScene); ok {
				d.lobby = ls.Data()
				d.lobby.Status = ""
			}
		},
	})
	d.machine.Register(cfg.StateGame, fsm.Hooks{
		Enter: func() error {
			gs, err := NewGameScene(d.dev, d.levels, d.lobby.Slots, d)
			if err != nil {
				return err
			}
			d.scene = gs
			return nil
		},
		Exit: func() {
			if gs, ok := d.scene.(*GameScene); ok {
				gs.Close()
			}
		},
	})
	d.machine.Register(cfg.StateSettings, fsm.Hooks{
		Enter: func() error {
			d.scene = NewSettingsScene(d.hub, d.settings, d.display, d)
			return nil
		},
		Exit: func() {
			if ss, ok := d.scene.(*SettingsScene); ok {
				d.settings = ss.Data()
			}
		},
	})
	d.machine.Register(cfg.StateAbout, fsm.Hooks{
		Enter: func() error {
			as, err := NewAboutScene(d.hub, d)
			if err != nil {
				return err
			}
			d.scene = as
			return nil
		},
	})
	d.machine.Register(cfg.StateError, fsm.Hooks{
		Enter: func() error {
			es, err := NewErrorScene(d.hub, d.machine.LastError(), d)
			if err != nil {
				return err
			}
			d.scene = es
			return nil
		},
		Exit: d.machine.ClearError,
	})

	if err := d.checkTransition(d.machine.Start(initial)); err != nil {
		return nil, err
	}
	logger.L().Info("game started", "state", d.machine.Current())
	return d, nil
}

// Request queues a state change for the start of the next tick.
func (d *Director) Request(next cfg.GameState) {
	d.machine.Request(next)
}

// Fail records err and moves to the error screen on the next tick.
func (d *Director) Fail(err error) {
	logger.L().Error("scene failed", "state", d.machine.Current(), "err", err)
	d.machine.Fail(err)
}

// Quit ends the game after the current tick.
func (d *Director) Quit() {
	d.quit = true
}

// State returns the current top-level state.
func (d *Director) State() cfg.GameState {
	return d.machine.Current()
}

// Lobby returns a copy of the lobby seats as last left.
func (d *Director) Lobby() components.LobbyData {
	if ls, ok := d.scene.(*LobbyScene); ok {
		return ls.Data()
	}
	return d.lobby
}

// Scene returns the active scene.
func (d *Director) Scene() Scene {
	return d.scene
}

// Hub returns the shared input hub.
func (d *Director) Hub() *systems.Hub {
	return d.hub
}

func (d *Director) Update() error {
	from := d.machine.Current()
	changed, err := d.machine.Apply()
	if err := d.checkTransition(err); err != nil {
		return err
	}
	if changed {
		logger.L().Info("state changed", "from", from, "to", d.machine.Current())
	}
	if d.quit {
		return ebiten.Termination
	}

	d.hub.Update()
	if err := d.scene.Update(); err != nil {
		d.Fail(err)
	}
	if d.quit {
		return ebiten.Termination
	}
	return nil
}

// checkTransition decides whether a transition error is fatal. Failures
// that landed on the error screen and requests for unregistered states
// are logged; anything else stops the game.
func (d *Director) checkTransition(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fsm.ErrUnknownState) {
		logger.L().Warn("ignored transition", "err", err)
		return nil
	}
	if _, ok := d.scene.(*ErrorScene); ok && d.machine.Current() == cfg.StateError {
		logger.L().Error("state failed", "err", err)
		return nil
	}
	return err
}

func (d *Director) Draw(screen *ebiten.Image) {
	d.scene.Draw(screen)
}

func (d *Director) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}
