package systems

import (
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/fonts"
	"github.com/automoto/tilestep/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// DisplayApplier changes the window. The ebiten implementation is
// EbitenDisplay; tests pass a recorder.
type DisplayApplier interface {
	SetFullscreen(bool)
	SetWindowSize(width, height int)
}

type ebitenDisplay struct{}

func (ebitenDisplay) SetFullscreen(on bool)  { ebiten.SetFullscreen(on) }
func (ebitenDisplay) SetWindowSize(w, h int) { ebiten.SetWindowSize(w, h) }

func EbitenDisplay() DisplayApplier { return ebitenDisplay{} }

// NewUpdateSettingsMenu handles settings navigation and value changes.
// Back, or Select on the Back row, saves and returns to the lobby.
func NewUpdateSettingsMenu(hub *Hub, s *components.SettingsMenuData, display DisplayApplier, nav Navigator) ecs.System {
	return func(e *ecs.ECS) {
		q := &hub.Menu

		if q.JustPressed(input.Up) {
			navigateUp(s)
		}
		if q.JustPressed(input.Down) {
			navigateDown(s)
		}
		if q.JustPressed(input.Left) {
			adjustValue(s, display, -1)
		}
		if q.JustPressed(input.Right) {
			adjustValue(s, display, +1)
		}
		if q.JustPressed(input.Select) {
			if s.SelectedOption == components.SettingsOptBack {
				closeSettings(s, nav)
				return
			}
			adjustValue(s, display, +1)
		}
		if q.JustPressed(input.Back) {
			closeSettings(s, nav)
		}
	}
}

// navigateUp moves selection up, skipping hidden options
func navigateUp(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// navigateDown moves selection down, skipping hidden options
func navigateDown(s *components.SettingsMenuData) {
	for {
		s.SelectedOption = components.SettingsMenuOption(
			(int(s.SelectedOption) + 1) % numSettingsOptions,
		)
		if !isOptionHidden(s, s.SelectedOption) {
			break
		}
	}
}

// Resolution has no effect while fullscreen.
func isOptionHidden(s *components.SettingsMenuData, opt components.SettingsMenuOption) bool {
	return opt == components.SettingsOptResolution && s.Fullscreen
}

func adjustValue(s *components.SettingsMenuData, display DisplayApplier, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptFullscreen:
		s.Fullscreen = !s.Fullscreen
		display.SetFullscreen(s.Fullscreen)
		if !s.Fullscreen {
			applyResolution(s, display)
		}
	case components.SettingsOptResolution:
		n := len(cfg.SettingsMenu.Resolutions)
		s.ResolutionIndex = (s.ResolutionIndex + direction + n) % n
		applyResolution(s, display)
	case components.SettingsOptShowMasks:
		s.ShowMasks = !s.ShowMasks
		cfg.Debug.ShowMasks = s.ShowMasks
	default:
		return
	}
	s.Dirty = true
}

func applyResolution(s *components.SettingsMenuData, display DisplayApplier) {
	res := cfg.SettingsMenu.Resolutions[s.ResolutionIndex]
	display.SetWindowSize(res.Width, res.Height)
}

func closeSettings(s *components.SettingsMenuData, nav Navigator) {
	if s.Dirty {
		SaveCurrentSettings(s)
	}
	nav.Request(cfg.StateLobby)
}

func getOptionValue(s *components.SettingsMenuData, opt components.SettingsMenuOption) string {
	switch opt {
	case components.SettingsOptFullscreen:
		return onOff(s.Fullscreen)
	case components.SettingsOptResolution:
		return cfg.SettingsMenu.Resolutions[s.ResolutionIndex].Label
	case components.SettingsOptShowMasks:
		return onOff(s.ShowMasks)
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

// NewDrawSettingsMenu renders the settings screen.
func NewDrawSettingsMenu(hub *Hub, s *components.SettingsMenuData) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Lobby.BackgroundColor)
		width := float64(screen.Bounds().Dx())
		sm := cfg.SettingsMenu

		drawCentered(screen, "SETTINGS", fonts.Title, width, int(sm.TitleY), cfg.Lobby.TitleColor)

		face := fonts.Bold.Get()
		row := 0
		for opt := components.SettingsOptFullscreen; opt <= components.SettingsOptBack; opt++ {
			if isOptionHidden(s, opt) {
				continue
			}
			y := int(sm.MenuStartY + float64(row)*(sm.MenuItemHeight+sm.MenuItemGap) + sm.MenuItemHeight)
			clr := cfg.Lobby.TextColorNormal
			if opt == s.SelectedOption {
				clr = cfg.Lobby.TextColorSelected
			}
			text.Draw(screen, sm.Options[opt], face, int(width/2)-140, y, clr)
			if v := getOptionValue(s, opt); v != "" {
				text.Draw(screen, v, face, int(width/2)+40, y, clr)
			}
			row++
		}

		hint := getSettingsHint(hub.LastInputMethod)
		drawCentered(screen, hint, fonts.Small, width, screen.Bounds().Dy()-12, cfg.Lobby.TextColorNormal)
	}
}

func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate/Change   Cross: Toggle   Circle: Back"
	case components.InputXbox:
		return "D-Pad: Navigate/Change   A: Toggle   B: Back"
	}
	return "Arrows: Navigate/Change   Enter: Toggle   Esc: Back"
}
