package systems

import (
	"fmt"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/fonts"
	"github.com/automoto/tilestep/input"
	"github.com/automoto/tilestep/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numLobbyOptions = int(components.LobbyQuit) + 1

// NewUpdateLobby handles seats and the lobby menu. An unseated device
// joins with Select; a seated one drives the menu and leaves with Back.
// When nobody is seated, any device may move the cursor. Seated devices
// share one cursor: their edges are merged so simultaneous presses act once.
func NewUpdateLobby(hub *Hub, lobby *components.LobbyData, nav Navigator, quit func()) ecs.System {
	return func(e *ecs.ECS) {
		seated := map[DeviceKey]int{}
		for i, slot := range lobby.Slots {
			if slot.Joined {
				seated[KeyFor(slot)] = i
			}
		}

		if len(seated) == 0 {
			navigateLobby(lobby, pressedEdges(&hub.Menu))
		}
		var edges input.Mask
		for _, key := range hub.Sources() {
			q := hub.Source(key)
			slot, ok := seated[key]
			if !ok {
				if q.JustPressed(input.Select) {
					JoinLobby(lobby, key)
				}
				continue
			}

			if q.JustPressed(input.Back) {
				LeaveLobby(lobby, slot)
				continue
			}
			edges |= pressedEdges(q)
		}

		navigateLobby(lobby, edges)
		if edges.Has(input.Select) {
			activateLobbyOption(lobby, nav, quit)
		}
	}
}

// pressedEdges returns the actions that went down this tick on q.
func pressedEdges(q *input.ActionQueue) input.Mask {
	return q.Current() &^ q.Previous()
}

func navigateLobby(lobby *components.LobbyData, edges input.Mask) {
	if edges.Has(input.Up) {
		lobby.SelectedIndex = (lobby.SelectedIndex - 1 + numLobbyOptions) % numLobbyOptions
	}
	if edges.Has(input.Down) {
		lobby.SelectedIndex = (lobby.SelectedIndex + 1) % numLobbyOptions
	}
}

func activateLobbyOption(lobby *components.LobbyData, nav Navigator, quit func()) {
	switch components.LobbyOption(lobby.SelectedIndex) {
	case components.LobbyPlay:
		if lobby.JoinedCount() == 0 {
			lobby.Status = "Press Select to join first"
			return
		}
		nav.Request(cfg.StateGame)
	case components.LobbySettings:
		nav.Request(cfg.StateSettings)
	case components.LobbyAbout:
		nav.Request(cfg.StateAbout)
	case components.LobbyQuit:
		quit()
	}
}

// JoinLobby seats the device in the first free slot. It returns the slot
// index, or -1 if the lobby is full.
func JoinLobby(lobby *components.LobbyData, key DeviceKey) int {
	for i := range lobby.Slots {
		if lobby.Slots[i].Joined {
			continue
		}
		slot := components.PlayerSlot{Joined: true, ControlScheme: key.Scheme}
		if key.Scheme == cfg.SchemeGamepad {
			gpID := key.Gamepad
			slot.GamepadID = &gpID
		}
		lobby.Slots[i] = slot
		lobby.Status = ""
		logger.L().Info("player joined", "slot", i+1, "scheme", key.Scheme.String())
		return i
	}
	lobby.Status = "Lobby is full"
	return -1
}

// LeaveLobby frees a slot.
func LeaveLobby(lobby *components.LobbyData, slot int) {
	if slot < 0 || slot >= len(lobby.Slots) || !lobby.Slots[slot].Joined {
		return
	}
	logger.L().Info("player left", "slot", slot+1)
	lobby.Slots[slot] = components.PlayerSlot{}
}

// GetInputDeviceName returns a short label for a seat's device.
func GetInputDeviceName(slot components.PlayerSlot) string {
	switch slot.ControlScheme {
	case cfg.SchemeArrows:
		return "Arrows"
	case cfg.SchemeWASD:
		return "WASD"
	case cfg.SchemeGamepad:
		if slot.GamepadID != nil {
			return fmt.Sprintf("Gamepad %d", int(*slot.GamepadID)+1)
		}
		return "Gamepad"
	}
	return "?"
}

// NewDrawLobby renders seats, menu and a hint line.
func NewDrawLobby(hub *Hub, lobby *components.LobbyData) ecs.RendererWithArg[ebiten.Image] {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		width := float64(screen.Bounds().Dx())
		height := float64(screen.Bounds().Dy())

		vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Lobby.BackgroundColor, false)

		drawCentered(screen, "LOBBY", fonts.Title, width, int(cfg.Lobby.TitleY), cfg.Lobby.TitleColor)

		slotFont := fonts.Regular.Get()
		for i, slot := range lobby.Slots {
			y := int(cfg.Lobby.SlotsY) + i*18
			label := fmt.Sprintf("P%d  -", i+1)
			clr := cfg.Grey
			if slot.Joined {
				label = fmt.Sprintf("P%d  %s", i+1, GetInputDeviceName(slot))
				clr = cfg.PlayerColors[i%len(cfg.PlayerColors)]
			}
			text.Draw(screen, label, slotFont, int(width/2)-60, y, clr)
		}

		for i, option := range cfg.Lobby.MenuOptions {
			y := cfg.Lobby.MenuStartY + float64(i)*(cfg.Lobby.MenuItemHeight+cfg.Lobby.MenuItemGap)
			textColor := cfg.Lobby.TextColorNormal
			if i == lobby.SelectedIndex {
				textColor = cfg.Lobby.TextColorSelected
			}
			drawCentered(screen, option, fonts.Bold, width, int(y), textColor)
		}

		if lobby.Status != "" {
			drawCentered(screen, lobby.Status, fonts.Small, width, int(height)-28, cfg.LightRed)
		}
		drawCentered(screen, getMenuHint(hub.LastInputMethod), fonts.Small, width, int(height)-12, cfg.Lobby.TextColorNormal)
	}
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Join/Select   Circle: Leave"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Join/Select   B: Leave"
	}
	return "Enter/Space: Join/Select   Backspace/Esc: Leave"
}
