package systems

import (
	"testing"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type lobbyHarness struct {
	dev   *fakeDevice
	hub   *Hub
	lobby *components.LobbyData
	nav   *fakeNav
	quit  bool
	ecs   *ecs.ECS
}

func newLobbyHarness(t *testing.T) *lobbyHarness {
	resetGlobals(t)
	h := &lobbyHarness{
		dev:   newFakeDevice(),
		lobby: &components.LobbyData{},
		nav:   &fakeNav{},
		ecs:   ecs.NewECS(donburi.NewWorld()),
	}
	h.hub = NewHub(h.dev)
	h.ecs.AddSystem(NewUpdateLobby(h.hub, h.lobby, h.nav, func() { h.quit = true }))
	return h
}

// tap presses keys for one tick and releases them on the next.
func (h *lobbyHarness) tap(keys ...ebiten.Key) {
	h.dev.press(keys...)
	h.tick()
	h.dev.release(keys...)
	h.tick()
}

func (h *lobbyHarness) tick() {
	h.hub.Update()
	h.ecs.Update()
}

func TestLobbyJoinAndLeave(t *testing.T) {
	h := newLobbyHarness(t)

	h.tap(ebiten.KeyEnter)
	require.True(t, h.lobby.Slots[0].Joined)
	assert.Equal(t, cfg.SchemeArrows, h.lobby.Slots[0].ControlScheme)
	assert.Empty(t, h.nav.requests, "joining must not also activate the menu")

	h.tap(ebiten.KeySpace)
	require.True(t, h.lobby.Slots[1].Joined)
	assert.Equal(t, cfg.SchemeWASD, h.lobby.Slots[1].ControlScheme)
	assert.Equal(t, 2, h.lobby.JoinedCount())

	h.tap(ebiten.KeyBackspace)
	assert.False(t, h.lobby.Slots[0].Joined)
	assert.True(t, h.lobby.Slots[1].Joined)

	// A seat freed in the middle is reused first.
	h.tap(ebiten.KeyEnter)
	assert.True(t, h.lobby.Slots[0].Joined)
	assert.Equal(t, cfg.SchemeArrows, h.lobby.Slots[0].ControlScheme)
}

func TestLobbyHeldSelectJoinsOnce(t *testing.T) {
	h := newLobbyHarness(t)

	h.dev.press(ebiten.KeyEnter)
	for i := 0; i < 10; i++ {
		h.tick()
	}
	assert.Equal(t, 1, h.lobby.JoinedCount())
	assert.Empty(t, h.nav.requests)
}

func TestLobbyGamepadJoin(t *testing.T) {
	h := newLobbyHarness(t)
	pad := h.dev.connect(5, "pad")

	pad.buttons[ebiten.StandardGamepadButtonRightBottom] = true
	h.tick()
	require.True(t, h.lobby.Slots[0].Joined)
	require.NotNil(t, h.lobby.Slots[0].GamepadID)
	assert.Equal(t, ebiten.GamepadID(5), *h.lobby.Slots[0].GamepadID)
	assert.Equal(t, DeviceKey{Scheme: cfg.SchemeGamepad, Gamepad: 5}, KeyFor(h.lobby.Slots[0]))
	assert.Equal(t, "Gamepad 6", GetInputDeviceName(h.lobby.Slots[0]))
}

func TestLobbyMenu(t *testing.T) {
	t.Run("anyone moves the cursor while the lobby is empty", func(t *testing.T) {
		h := newLobbyHarness(t)
		h.tap(ebiten.KeyS)
		assert.Equal(t, int(components.LobbySettings), h.lobby.SelectedIndex)
		h.tap(ebiten.KeyArrowUp)
		h.tap(ebiten.KeyArrowUp)
		assert.Equal(t, int(components.LobbyQuit), h.lobby.SelectedIndex)
	})

	t.Run("play needs a seated player", func(t *testing.T) {
		h := newLobbyHarness(t)
		h.tap(ebiten.KeyEnter) // joins
		h.tap(ebiten.KeyEnter) // activates Play
		last, ok := h.nav.last()
		require.True(t, ok)
		assert.Equal(t, cfg.StateGame, last)
	})

	t.Run("play with nobody seated", func(t *testing.T) {
		lobby := &components.LobbyData{}
		nav := &fakeNav{}
		activateLobbyOption(lobby, nav, func() {})
		assert.Empty(t, nav.requests)
		assert.NotEmpty(t, lobby.Status)
	})

	t.Run("settings about and quit", func(t *testing.T) {
		h := newLobbyHarness(t)
		h.tap(ebiten.KeyEnter)

		h.tap(ebiten.KeyArrowDown)
		h.tap(ebiten.KeyEnter)
		h.tap(ebiten.KeyArrowDown)
		h.tap(ebiten.KeyEnter)
		assert.Equal(t, []cfg.GameState{cfg.StateSettings, cfg.StateAbout}, h.nav.requests)

		h.tap(ebiten.KeyArrowDown)
		h.tap(ebiten.KeyEnter)
		assert.True(t, h.quit)
	})

	t.Run("seated players only drive with their own device", func(t *testing.T) {
		h := newLobbyHarness(t)
		h.tap(ebiten.KeyEnter)
		h.tap(ebiten.KeyS) // WASD is not seated
		assert.Equal(t, int(components.LobbyPlay), h.lobby.SelectedIndex)
	})

	t.Run("simultaneous presses move the shared cursor once", func(t *testing.T) {
		h := newLobbyHarness(t)
		h.tap(ebiten.KeyEnter)
		h.tap(ebiten.KeySpace)
		require.Equal(t, 2, h.lobby.JoinedCount())

		h.tap(ebiten.KeyArrowDown, ebiten.KeyS)
		assert.Equal(t, int(components.LobbySettings), h.lobby.SelectedIndex)
		h.tap(ebiten.KeyEnter, ebiten.KeySpace)
		assert.Equal(t, []cfg.GameState{cfg.StateSettings}, h.nav.requests)
	})
}

func TestLobbyFull(t *testing.T) {
	lobby := &components.LobbyData{}
	for i := 0; i < components.MaxPlayers; i++ {
		assert.Equal(t, i, JoinLobby(lobby, DeviceKey{Scheme: cfg.SchemeGamepad, Gamepad: ebiten.GamepadID(i)}))
	}
	assert.Equal(t, -1, JoinLobby(lobby, DeviceKey{Scheme: cfg.SchemeArrows}))
	assert.Equal(t, "Lobby is full", lobby.Status)

	LeaveLobby(lobby, 9)
	LeaveLobby(lobby, 2)
	assert.Equal(t, 3, lobby.JoinedCount())
}
