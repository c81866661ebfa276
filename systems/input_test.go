package systems

import (
	"testing"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestResolveActions(t *testing.T) {
	resetGlobals(t)

	t.Run("scheme reads only its own keys", func(t *testing.T) {
		dev := newFakeDevice()
		dev.press(ebiten.KeyArrowLeft, ebiten.KeyW)

		got := ResolveActions(dev, cfg.SchemeArrows, nil, nil)
		assert.Equal(t, []input.Action{input.Left}, got)

		got = ResolveActions(dev, cfg.SchemeWASD, nil, nil)
		assert.Equal(t, []input.Action{input.Up}, got)
	})

	t.Run("two keys for one action repeat it", func(t *testing.T) {
		require.NoError(t, cfg.Input.RebindKeys(cfg.SchemeArrows, input.Left, []string{"ArrowLeft", "Numpad4"}))
		dev := newFakeDevice()
		dev.press(ebiten.KeyArrowLeft, ebiten.KeyNumpad4)

		got := ResolveActions(dev, cfg.SchemeArrows, nil, nil)
		assert.Equal(t, []input.Action{input.Left, input.Left}, got)

		var q input.ActionQueue
		q.Update(got...)
		assert.Equal(t, input.Left.Bit(), q.Current())
	})

	t.Run("gamepad buttons and stick", func(t *testing.T) {
		dev := newFakeDevice()
		pad := dev.connect(0, "Xbox Wireless Controller")
		pad.buttons[ebiten.StandardGamepadButtonLeftLeft] = true
		pad.axes[ebiten.StandardGamepadAxisLeftStickHorizontal] = -0.9
		pad.axes[ebiten.StandardGamepadAxisLeftStickVertical] = 0.1

		got := ResolveActions(dev, cfg.SchemeGamepad, nil, nil)
		assert.ElementsMatch(t, []input.Action{input.Left, input.Left}, got)
	})

	t.Run("specific pad ignores others", func(t *testing.T) {
		dev := newFakeDevice()
		dev.connect(0, "pad")
		other := dev.connect(1, "pad")
		other.buttons[ebiten.StandardGamepadButtonRightBottom] = true

		id := ebiten.GamepadID(0)
		assert.Empty(t, ResolveActions(dev, cfg.SchemeGamepad, &id, nil))
		id = 1
		assert.Equal(t, []input.Action{input.Select}, ResolveActions(dev, cfg.SchemeGamepad, &id, nil))
	})

	t.Run("gamepad scheme ignores keyboard", func(t *testing.T) {
		dev := newFakeDevice()
		dev.press(ebiten.KeyArrowLeft, ebiten.KeyA)
		assert.Empty(t, ResolveActions(dev, cfg.SchemeGamepad, nil, nil))
	})

	t.Run("unknown scheme", func(t *testing.T) {
		dev := newFakeDevice()
		dev.press(ebiten.KeyArrowLeft)
		assert.Empty(t, ResolveActions(dev, cfg.SchemeCount, nil, nil))
	})
}

func TestControllerType(t *testing.T) {
	dev := newFakeDevice()
	dev.connect(3, "Sony DualSense")
	dev.connect(4, "Generic USB Pad")
	assert.Equal(t, components.InputPlayStation, getControllerType(dev, 3))
	assert.Equal(t, components.InputXbox, getControllerType(dev, 4))
}

func TestUpdatePlayerInput(t *testing.T) {
	resetGlobals(t)
	dev := newFakeDevice()
	e := ecs.NewECS(donburi.NewWorld())

	spawn := func(slot int, scheme cfg.ControlSchemeID) *donburi.Entry {
		entry := e.World.Entry(e.World.Create(components.PlayerInput, components.ActionQueue))
		components.PlayerInput.SetValue(entry, components.PlayerInputData{Slot: slot, ControlScheme: scheme})
		return entry
	}
	arrows := spawn(0, cfg.SchemeArrows)
	wasd := spawn(1, cfg.SchemeWASD)

	e.AddSystem(NewUpdatePlayerInput(dev))

	dev.press(ebiten.KeyArrowRight)
	e.Update()
	assert.True(t, components.ActionQueue.Get(arrows).JustPressed(input.Right))
	assert.Equal(t, input.Mask(0), components.ActionQueue.Get(wasd).Current())

	e.Update()
	qa := components.ActionQueue.Get(arrows)
	assert.True(t, qa.Held(input.Right))
	assert.False(t, qa.JustPressed(input.Right))

	dev.release(ebiten.KeyArrowRight)
	dev.press(ebiten.KeyD)
	e.Update()
	assert.True(t, components.ActionQueue.Get(arrows).JustReleased(input.Right))
	assert.True(t, components.ActionQueue.Get(wasd).JustPressed(input.Right))
}

func TestHub(t *testing.T) {
	resetGlobals(t)

	t.Run("sources and merged menu", func(t *testing.T) {
		dev := newFakeDevice()
		hub := NewHub(dev)

		dev.press(ebiten.KeyEnter, ebiten.KeySpace)
		hub.Update()

		arrows := hub.Source(DeviceKey{Scheme: cfg.SchemeArrows})
		wasd := hub.Source(DeviceKey{Scheme: cfg.SchemeWASD})
		require.NotNil(t, arrows)
		require.NotNil(t, wasd)
		assert.True(t, arrows.JustPressed(input.Select))
		assert.True(t, wasd.JustPressed(input.Select))
		assert.True(t, hub.Menu.JustPressed(input.Select))

		// One of two held inputs released: menu stays pressed.
		dev.release(ebiten.KeyEnter)
		hub.Update()
		assert.True(t, arrows.JustReleased(input.Select))
		assert.True(t, hub.Menu.Held(input.Select))
		assert.False(t, hub.Menu.JustReleased(input.Select))
	})

	t.Run("gamepads come and go", func(t *testing.T) {
		dev := newFakeDevice()
		hub := NewHub(dev)
		pad := dev.connect(2, "PS5 Controller")
		pad.buttons[ebiten.StandardGamepadButtonRightRight] = true

		hub.Update()
		key := DeviceKey{Scheme: cfg.SchemeGamepad, Gamepad: 2}
		require.NotNil(t, hub.Source(key))
		assert.True(t, hub.Source(key).JustPressed(input.Back))
		assert.Equal(t, components.InputPlayStation, hub.LastInputMethod)
		assert.Equal(t, []DeviceKey{
			{Scheme: cfg.SchemeArrows},
			{Scheme: cfg.SchemeWASD},
			key,
		}, hub.Sources())

		delete(dev.pads, 2)
		hub.Update()
		require.NotNil(t, hub.Source(key))
		assert.True(t, hub.Source(key).JustReleased(input.Back))
		assert.True(t, hub.Menu.JustReleased(input.Back))

		hub.Update()
		assert.Nil(t, hub.Source(key))
	})

	t.Run("reused gamepad id is detected again", func(t *testing.T) {
		dev := newFakeDevice()
		hub := NewHub(dev)
		pad := dev.connect(5, "DualSense Wireless Controller")
		pad.buttons[ebiten.StandardGamepadButtonRightBottom] = true
		hub.Update()
		require.Equal(t, components.InputPlayStation, hub.LastInputMethod)

		delete(dev.pads, 5)
		hub.Update()
		hub.Update()

		// Plugged straight back in, bypassing connect's cache reset.
		dev.pads[5] = &fakePad{
			name:    "Xbox Wireless Controller",
			buttons: map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonRightBottom: true},
			axes:    map[ebiten.StandardGamepadAxis]float64{},
		}
		hub.Update()
		assert.Equal(t, components.InputXbox, hub.LastInputMethod)
	})
}
