package systems

import (
	"sort"
	"strings"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = intmap.New[ebiten.GamepadID, components.InputMethod](4)

// ResolveActions appends to buf every action whose binding under scheme is
// active on dev. The result is unordered and may repeat an action when
// several of its inputs are held; ActionQueue.Update collapses repeats.
//
// For SchemeGamepad a nil gamepad reads every connected pad.
func ResolveActions(dev Device, scheme cfg.ControlSchemeID, gamepad *ebiten.GamepadID, buf []input.Action) []input.Action {
	buf, _ = resolve(dev, scheme, gamepad, buf)
	return buf
}

// resolve is ResolveActions that also reports which kind of device
// produced the last action, for UI prompts.
func resolve(dev Device, scheme cfg.ControlSchemeID, gamepad *ebiten.GamepadID, buf []input.Action) ([]input.Action, components.InputMethod) {
	method := components.InputKeyboard
	if scheme < 0 || scheme >= cfg.SchemeCount {
		return buf, method
	}
	bindings := cfg.Input.Schemes[scheme]

	for action, binding := range bindings {
		for _, key := range binding.Keys {
			if dev.IsKeyPressed(key) {
				buf = append(buf, action)
			}
		}
	}

	if scheme != cfg.SchemeGamepad {
		return buf, method
	}

	var pads []ebiten.GamepadID
	if gamepad != nil {
		pads = []ebiten.GamepadID{*gamepad}
	} else {
		pads = dev.AppendGamepadIDs(nil)
	}

	for _, gpID := range pads {
		if !dev.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		before := len(buf)
		for action, binding := range bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if dev.IsStandardGamepadButtonPressed(gpID, btn) {
					buf = append(buf, action)
				}
			}
		}
		buf = appendAnalogActions(dev, gpID, buf)
		if len(buf) > before {
			method = getControllerType(dev, gpID)
		}
	}
	return buf, method
}

// appendAnalogActions maps the left stick onto the directional actions.
func appendAnalogActions(dev Device, gpID ebiten.GamepadID, buf []input.Action) []input.Action {
	deadzone := cfg.Input.AnalogDeadzone
	horizontal := dev.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	vertical := dev.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

	if horizontal < -deadzone {
		buf = append(buf, input.Left)
	}
	if horizontal > deadzone {
		buf = append(buf, input.Right)
	}
	if vertical < -deadzone {
		buf = append(buf, input.Up)
	}
	if vertical > deadzone {
		buf = append(buf, input.Down)
	}
	return buf
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(dev Device, gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache.Get(gpID); ok {
		return method
	}

	name := strings.ToLower(dev.GamepadName(gpID))
	method := components.InputXbox
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	}

	controllerTypeCache.Put(gpID, method)
	return method
}

// NewUpdatePlayerInput polls each player's bound device and feeds its
// ActionQueue. It must be the first system of the game scene so that
// every consumer sees this tick's state.
func NewUpdatePlayerInput(dev Device) ecs.System {
	var buf []input.Action
	return func(e *ecs.ECS) {
		components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
			pi := components.PlayerInput.Get(entry)
			var method components.InputMethod
			buf, method = resolve(dev, pi.ControlScheme, pi.GamepadID, buf[:0])
			if len(buf) > 0 {
				pi.InputMethod = method
			}
			components.ActionQueue.Get(entry).Update(buf...)
		})
	}
}

// DeviceKey identifies one input source: a keyboard half or one gamepad.
type DeviceKey struct {
	Scheme  cfg.ControlSchemeID
	Gamepad ebiten.GamepadID // only meaningful for SchemeGamepad
}

// KeyFor returns the source a lobby seat reads from.
func KeyFor(slot components.PlayerSlot) DeviceKey {
	k := DeviceKey{Scheme: slot.ControlScheme}
	if slot.ControlScheme == cfg.SchemeGamepad && slot.GamepadID != nil {
		k.Gamepad = *slot.GamepadID
	}
	return k
}

// Hub owns the input sources that outlive a single scene: one queue per
// device and a merged queue for menus. Update runs once per tick before
// the active scene, so edges stay correct across scene changes.
type Hub struct {
	dev     Device
	Menu    input.ActionQueue
	sources map[DeviceKey]*input.ActionQueue

	LastInputMethod components.InputMethod

	buf  []input.Action
	all  []input.Action
	pads []ebiten.GamepadID
	seen map[DeviceKey]bool
}

func NewHub(dev Device) *Hub {
	return &Hub{
		dev:     dev,
		sources: make(map[DeviceKey]*input.ActionQueue),
		seen:    make(map[DeviceKey]bool),
	}
}

// Update polls every source once.
func (h *Hub) Update() {
	clear(h.seen)
	h.all = h.all[:0]

	h.poll(DeviceKey{Scheme: cfg.SchemeArrows}, nil)
	h.poll(DeviceKey{Scheme: cfg.SchemeWASD}, nil)

	h.pads = h.dev.AppendGamepadIDs(h.pads[:0])
	for _, id := range h.pads {
		if !h.dev.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		gpID := id
		h.poll(DeviceKey{Scheme: cfg.SchemeGamepad, Gamepad: gpID}, &gpID)
	}

	// Disconnected pads release everything, then drop out once idle.
	for k, q := range h.sources {
		if h.seen[k] {
			continue
		}
		if k.Scheme == cfg.SchemeGamepad {
			// A different pad may reuse the ID.
			controllerTypeCache.Del(k.Gamepad)
		}
		q.Update()
		if q.Current() == 0 && q.Previous() == 0 {
			delete(h.sources, k)
		}
	}

	h.Menu.Update(h.all...)
}

func (h *Hub) poll(k DeviceKey, gamepad *ebiten.GamepadID) {
	var method components.InputMethod
	h.buf, method = resolve(h.dev, k.Scheme, gamepad, h.buf[:0])
	if len(h.buf) > 0 {
		h.LastInputMethod = method
	}

	q, ok := h.sources[k]
	if !ok {
		q = &input.ActionQueue{}
		h.sources[k] = q
	}
	q.Update(h.buf...)
	h.seen[k] = true
	h.all = append(h.all, h.buf...)
}

// Source returns the queue for k, or nil if the device is unknown.
func (h *Hub) Source(k DeviceKey) *input.ActionQueue {
	return h.sources[k]
}

// Sources lists known devices, keyboards first.
func (h *Hub) Sources() []DeviceKey {
	keys := make([]DeviceKey, 0, len(h.sources))
	for k := range h.sources {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Scheme != keys[j].Scheme {
			return keys[i].Scheme < keys[j].Scheme
		}
		return keys[i].Gamepad < keys[j].Gamepad
	})
	return keys
}
