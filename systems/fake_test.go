package systems

import (
	"sort"
	"testing"

	cfg "github.com/automoto/tilestep/config"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakePad struct {
	name    string
	buttons map[ebiten.StandardGamepadButton]bool
	axes    map[ebiten.StandardGamepadAxis]float64
}

type fakeDevice struct {
	keys map[ebiten.Key]bool
	pads map[ebiten.GamepadID]*fakePad
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		keys: map[ebiten.Key]bool{},
		pads: map[ebiten.GamepadID]*fakePad{},
	}
}

func (d *fakeDevice) press(keys ...ebiten.Key) {
	for _, k := range keys {
		d.keys[k] = true
	}
}

func (d *fakeDevice) release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(d.keys, k)
	}
}

func (d *fakeDevice) connect(id ebiten.GamepadID, name string) *fakePad {
	p := &fakePad{
		name:    name,
		buttons: map[ebiten.StandardGamepadButton]bool{},
		axes:    map[ebiten.StandardGamepadAxis]float64{},
	}
	d.pads[id] = p
	controllerTypeCache.Del(id)
	return p
}

func (d *fakeDevice) IsKeyPressed(key ebiten.Key) bool { return d.keys[key] }

func (d *fakeDevice) AppendGamepadIDs(ids []ebiten.GamepadID) []ebiten.GamepadID {
	for id := range d.pads {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (d *fakeDevice) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	_, ok := d.pads[id]
	return ok
}

func (d *fakeDevice) IsStandardGamepadButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	p, ok := d.pads[id]
	return ok && p.buttons[b]
}

func (d *fakeDevice) StandardGamepadAxisValue(id ebiten.GamepadID, a ebiten.StandardGamepadAxis) float64 {
	if p, ok := d.pads[id]; ok {
		return p.axes[a]
	}
	return 0
}

func (d *fakeDevice) GamepadName(id ebiten.GamepadID) string {
	if p, ok := d.pads[id]; ok {
		return p.name
	}
	return ""
}

type fakeNav struct {
	requests []cfg.GameState
	errs     []error
}

func (n *fakeNav) Request(next cfg.GameState) { n.requests = append(n.requests, next) }
func (n *fakeNav) Fail(err error)              { n.errs = append(n.errs, err) }

func (n *fakeNav) last() (cfg.GameState, bool) {
	if len(n.requests) == 0 {
		return 0, false
	}
	return n.requests[len(n.requests)-1], true
}

// resetGlobals restores the package-level config and settings store that
// tests mutate.
func resetGlobals(t *testing.T) {
	t.Helper()
	input, debug, st := cfg.Input, cfg.Debug, store
	cfg.Input = cfg.DefaultInput()
	t.Cleanup(func() {
		cfg.Input, cfg.Debug, store = input, debug, st
	})
}
