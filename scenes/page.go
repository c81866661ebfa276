package scenes

import (
	"image/color"

	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/input"
	"github.com/automoto/tilestep/systems"
	"github.com/automoto/tilestep/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// pageScene shows a PageUI and returns to the lobby on Select, Back or
// a click on its button.
type pageScene struct {
	hub  *systems.Hub
	nav  systems.Navigator
	page *ui.PageUI
}

func newPageScene(hub *systems.Hub, nav systems.Navigator, title string, lines []string, lineColor color.RGBA) (*pageScene, error) {
	ps := &pageScene{hub: hub, nav: nav}
	page, err := ui.NewPageUI(title, lines, lineColor, ps.back)
	if err != nil {
		return nil, err
	}
	ps.page = page
	return ps, nil
}

func (ps *pageScene) back() {
	ps.nav.Request(cfg.StateLobby)
}

// Lines returns the text shown on the page.
func (ps *pageScene) Lines() []string {
	return ps.page.Lines()
}

func (ps *pageScene) Update() error {
	ps.page.Update()
	if ps.hub.Menu.JustPressed(input.Select) || ps.hub.Menu.JustPressed(input.Back) {
		ps.back()
	}
	return nil
}

func (ps *pageScene) Draw(screen *ebiten.Image) {
	ps.page.UI.Draw(screen)
	systems.DrawHubDebug(ps.hub, screen)
}
