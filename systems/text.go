package systems

import (
	"image/color"

	"github.com/automoto/tilestep/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"golang.org/x/image/font"
)

// drawCentered draws s horizontally centred on a screen of the given width
// with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, name fonts.FontName, width float64, y int, clr color.Color) {
	face := name.Get()
	w := font.MeasureString(face, s).Round()
	text.Draw(screen, s, face, int(width)/2-w/2, y, clr)
}
