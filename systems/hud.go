package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudRowWidth  = 150
	hudRowHeight = 14
	hudMargin    = 6
	hudSwatch    = 8
)

// DrawHUD lists each player's move and bump counts in the top-right corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	x := float32(screen.Bounds().Dx() - hudRowWidth - hudMargin)
	row := 0

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		pi := components.PlayerInput.Get(entry)
		y := float32(hudMargin + row*hudRowHeight)

		vector.FillRect(screen, x, y, hudRowWidth, hudRowHeight, color.RGBA{0, 0, 0, 160}, false)
		vector.FillRect(screen, x+3, y+3, hudSwatch, hudSwatch, cfg.PlayerColors[pi.Slot%len(cfg.PlayerColors)], false)
		line := fmt.Sprintf("P%d  moves %d  bumps %d", pi.Slot+1, player.Moves, player.Bumps)
		text.Draw(screen, line, face, int(x)+hudSwatch+8, int(y)+hudRowHeight-3, cfg.White)
		row++
	})
}
