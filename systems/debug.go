package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/input"
	"github.com/automoto/tilestep/level"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines collision bodies and prints each player's masks.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowMasks {
		return
	}

	if lvlEntry, ok := components.Level.First(e.World); ok {
		lvl := components.Level.Get(lvlEntry).Level
		for _, obj := range lvl.Space.Objects() {
			c := color.RGBA{0, 255, 255, 255}
			if obj.HasTags(level.TagSolid) {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags(level.TagPlayer) {
				c = color.RGBA{0, 0, 255, 255}
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	y := 4
	components.ActionQueue.Each(e.World, func(entry *donburi.Entry) {
		q := components.ActionQueue.Get(entry)
		slot := 0
		if entry.HasComponent(components.PlayerInput) {
			slot = components.PlayerInput.Get(entry).Slot
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("P%d %s", slot+1, FormatMasks(q)), 4, y)
		y += 14
	})
}

// DrawHubDebug prints the merged menu queue, for scenes without players.
func DrawHubDebug(hub *Hub, screen *ebiten.Image) {
	if !cfg.Debug.ShowMasks {
		return
	}
	ebitenutil.DebugPrintAt(screen, "menu "+FormatMasks(&hub.Menu), 4, 4)
}

// FormatMasks renders a queue as "cur=00010001 prev=00000001 [Left Select]".
func FormatMasks(q *input.ActionQueue) string {
	return fmt.Sprintf("cur=%0*b prev=%0*b %v", input.MaskBits, q.Current(), input.MaskBits, q.Previous(), q.Current().Actions())
}
