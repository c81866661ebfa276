package systems

import (
	"fmt"

	"github.com/automoto/tilestep/archetypes"
	"github.com/automoto/tilestep/components"
	cfg "github.com/automoto/tilestep/config"
	"github.com/automoto/tilestep/fonts"
	"github.com/automoto/tilestep/input"
	"github.com/automoto/tilestep/level"
	"github.com/automoto/tilestep/logger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// stepOrder is the priority when several directions go down on the same
// tick; only one step is taken per tick.
var stepOrder = []struct {
	action input.Action
	dc, dr int
}{
	{input.Up, 0, -1},
	{input.Down, 0, 1},
	{input.Left, -1, 0},
	{input.Right, 1, 0},
}

// SpawnPlayers creates one player entity per seated lobby slot.
func SpawnPlayers(e *ecs.ECS, lvl *level.Level, slots [components.MaxPlayers]components.PlayerSlot) []*donburi.Entry {
	var players []*donburi.Entry
	for i, slot := range slots {
		if !slot.Joined {
			continue
		}
		cell := lvl.SpawnFor(i)
		entry := archetypes.Player.Spawn(e)
		components.PlayerInput.SetValue(entry, components.PlayerInputData{
			Slot:          i,
			ControlScheme: slot.ControlScheme,
			GamepadID:     slot.GamepadID,
		})
		components.ActionQueue.SetValue(entry, input.NewActionQueue())
		components.Player.SetValue(entry, components.PlayerData{
			Cell: cell,
			Body: lvl.NewBody(cell),
		})
		players = append(players, entry)
		logger.L().Debug("player spawned", "slot", i+1, "col", cell.Col, "row", cell.Row)
	}
	return players
}

// UpdatePlayers moves each player one cell per newly pressed direction.
// Holding a direction does not repeat the step.
func UpdatePlayers(e *ecs.ECS) {
	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(lvlEntry).Level

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		q := components.ActionQueue.Get(entry)
		player := components.Player.Get(entry)

		for _, s := range stepOrder {
			if !q.JustPressed(s.action) {
				continue
			}
			cell, moved := lvl.Step(player.Body, player.Cell, s.dc, s.dr)
			if moved {
				player.Cell = cell
				player.Moves++
			} else {
				player.Bumps++
			}
			break
		}
	})
}

// NewUpdateGameExit returns to the lobby when any player lets go of Back.
// Acting on the release keeps the lobby from reading the same press as a
// request to leave.
func NewUpdateGameExit(nav Navigator) ecs.System {
	return func(e *ecs.ECS) {
		exit := false
		components.ActionQueue.Each(e.World, func(entry *donburi.Entry) {
			if components.ActionQueue.Get(entry).JustReleased(input.Back) {
				exit = true
			}
		})
		if exit {
			nav.Request(cfg.StateLobby)
		}
	}
}

// DrawLevel renders the solid cells.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Grid.BackgroundColor)

	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(lvlEntry).Level
	ts := float32(lvl.TileSize)
	for row := 0; row < lvl.Rows; row++ {
		for col := 0; col < lvl.Cols; col++ {
			c := level.Cell{Col: col, Row: row}
			if !lvl.Solid(c) {
				continue
			}
			x, y := lvl.Origin(c)
			vector.FillRect(screen, float32(x), float32(y), ts, ts, cfg.Grid.SolidColor, false)
		}
	}
}

// DrawPlayers renders each player as a tinted square with its number.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(lvlEntry).Level
	ts := float32(lvl.TileSize)
	face := fonts.Small.Get()

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		pi := components.PlayerInput.Get(entry)
		clr := cfg.PlayerColors[pi.Slot%len(cfg.PlayerColors)]

		x, y := lvl.Origin(player.Cell)
		vector.FillRect(screen, float32(x)+4, float32(y)+4, ts-8, ts-8, clr, false)
		text.Draw(screen, fmt.Sprintf("%d", pi.Slot+1), face, int(x)+int(ts)/2-3, int(y)+int(ts)/2+4, cfg.Navy)
	})
}

// DespawnPlayers removes every player body and entity, logging each
// player's counters.
func DespawnPlayers(e *ecs.ECS) {
	lvlEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(lvlEntry).Level

	var entries []*donburi.Entry
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	for _, entry := range entries {
		player := components.Player.Get(entry)
		pi := components.PlayerInput.Get(entry)
		logger.L().Info("player left the grid", "slot", pi.Slot+1, "moves", player.Moves, "bumps", player.Bumps)
		lvl.RemoveBody(player.Body)
		e.World.Remove(entry.Entity())
	}
}
