package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/solarlune/resolv"
)

// Resolv tags for occupancy checks
const (
	TagSolid  = "solid"
	TagPlayer = "player"
)

// Cell is a tile coordinate.
type Cell struct {
	Col, Row int
}

// Add returns c offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// Spawn is a player start cell read from the map.
type Spawn struct {
	Cell
	Slot int
}

// Level is a loaded grid map: which cells are solid, where players start,
// and a resolv space for occupancy checks between bodies.
type Level struct {
	Name     string
	Cols     int
	Rows     int
	TileSize int
	Spawns   []Spawn
	Space    *resolv.Space

	solid []bool
}

// Load parses a TMX map from fsys. Non-empty tiles on solidLayer block
// movement; objects in spawnGroup become spawns, keyed by their "slot"
// int property.
func Load(fsys fs.FS, tmxPath, solidLayer, spawnGroup string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if m.TileWidth != m.TileHeight || m.TileWidth <= 0 {
		return nil, fmt.Errorf("load TMX %s: tiles must be square, got %dx%d", tmxPath, m.TileWidth, m.TileHeight)
	}

	ts := m.TileWidth
	lvl := &Level{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath)),
		Cols:     m.Width,
		Rows:     m.Height,
		TileSize: ts,
		Space:    resolv.NewSpace(m.Width*ts, m.Height*ts, ts, ts),
		solid:    make([]bool, m.Width*m.Height),
	}

	found := false
	for _, layer := range m.Layers {
		if layer.Name != solidLayer {
			continue
		}
		found = true
		for i, tile := range layer.Tiles {
			if i >= len(lvl.solid) || tile.IsNil() {
				continue
			}
			lvl.solid[i] = true
			c := Cell{Col: i % m.Width, Row: i / m.Width}
			x, y := lvl.Origin(c)
			lvl.Space.Add(resolv.NewObject(x, y, float64(ts), float64(ts), TagSolid))
		}
		break
	}
	if !found {
		return nil, fmt.Errorf("load TMX %s: no tile layer %q", tmxPath, solidLayer)
	}

	for _, og := range m.ObjectGroups {
		if og.Name != spawnGroup {
			continue
		}
		for _, o := range og.Objects {
			lvl.Spawns = append(lvl.Spawns, Spawn{
				Cell: Cell{Col: int(o.X) / ts, Row: int(o.Y) / ts},
				Slot: o.Properties.GetInt("slot"),
			})
		}
	}
	sort.Slice(lvl.Spawns, func(i, j int) bool {
		return lvl.Spawns[i].Slot < lvl.Spawns[j].Slot
	})

	return lvl, nil
}

// InBounds reports whether c lies on the map.
func (l *Level) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Row >= 0 && c.Col < l.Cols && c.Row < l.Rows
}

// Solid reports whether c is a wall. Cells off the map count as solid.
func (l *Level) Solid(c Cell) bool {
	if !l.InBounds(c) {
		return true
	}
	return l.solid[c.Row*l.Cols+c.Col]
}

// Origin returns the world position of c's top-left corner.
func (l *Level) Origin(c Cell) (x, y float64) {
	return float64(c.Col * l.TileSize), float64(c.Row * l.TileSize)
}

// SpawnFor returns the start cell for slot, falling back to the first
// free cell scanning row by row when the map defines none.
func (l *Level) SpawnFor(slot int) Cell {
	for _, s := range l.Spawns {
		if s.Slot == slot {
			return s.Cell
		}
	}
	skip := slot
	for i, solid := range l.solid {
		if solid {
			continue
		}
		if skip == 0 {
			return Cell{Col: i % l.Cols, Row: i / l.Cols}
		}
		skip--
	}
	return Cell{}
}

// NewBody places a player body in c. The body is inset by one pixel so it
// only ever occupies the single cell it stands in.
func (l *Level) NewBody(c Cell) *resolv.Object {
	x, y := l.Origin(c)
	ts := float64(l.TileSize)
	obj := resolv.NewObject(x+1, y+1, ts-2, ts-2, TagPlayer)
	l.Space.Add(obj)
	return obj
}

// RemoveBody takes a body out of the space.
func (l *Level) RemoveBody(body *resolv.Object) {
	l.Space.Remove(body)
}

// Step moves body one cell by (dc, dr) unless the target is off the map,
// a wall or occupied by another body. It returns the body's cell after
// the attempt and whether it moved.
func (l *Level) Step(body *resolv.Object, from Cell, dc, dr int) (Cell, bool) {
	to := from.Add(dc, dr)
	if !l.InBounds(to) {
		return from, false
	}
	dx := float64(dc * l.TileSize)
	dy := float64(dr * l.TileSize)
	if check := body.Check(dx, dy, TagSolid, TagPlayer); check != nil {
		return from, false
	}
	body.X += dx
	body.Y += dy
	body.Update()
	return to, true
}
