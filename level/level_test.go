package level_test

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/tilestep/assets"
	"github.com/automoto/tilestep/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 5x4 room with one pillar at (2,1) and a single spawn for slot 1.
const roomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="5" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="2">
 <tileset firstgid="1" name="blocks" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <tile id="0"/>
 </tileset>
 <layer id="1" name="solid" width="5" height="4">
  <data encoding="csv">
1,1,1,1,1,
1,0,1,0,1,
1,0,0,0,1,
1,1,1,1,1
</data>
 </layer>
 <objectgroup id="2" name="spawns">
  <object id="1" x="48" y="16" width="16" height="16">
   <properties>
    <property name="slot" type="int" value="1"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func loadRoom(t *testing.T) *level.Level {
	t.Helper()
	fsys := fstest.MapFS{"maps/room.tmx": {Data: []byte(roomTMX)}}
	lvl, err := level.Load(fsys, "maps/room.tmx", "solid", "spawns")
	require.NoError(t, err)
	return lvl
}

func TestLoad(t *testing.T) {
	lvl := loadRoom(t)

	assert.Equal(t, "room", lvl.Name)
	assert.Equal(t, 5, lvl.Cols)
	assert.Equal(t, 4, lvl.Rows)
	assert.Equal(t, 16, lvl.TileSize)

	assert.True(t, lvl.Solid(level.Cell{Col: 0, Row: 0}))
	assert.True(t, lvl.Solid(level.Cell{Col: 2, Row: 1}))
	assert.False(t, lvl.Solid(level.Cell{Col: 1, Row: 1}))
	assert.True(t, lvl.Solid(level.Cell{Col: -1, Row: 1}), "off-map is solid")

	require.Len(t, lvl.Spawns, 1)
	assert.Equal(t, level.Cell{Col: 3, Row: 1}, lvl.SpawnFor(1))
	// No spawn object for slot 0: first open cell.
	assert.Equal(t, level.Cell{Col: 1, Row: 1}, lvl.SpawnFor(0))
	assert.Equal(t, level.Cell{Col: 1, Row: 2}, lvl.SpawnFor(2))
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{"room.tmx": {Data: []byte(roomTMX)}}

	_, err := level.Load(fsys, "missing.tmx", "solid", "spawns")
	assert.Error(t, err)

	_, err = level.Load(fsys, "room.tmx", "walls", "spawns")
	assert.ErrorContains(t, err, `no tile layer "walls"`)
}

func TestStep(t *testing.T) {
	lvl := loadRoom(t)

	start := level.Cell{Col: 1, Row: 1}
	body := lvl.NewBody(start)

	// Wall to the left, pillar to the right.
	at, moved := lvl.Step(body, start, -1, 0)
	assert.False(t, moved)
	assert.Equal(t, start, at)
	_, moved = lvl.Step(body, start, 1, 0)
	assert.False(t, moved)

	at, moved = lvl.Step(body, start, 0, 1)
	require.True(t, moved)
	assert.Equal(t, level.Cell{Col: 1, Row: 2}, at)
	x, y := lvl.Origin(at)
	assert.Equal(t, x+1, body.X)
	assert.Equal(t, y+1, body.Y)

	at, moved = lvl.Step(body, at, 1, 0)
	require.True(t, moved)
	assert.Equal(t, level.Cell{Col: 2, Row: 2}, at)
}

func TestStepBlockedByOtherPlayer(t *testing.T) {
	lvl := loadRoom(t)

	a := lvl.NewBody(level.Cell{Col: 2, Row: 2})
	b := lvl.NewBody(level.Cell{Col: 3, Row: 2})

	_, moved := lvl.Step(a, level.Cell{Col: 2, Row: 2}, 1, 0)
	assert.False(t, moved)

	lvl.RemoveBody(b)
	_, moved = lvl.Step(a, level.Cell{Col: 2, Row: 2}, 1, 0)
	assert.True(t, moved)
}

func TestBundledArena(t *testing.T) {
	lvl, err := level.Load(assets.Levels(), "levels/arena.tmx", "solid", "spawns")
	require.NoError(t, err)

	assert.Len(t, lvl.Spawns, 4)
	for slot := 0; slot < 4; slot++ {
		assert.False(t, lvl.Solid(lvl.SpawnFor(slot)), "slot %d spawns in a wall", slot)
	}
}
