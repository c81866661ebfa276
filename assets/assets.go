package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var levelFS embed.FS

// Levels is the filesystem holding the bundled TMX maps, rooted so that
// paths look like "levels/arena.tmx".
func Levels() fs.FS {
	return levelFS
}
