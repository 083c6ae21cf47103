package assets

import (
	"embed"
	"io/fs"
)

//go:embed all:levels
var levelFS embed.FS

// LevelFS exposes the embedded level files rooted at the assets directory,
// so paths look like "levels/default.tmx".
func LevelFS() fs.FS {
	return levelFS
}
