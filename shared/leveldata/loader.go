package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer names read from the TMX object groups.
const (
	PlatformLayer    = "Platforms"
	FloatingLayer    = "FloatingPlatforms"
	PlayerSpawnLayer = "PlayerSpawn"
)

// LoadLayout parses a TMX file and returns its platform layout. It takes an
// fs.FS so callers can pass embed.FS (client) or os.DirFS (headless runner).
func LoadLayout(fsys fs.FS, tmxPath string) (*LayoutData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LayoutData{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  float64(levelMap.Width * levelMap.TileWidth),
		MapHeight: float64(levelMap.Height * levelMap.TileHeight),
	}
	halfW := data.MapWidth / 2
	halfH := data.MapHeight / 2

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case PlatformLayer, FloatingLayer:
			floating := og.Name == FloatingLayer
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					return nil, fmt.Errorf("level %s: platform %d has non-positive size", data.Name, o.ID)
				}
				rect := PlatformRect{
					X:        o.X + o.Width/2 - halfW,
					Y:        halfH - (o.Y + o.Height/2),
					W:        o.Width,
					H:        o.Height,
					Ground:   o.Name == "ground",
					Floating: floating,
				}
				if floating {
					rect.Travel = float64(o.Properties.GetInt("travel"))
				}
				data.Platforms = append(data.Platforms, rect)
			}
		case PlayerSpawnLayer:
			// First spawn point wins; the actor is unique.
			if len(og.Objects) > 0 && data.Spawn == nil {
				o := og.Objects[0]
				data.Spawn = &SpawnPoint{X: o.X - halfW, Y: halfH - o.Y}
			}
		}
	}

	if len(data.Platforms) == 0 {
		return nil, fmt.Errorf("level %s: no platforms in %q layer", data.Name, PlatformLayer)
	}
	return data, nil
}
