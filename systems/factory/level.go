package factory

import (
	"io/fs"

	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/leveldata"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
)

// CreateLevel loads the TMX layout at path and spawns its platforms. It
// returns the level entry and the actor spawn point.
func CreateLevel(w donburi.World, fsys fs.FS, path string) (*donburi.Entry, leveldata.SpawnPoint, error) {
	layout, err := leveldata.LoadLayout(fsys, path)
	if err != nil {
		return nil, leveldata.SpawnPoint{}, err
	}
	return CreateLevelFromLayout(w, layout), spawnOf(layout), nil
}

// CreateLevelFromLayout spawns every platform in layout.
func CreateLevelFromLayout(w donburi.World, layout *leveldata.LayoutData) *donburi.Entry {
	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Name:   layout.Name,
		Width:  layout.MapWidth,
		Height: layout.MapHeight,
	})

	for _, p := range layout.Platforms {
		if p.Floating {
			CreateFloatingPlatform(w, p.X, p.Y, p.W, p.H, p.Travel)
			continue
		}
		platform := CreatePlatform(w, p.X, p.Y, p.W, p.H)
		if p.Ground {
			platform.AddComponent(tags.Ground)
		}
	}
	return level
}

func spawnOf(layout *leveldata.LayoutData) leveldata.SpawnPoint {
	if layout.Spawn == nil {
		return leveldata.SpawnPoint{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY}
	}
	return *layout.Spawn
}
