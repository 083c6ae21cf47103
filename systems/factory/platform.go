package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlatform spawns a static one-way platform centered at (x, y).
func CreatePlatform(w donburi.World, x, y, width, height float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(w)
	components.Transform.SetValue(platform, components.TransformData{
		Position: math.Vec2{X: x, Y: y},
	})
	components.BoxCollider.SetValue(platform, components.NewBoxCollider(width, height))
	return platform
}

// CreateFloatingPlatform spawns a platform that rises by travel units and
// returns, forever. Each leg takes cfg.Level.FloatingPeriod seconds.
func CreateFloatingPlatform(w donburi.World, x, y, width, height, travel float64) *donburi.Entry {
	platform := archetypes.FloatingPlatform.Spawn(w)
	components.Transform.SetValue(platform, components.TransformData{
		Position: math.Vec2{X: x, Y: y},
	})
	components.BoxCollider.SetValue(platform, components.NewBoxCollider(width, height))

	if travel == 0 {
		travel = cfg.Level.FloatingTravel
	}

	// The floating platform moves using a *gween.Sequence sequence of tweens, moving it up and back.
	period := float32(cfg.Level.FloatingPeriod)
	seq := gween.NewSequence(
		gween.New(float32(y), float32(y+travel), period, ease.InOutSine),
		gween.New(float32(y+travel), float32(y), period, ease.InOutSine),
	)
	seq.SetLoop(-1)
	components.Tween.SetValue(platform, components.TweenData{Sequence: seq})

	return platform
}
