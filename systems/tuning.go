package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// ApplyTuning copies reloaded config values into live entities. Call it
// between ticks after Tuning.Apply. Health, positions and colliders are left
// alone; obstacles already in flight keep their rolled values.
func ApplyTuning(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		components.Speed.Get(entry).Value = cfg.Player.Speed
		components.Gravity.Get(entry).Value = cfg.PlayerGravity()

		jump := components.JumpConfig.Get(entry)
		jump.JumpVelocity = cfg.Player.JumpVelocity
		jump.JumpCutMultiplier = cfg.Player.JumpCutMultiplier
	})

	if session, ok := sessionEntry(e); ok {
		components.SpawnTimer.Get(session).Duration = cfg.Obstacles.SpawnInterval
	}

	tags.MainCamera.Each(e.World, func(entry *donburi.Entry) {
		follow := components.CameraFollow.Get(entry)
		if !follow.HasTarget {
			return
		}
		follow.Offset = math.Vec2{X: cfg.Camera.OffsetX, Y: cfg.Camera.OffsetY}
		follow.SetSmoothing(cfg.Camera.Smoothing)
	})
}
