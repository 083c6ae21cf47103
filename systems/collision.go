package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatformCollisions resolves one-way landings for the actor. Only a
// descending or resting actor whose bottom lies within the landing band of
// a platform top lands; side and ceiling contacts are ignored.
func UpdatePlatformCollisions(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	pos := &components.Transform.Get(player).Position
	vel := components.Velocity.Get(player)
	box := components.BoxCollider.Get(player)
	grounded := components.Grounded.Get(player)

	grounded.Now = false
	if vel.Y > 0 {
		return
	}

	actor := box.Bounds(*pos)
	landed := false
	var top float64
	var ground donburi.Entity

	tags.Platform.Each(e.World, func(entry *donburi.Entry) {
		platformPos := components.Transform.Get(entry).Position
		platform := components.BoxCollider.Get(entry).Bounds(platformPos)
		if !landsOn(actor, platform, cfg.Physics.LandingThreshold) {
			return
		}
		// Highest top wins when several platforms qualify.
		if !landed || platform.Top > top {
			top = platform.Top
			ground = entry.Entity()
			landed = true
		}
	})

	if !landed {
		return
	}
	pos.Y = top + box.HalfHeight()
	vel.Y = 0
	grounded.Now = true
	grounded.Platform = ground
}

// landingSlack absorbs rounding when a snapped actor's bottom is recomputed
// from its center.
const landingSlack = 1e-9

// landsOn reports whether actor rests on platform: horizontal overlap, a
// bottom edge inside [top-threshold, top], and a top edge above the platform.
func landsOn(actor, platform components.AABB, threshold float64) bool {
	if !actor.OverlapsX(platform) {
		return false
	}
	if actor.Bottom > platform.Top+landingSlack || actor.Bottom < platform.Top-threshold {
		return false
	}
	return actor.Top > platform.Top
}
