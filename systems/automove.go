package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var autoMoveQuery = donburi.NewQuery(filter.Contains(
	components.AutoMove,
	components.Transform,
))

// UpdateAutoMovement drifts AutoMove entities. Velocity and gravity are not
// involved and drifting entities do not avoid each other.
func UpdateAutoMovement(e *ecs.ECS) {
	dt := deltaSeconds(e)
	autoMoveQuery.Each(e.World, func(entry *donburi.Entry) {
		move := components.AutoMove.Get(entry)
		pos := &components.Transform.Get(entry).Position
		pos.X += move.Direction.X * move.Speed * dt
		pos.Y += move.Direction.Y * move.Speed * dt
	})
}

// UpdateFloatingPlatforms advances each floating platform along its tween.
// An actor that stood on a platform last tick and has not jumped rides with
// it, so a descending platform does not drop out from under it.
func UpdateFloatingPlatforms(e *ecs.ECS) {
	dt := float32(deltaSeconds(e))
	if dt == 0 {
		return
	}
	player, hasPlayer := tags.Player.First(e.World)

	tags.FloatingPlatform.Each(e.World, func(entry *donburi.Entry) {
		tw := components.Tween.Get(entry)
		if tw.Sequence == nil {
			return
		}
		y, _, _ := tw.Sequence.Update(dt)
		pos := &components.Transform.Get(entry).Position
		pos.Y = float64(y)

		if hasPlayer && ridesOn(player, entry) {
			platform := components.BoxCollider.Get(entry).Bounds(*pos)
			box := components.BoxCollider.Get(player)
			components.Transform.Get(player).Position.Y = platform.Top + box.HalfHeight()
		}
	})
}

// ridesOn reports whether actor rested on platform last tick, is not moving
// up, and still overlaps it horizontally.
func ridesOn(actor, platform *donburi.Entry) bool {
	grounded := components.Grounded.Get(actor)
	if !grounded.Was || grounded.Platform != platform.Entity() {
		return false
	}
	if components.Velocity.Get(actor).Y > 0 {
		return false
	}
	actorBox := components.BoxCollider.Get(actor).Bounds(components.Transform.Get(actor).Position)
	platformBox := components.BoxCollider.Get(platform).Bounds(components.Transform.Get(platform).Position)
	return actorBox.OverlapsX(platformBox)
}
