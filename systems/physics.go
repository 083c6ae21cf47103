package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	gravityQuery = donburi.NewQuery(filter.Contains(
		components.Gravity,
		components.Velocity,
		components.Grounded,
	))
	velocityQuery = donburi.NewQuery(filter.Contains(
		components.Velocity,
		components.Transform,
	))
)

// UpdateGravity accelerates airborne entities downward. There is no terminal
// velocity: fall speed grows until something lands the entity.
func UpdateGravity(e *ecs.ECS) {
	dt := deltaSeconds(e)
	gravityQuery.Each(e.World, func(entry *donburi.Entry) {
		if components.Grounded.Get(entry).Was {
			return
		}
		vel := components.Velocity.Get(entry)
		vel.Y -= components.Gravity.Get(entry).Value * dt
	})
}

// UpdateVelocity integrates velocity into position for every moving entity.
func UpdateVelocity(e *ecs.ECS) {
	dt := deltaSeconds(e)
	velocityQuery.Each(e.World, func(entry *donburi.Entry) {
		vel := components.Velocity.Get(entry)
		pos := &components.Transform.Get(entry).Position
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
	})
}
