package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObstacleCollisions applies contact damage from every overlapping
// obstacle to the actor, awards points and removes the obstacle.
func UpdateObstacleCollisions(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	actor := components.BoxCollider.Get(player).Bounds(components.Transform.Get(player).Position)

	var hits []*donburi.Entry
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		box := components.BoxCollider.Get(entry).Bounds(components.Transform.Get(entry).Position)
		if actor.Overlaps(box) {
			hits = append(hits, entry)
		}
	})
	if len(hits) == 0 {
		return
	}

	health := components.Health.Get(player)
	session, hasSession := sessionEntry(e)
	for _, hit := range hits {
		if hit.HasComponent(components.DamageOnContact) {
			health.TakeDamage(components.DamageOnContact.Get(hit).Damage)
		}
		if hasSession {
			components.Score.Get(session).Add(cfg.Scoring.ObstacleContactPoints)
		}
		e.World.Remove(hit.Entity())
	}
}
