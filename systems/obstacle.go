package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawner spawns at most one obstacle per tick when the spawn timer fires.
func UpdateSpawner(e *ecs.ECS) {
	session, ok := sessionEntry(e)
	if !ok {
		return
	}
	timer := components.SpawnTimer.Get(session)
	if !timer.Tick(deltaSeconds(e)) {
		return
	}
	p := factory.RollObstacle(components.Spawner.GetValue(session))
	factory.CreateObstacle(e.World, p)
}

// UpdateDespawner removes obstacles that drifted past the left bound.
func UpdateDespawner(e *ecs.ECS) {
	var gone []donburi.Entity
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		if components.Transform.Get(entry).Position.X < cfg.Obstacles.DespawnX {
			gone = append(gone, entry.Entity())
		}
	})
	for _, entity := range gone {
		e.World.Remove(entity)
	}
}
