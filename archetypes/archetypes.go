package archetypes

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Velocity,
		components.Speed,
		components.Gravity,
		components.Grounded,
		components.JumpConfig,
		components.BoxCollider,
		components.Health,
		components.State,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Transform,
		components.BoxCollider,
	)
	FloatingPlatform = newArchetype(
		tags.Platform,
		tags.FloatingPlatform,
		components.Transform,
		components.BoxCollider,
		components.Tween,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Transform,
		components.BoxCollider,
		components.AutoMove,
		components.DamageOnContact,
	)
	Camera = newArchetype(
		tags.MainCamera,
		components.Transform,
		components.CameraFollow,
	)
	Session = newArchetype(
		tags.Session,
		components.Clock,
		components.Input,
		components.Score,
		components.SpawnTimer,
		components.GameTimer,
		components.Spawner,
	)
	Level = newArchetype(
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extras.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
