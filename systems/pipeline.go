package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewSimulation registers the tick stages on a fresh ECS over world. The
// order is fixed: every stage reads state written by the ones before it.
func NewSimulation(world donburi.World, source InputSource) *ecs.ECS {
	e := ecs.NewECS(world)

	// Systems that always run
	e.AddSystem(BeginTick)
	e.AddSystem(NewInputSystem(source))
	e.AddSystem(UpdatePause)

	// Actor control
	e.AddSystem(WithGameplayChecks(UpdatePlayerMovement))
	e.AddSystem(WithGameplayChecks(UpdateJump))

	// Kinematics
	e.AddSystem(WithGameplayChecks(UpdateGravity))
	e.AddSystem(WithGameplayChecks(UpdateVelocity))
	e.AddSystem(WithGameplayChecks(UpdateAutoMovement))
	e.AddSystem(WithGameplayChecks(UpdateFloatingPlatforms))

	// Collision
	e.AddSystem(WithGameplayChecks(UpdatePlatformCollisions))
	e.AddSystem(WithGameplayChecks(UpdateObstacleCollisions))

	// Obstacle lifecycle
	e.AddSystem(WithGameplayChecks(UpdateSpawner))
	e.AddSystem(WithGameplayChecks(UpdateDespawner))

	e.AddSystem(WithGameplayChecks(UpdateStates))
	e.AddSystem(WithGameplayChecks(UpdateCamera))

	return e
}

// Step runs one tick covering dt seconds. Negative deltas are treated as 0.
func Step(e *ecs.ECS, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if session, ok := sessionEntry(e); ok {
		clock := components.Clock.Get(session)
		clock.Delta = dt
		clock.Frame++
	}
	e.Update()
}

// BeginTick latches last tick's grounded result for jump and gravity and
// advances the session timer.
func BeginTick(e *ecs.ECS) {
	if session, ok := sessionEntry(e); ok {
		components.GameTimer.Get(session).Tick(deltaSeconds(e))
	}
	if IsPaused(e) {
		return
	}

	components.Grounded.Each(e.World, func(entry *donburi.Entry) {
		g := components.Grounded.Get(entry)
		g.Was = g.Now
	})
}
