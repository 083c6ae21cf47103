package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var stateQuery = donburi.NewQuery(filter.Contains(
	components.State,
	components.Velocity,
	components.Grounded,
))

// UpdateStates classifies each actor from this tick's collision result and
// keeps one state marker component in sync with it.
func UpdateStates(e *ecs.ECS) {
	// Tags change archetypes, so apply them after the query finishes.
	var changed []*donburi.Entry
	stateQuery.Each(e.World, func(entry *donburi.Entry) {
		state := components.State.Get(entry)
		next := classify(components.Velocity.Get(entry), components.Grounded.Get(entry))

		if next == state.CurrentState {
			state.StateTimer++
			return
		}
		state.PreviousState = state.CurrentState
		state.CurrentState = next
		state.StateTimer = 0
		changed = append(changed, entry)
	})

	for _, entry := range changed {
		updateStateTags(entry, components.State.Get(entry).CurrentState)
	}
}

func classify(vel *components.VelocityData, grounded *components.GroundedData) cfg.StateID {
	switch {
	case grounded.Now && vel.X != 0:
		return cfg.Running
	case grounded.Now:
		return cfg.Idle
	case vel.Y > 0:
		return cfg.Jumping
	default:
		return cfg.Falling
	}
}

func updateStateTags(e *donburi.Entry, state cfg.StateID) {
	// Remove all state tags
	removeAllStateTags(e)

	// Add the current state tag
	switch state {
	case cfg.Idle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Running:
		donburi.Add(e, components.Running, &components.RunningState{})
	case cfg.Jumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case cfg.Falling:
		donburi.Add(e, components.Falling, &components.FallingState{})
	}
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.FallingState](e, components.Falling)
}
