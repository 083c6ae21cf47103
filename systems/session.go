package systems

import (
	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sessionEntry returns the entity carrying the per-session simulation state.
func sessionEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Session.First(e.World)
}

// deltaSeconds returns the current tick's delta, or 0 with no session.
func deltaSeconds(e *ecs.ECS) float64 {
	session, ok := sessionEntry(e)
	if !ok {
		return 0
	}
	return components.Clock.Get(session).Delta
}

// GetScore returns the session score for read-only consumers such as the HUD.
func GetScore(e *ecs.ECS) (components.ScoreData, bool) {
	session, ok := sessionEntry(e)
	if !ok {
		return components.ScoreData{}, false
	}
	return components.Score.GetValue(session), true
}

// ResetScore is the external reset command; the simulation never calls it.
func ResetScore(e *ecs.ECS) {
	session, ok := sessionEntry(e)
	if !ok {
		return
	}
	components.Score.Get(session).Reset()
}
