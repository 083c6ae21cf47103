package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
)

// CreateSession spawns the entity that carries per-session state: clock,
// input, score, timers and the spawner's generator.
func CreateSession(w donburi.World, seed uint64) *donburi.Entry {
	session := archetypes.Session.Spawn(w)
	components.Clock.SetValue(session, components.ClockData{})
	components.Input.SetValue(session, components.InputData{})
	components.Score.SetValue(session, components.ScoreData{})
	components.SpawnTimer.SetValue(session, components.NewSpawnTimer(cfg.Obstacles.SpawnInterval))
	components.GameTimer.SetValue(session, components.GameTimerData{})
	components.Spawner.SetValue(session, components.NewSpawner(seed))
	return session
}
