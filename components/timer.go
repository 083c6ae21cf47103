package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// SpawnTimerData is a repeating accumulator timer.
type SpawnTimerData struct {
	Duration float64 // seconds
	Elapsed  float64
}

func NewSpawnTimer(duration float64) SpawnTimerData {
	return SpawnTimerData{Duration: duration}
}

// Tick adds dt and reports whether the timer fired. On firing Elapsed keeps
// the remainder past Duration. A dt spanning several periods fires once. A
// non-positive or NaN Duration never fires.
func (t *SpawnTimerData) Tick(dt float64) bool {
	if dt > 0 {
		t.Elapsed += dt
	}
	if !(t.Duration > 0) || t.Elapsed < t.Duration {
		return false
	}
	t.Elapsed = math.Mod(t.Elapsed, t.Duration)
	return true
}

// GameTimerData counts session time and can be paused.
type GameTimerData struct {
	Elapsed float64
	Paused  bool
}

func (t *GameTimerData) Tick(dt float64) {
	if !t.Paused && dt > 0 {
		t.Elapsed += dt
	}
}

func (t *GameTimerData) Pause()  { t.Paused = true }
func (t *GameTimerData) Resume() { t.Paused = false }
func (t *GameTimerData) Reset()  { t.Elapsed = 0 }

// ClockData holds the delta of the tick in progress.
type ClockData struct {
	Delta float64 // seconds, never negative
	Frame uint64
}

var (
	SpawnTimer = donburi.NewComponentType[SpawnTimerData]()
	GameTimer  = donburi.NewComponentType[GameTimerData]()
	Clock      = donburi.NewComponentType[ClockData]()
)
