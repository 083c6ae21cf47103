package components

import (
	"math/rand/v2"

	"github.com/yohamta/donburi"
)

// SpawnerData owns the generator used for obstacle attributes. Seeding it
// explicitly makes a session's spawn sequence reproducible.
type SpawnerData struct {
	Rand *rand.Rand
}

func NewSpawner(seed uint64) SpawnerData {
	return SpawnerData{Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform draws from [min, max). An empty range yields min.
func (s SpawnerData) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.Rand.Float64()*(max-min)
}

var Spawner = donburi.NewComponentType[SpawnerData]()
