package systems

import (
	"testing"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems/factory"
)

func obstacleAt(x, y, size, damage float64) factory.ObstacleParams {
	return factory.ObstacleParams{X: x, Y: y, Width: size, Height: size, Speed: 100, Damage: damage}
}

func TestObstacleContact(t *testing.T) {
	tests := []struct {
		name       string
		obstacles  []factory.ObstacleParams
		wantHealth float64
		wantScore  uint32
		wantLeft   int
	}{
		{"no obstacles", nil, 100, 0, 0},
		{"overlap", []factory.ObstacleParams{obstacleAt(10, 0, 30, 10)}, 90, 10, 0},
		{"touching edge", []factory.ObstacleParams{obstacleAt(35, 0, 30, 10)}, 100, 0, 1},
		{"far away", []factory.ObstacleParams{obstacleAt(400, 0, 30, 10)}, 100, 0, 1},
		{
			"two hits in one tick",
			[]factory.ObstacleParams{obstacleAt(0, 0, 30, 10), obstacleAt(0, 10, 30, 15)},
			75, 20, 0,
		},
		{
			"damage clamps at zero",
			[]factory.ObstacleParams{obstacleAt(0, 0, 30, 80), obstacleAt(5, 0, 30, 80)},
			0, 20, 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t)
			player := factory.CreatePlayer(s.world, 0, 0)
			for _, p := range tt.obstacles {
				factory.CreateObstacle(s.world, p)
			}

			UpdateObstacleCollisions(s.ecs)

			health := components.Health.Get(player)
			if health.Current != tt.wantHealth {
				t.Errorf("health = %v, want %v", health.Current, tt.wantHealth)
			}
			if health.IsDead() != (tt.wantHealth == 0) {
				t.Errorf("IsDead = %v", health.IsDead())
			}
			if got := components.Score.Get(s.session).Current; got != tt.wantScore {
				t.Errorf("score = %d, want %d", got, tt.wantScore)
			}
			if got := len(obstacles(s.world)); got != tt.wantLeft {
				t.Errorf("%d obstacles left, want %d", got, tt.wantLeft)
			}
		})
	}
}

func TestObstacleContactWithoutPlayer(t *testing.T) {
	s := newTestSim(t)
	factory.CreateObstacle(s.world, obstacleAt(0, 0, 30, 10))

	UpdateObstacleCollisions(s.ecs)

	if got := len(obstacles(s.world)); got != 1 {
		t.Errorf("%d obstacles left, want 1", got)
	}
}

func TestContactPointsFollowConfig(t *testing.T) {
	saved := cfg.Scoring
	t.Cleanup(func() { cfg.Scoring = saved })
	cfg.Scoring.ObstacleContactPoints = 3

	s := newTestSim(t)
	factory.CreatePlayer(s.world, 0, 0)
	factory.CreateObstacle(s.world, obstacleAt(0, 0, 30, 1))

	UpdateObstacleCollisions(s.ecs)

	if got := components.Score.Get(s.session).Current; got != 3 {
		t.Errorf("score = %d, want 3", got)
	}
}
