package systems

import (
	"testing"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/systems/factory"
)

// Platform centered at (0, -20), 100x20: top edge at -10. Actor is 40x50.
func TestPlatformLanding(t *testing.T) {
	tests := []struct {
		name     string
		x, y, vy float64
		wantLand bool
		wantY    float64
		wantVY   float64
	}{
		{"inside band snaps to top", 0, 10, -100, true, 15, 0},
		{"resting exactly on top", 0, 15, 0, true, 15, 0},
		{"deepest point of band", 0, 5, -100, true, 15, 0},
		{"above the top", 0, 40, -100, false, 40, -100},
		{"below the band", 0, 0, -100, false, 0, -100},
		{"ascending through", 0, 10, 50, false, 10, 50},
		{"no horizontal overlap", 100, 10, -100, false, 10, -100},
		{"touching side edge", 70, 10, -100, false, 10, -100},
		{"partial horizontal overlap", 65, 10, -100, true, 15, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSim(t)
			factory.CreatePlatform(s.world, 0, -20, 100, 20)
			player := factory.CreatePlayer(s.world, tt.x, tt.y)
			components.Velocity.Get(player).Y = tt.vy

			UpdatePlatformCollisions(s.ecs)

			grounded := components.Grounded.Get(player)
			if grounded.Now != tt.wantLand {
				t.Errorf("Grounded.Now = %v, want %v", grounded.Now, tt.wantLand)
			}
			if y := components.Transform.Get(player).Position.Y; !approx(y, tt.wantY) {
				t.Errorf("y = %v, want %v", y, tt.wantY)
			}
			if vy := components.Velocity.Get(player).Y; !approx(vy, tt.wantVY) {
				t.Errorf("vy = %v, want %v", vy, tt.wantVY)
			}
		})
	}
}

func TestPlatformLandingPicksHighestTop(t *testing.T) {
	s := newTestSim(t)
	factory.CreatePlatform(s.world, 0, -20, 100, 20) // top -10
	factory.CreatePlatform(s.world, 0, -15, 100, 20) // top -5
	player := factory.CreatePlayer(s.world, 0, 13)   // bottom -12
	components.Velocity.Get(player).Y = -50

	UpdatePlatformCollisions(s.ecs)

	if y := components.Transform.Get(player).Position.Y; !approx(y, 20) {
		t.Errorf("y = %v, want 20 (landed on the higher platform)", y)
	}
}

func TestPlatformCollisionClearsGrounded(t *testing.T) {
	s := newTestSim(t)
	player := factory.CreatePlayer(s.world, 0, 10)
	components.Grounded.Get(player).Now = true

	UpdatePlatformCollisions(s.ecs)

	if components.Grounded.Get(player).Now {
		t.Error("grounded with no platforms in the world")
	}
}

func TestPlatformCollisionWithoutPlayer(t *testing.T) {
	s := newTestSim(t)
	factory.CreatePlatform(s.world, 0, 0, 100, 20)
	UpdatePlatformCollisions(s.ecs)
}

func TestFallingActorLandsThroughPipeline(t *testing.T) {
	s := newTestSim(t)
	factory.CreatePlatform(s.world, 0, -20, 100, 20)
	player := factory.CreatePlayer(s.world, 0, 10)

	s.steps(1)

	if !components.Grounded.Get(player).Now {
		t.Fatal("actor did not land")
	}
	if y := components.Transform.Get(player).Position.Y; !approx(y, 15) {
		t.Errorf("y = %v, want 15", y)
	}

	// Once grounded the actor stays put.
	s.steps(30)
	if y := components.Transform.Get(player).Position.Y; !approx(y, 15) {
		t.Errorf("resting actor drifted to y=%v", y)
	}
	if vy := components.Velocity.Get(player).Y; vy != 0 {
		t.Errorf("resting vy = %v", vy)
	}
}
