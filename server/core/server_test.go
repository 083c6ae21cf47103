package core

import (
	"testing"
	"time"

	"github.com/automoto/skyhop/assets"
	cfg "github.com/automoto/skyhop/config"
)

func TestNewServerRejectsBadTickRate(t *testing.T) {
	if _, err := NewServer(Options{TickRate: 0}); err == nil {
		t.Fatal("expected an error for tick rate 0")
	}
}

func TestServerRunsToTickLimit(t *testing.T) {
	s, err := NewServer(Options{
		TickRate:  60,
		MaxTicks:  300,
		Seed:      5,
		LevelFS:   assets.LevelFS(),
		LevelPath: cfg.Level.Path,
	})
	if err != nil {
		t.Fatal(err)
	}

	s.Start()
	select {
	case <-s.Done():
	case <-time.After(10 * time.Second):
		s.Stop()
		t.Fatal("loop did not finish")
	}

	sum := s.Summary()
	if sum.Ticks != 300 {
		t.Errorf("Ticks = %d, want 300", sum.Ticks)
	}
	if sum.Elapsed < 4.99 || sum.Elapsed > 5.01 {
		t.Errorf("Elapsed = %v, want 5", sum.Elapsed)
	}
	if sum.Health <= 0 || sum.Health > cfg.Player.Health {
		t.Errorf("Health = %v", sum.Health)
	}
}

func TestServerFallsBackToBuiltInLevel(t *testing.T) {
	s, err := NewServer(Options{TickRate: 60, MaxTicks: 1})
	if err != nil {
		t.Fatal(err)
	}
	if s.Tick(1.0 / 60) {
		t.Error("Tick reported continue past MaxTicks")
	}
}

func TestServerStop(t *testing.T) {
	s, err := NewServer(Options{TickRate: 60, Realtime: true})
	if err != nil {
		t.Fatal(err)
	}
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()
	s.Stop()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestAutopilotPattern(t *testing.T) {
	a := &Autopilot{WalkTicks: 4, JumpEvery: 3, JumpHold: 1}

	var right, jumps int
	for i := 0; i < 8; i++ {
		a.Advance()
		if a.IsPressed(cfg.ActionMoveRight) == a.IsPressed(cfg.ActionMoveLeft) {
			t.Fatalf("tick %d: exactly one direction should be held", i)
		}
		if a.IsPressed(cfg.ActionMoveRight) {
			right++
		}
		if a.IsPressed(cfg.ActionJump) {
			jumps++
		}
	}
	if right != 4 {
		t.Errorf("held right for %d ticks, want 4", right)
	}
	// Jump held on ticks 0, 3 and 6.
	if jumps != 3 {
		t.Errorf("held jump for %d ticks, want 3", jumps)
	}
}
