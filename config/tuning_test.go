package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseTuning(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"empty", "", false},
		{"player only", "player:\n  speed: 300\n", false},
		{"ranges", "obstacles:\n  width: {min: 10, max: 20}\n  speed: {min: 50, max: 50}\n", false},
		{"inverted range", "obstacles:\n  spawnY: {min: 100, max: -100}\n", true},
		{"zero width", "obstacles:\n  width: {min: 0, max: 20}\n", true},
		{"zero interval", "obstacles:\n  spawnInterval: 0\n", true},
		{"negative health", "player:\n  health: -1\n", true},
		{"nan interval", "obstacles:\n  spawnInterval: .nan\n", true},
		{"nan smoothing", "camera:\n  smoothing: .nan\n", true},
		{"infinite gravity", "physics:\n  gravity: .inf\n", true},
		{"nan range bound", "obstacles:\n  speed: {min: .nan, max: 40}\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.yaml))
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTuning() err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("err = %v, want ErrInvalidTuning", err)
			}
		})
	}
}

func TestParseTuningMalformed(t *testing.T) {
	_, err := ParseTuning([]byte("player: [1, 2"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if errors.Is(err, ErrInvalidTuning) {
		t.Error("syntax error reported as invalid tuning")
	}
}

func TestTuningApply(t *testing.T) {
	savedPlayer, savedObstacles, savedScoring := Player, Obstacles, Scoring
	t.Cleanup(func() {
		Player, Obstacles, Scoring = savedPlayer, savedObstacles, savedScoring
	})

	tn, err := ParseTuning([]byte(`
player:
  speed: 320
obstacles:
  speed: {min: 10, max: 40}
scoring:
  obstacleContactPoints: 25
`))
	if err != nil {
		t.Fatal(err)
	}
	tn.Apply()

	if Player.Speed != 320 {
		t.Errorf("Player.Speed = %v, want 320", Player.Speed)
	}
	if Player.JumpVelocity != savedPlayer.JumpVelocity {
		t.Errorf("unset JumpVelocity changed to %v", Player.JumpVelocity)
	}
	if Obstacles.SpeedMin != 10 || Obstacles.SpeedMax != 40 {
		t.Errorf("speed range = [%v, %v)", Obstacles.SpeedMin, Obstacles.SpeedMax)
	}
	if Scoring.ObstacleContactPoints != 25 {
		t.Errorf("ObstacleContactPoints = %d, want 25", Scoring.ObstacleContactPoints)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}
