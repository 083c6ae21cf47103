package components

import (
	"math"
	"testing"
)

func TestSpawnTimerFiresOncePerPeriod(t *testing.T) {
	timer := NewSpawnTimer(2.0)

	var fired []int
	for i := 1; i <= 8; i++ {
		if timer.Tick(0.5) {
			fired = append(fired, i)
		}
	}
	if len(fired) != 2 || fired[0] != 4 || fired[1] != 8 {
		t.Errorf("fired on ticks %v, want [4 8]", fired)
	}
	if timer.Elapsed != 0 {
		t.Errorf("Elapsed = %v, want 0", timer.Elapsed)
	}
}

func TestSpawnTimerLargeDelta(t *testing.T) {
	tests := []struct {
		name        string
		dt          float64
		wantFire    bool
		wantElapsed float64
	}{
		{"below duration", 1.5, false, 1.5},
		{"exact duration", 2.0, true, 0},
		{"several periods fire once", 5.0, true, 1.0},
		{"negative delta ignored", -3.0, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timer := NewSpawnTimer(2.0)
			if got := timer.Tick(tt.dt); got != tt.wantFire {
				t.Errorf("Tick(%v) = %v, want %v", tt.dt, got, tt.wantFire)
			}
			if math.Abs(timer.Elapsed-tt.wantElapsed) > 1e-9 {
				t.Errorf("Elapsed = %v, want %v", timer.Elapsed, tt.wantElapsed)
			}
		})
	}
}

func TestSpawnTimerInvalidDurationNeverFires(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN()} {
		timer := NewSpawnTimer(d)
		for i := 0; i < 10; i++ {
			if timer.Tick(1) {
				t.Fatalf("timer with duration %v fired", d)
			}
		}
	}
}

func TestGameTimerPause(t *testing.T) {
	var gt GameTimerData
	gt.Tick(1)
	gt.Pause()
	gt.Tick(5)
	gt.Resume()
	gt.Tick(0.5)
	if gt.Elapsed != 1.5 {
		t.Errorf("Elapsed = %v, want 1.5", gt.Elapsed)
	}
	gt.Reset()
	if gt.Elapsed != 0 {
		t.Errorf("Reset left Elapsed = %v", gt.Elapsed)
	}
}
