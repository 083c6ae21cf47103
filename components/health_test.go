package components

import "testing"

func TestHealthStaysInRange(t *testing.T) {
	tests := []struct {
		name    string
		ops     func(h *HealthData)
		want    float64
		wantDie bool
	}{
		{"untouched", func(h *HealthData) {}, 100, false},
		{"damage", func(h *HealthData) { h.TakeDamage(10) }, 90, false},
		{"overkill clamps to zero", func(h *HealthData) { h.TakeDamage(250) }, 0, true},
		{"exact kill", func(h *HealthData) { h.TakeDamage(100) }, 0, true},
		{"overheal clamps to max", func(h *HealthData) { h.TakeDamage(5); h.Heal(50) }, 100, false},
		{"heal after damage", func(h *HealthData) { h.TakeDamage(40); h.Heal(15) }, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealth(100)
			tt.ops(&h)
			if h.Current != tt.want {
				t.Errorf("Current = %v, want %v", h.Current, tt.want)
			}
			if h.IsDead() != tt.wantDie {
				t.Errorf("IsDead() = %v, want %v", h.IsDead(), tt.wantDie)
			}
			if p := h.Percentage(); p < 0 || p > 1 {
				t.Errorf("Percentage() = %v, outside [0, 1]", p)
			}
		})
	}
}

func TestHealthPercentage(t *testing.T) {
	h := NewHealth(200)
	h.TakeDamage(50)
	if got := h.Percentage(); got != 0.75 {
		t.Errorf("Percentage() = %v, want 0.75", got)
	}
}

func TestScoreHighScoreIsRunningMax(t *testing.T) {
	var s ScoreData
	s.Add(10)
	s.Add(20)
	if s.Current != 30 || s.HighScore != 30 {
		t.Fatalf("after adds: got %+v", s)
	}

	s.Reset()
	if s.Current != 0 {
		t.Errorf("Reset left Current = %d", s.Current)
	}
	if s.HighScore != 30 {
		t.Errorf("Reset changed HighScore to %d", s.HighScore)
	}

	s.Add(10)
	if s.HighScore != 30 {
		t.Errorf("HighScore = %d after lower run, want 30", s.HighScore)
	}
}
