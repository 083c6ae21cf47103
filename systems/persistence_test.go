package systems

import (
	"errors"
	"testing"

	"github.com/automoto/skyhop/components"
)

type memoryStore struct {
	items   map[string][]byte
	loadErr error
}

func (m *memoryStore) LoadItem(key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.items[key], nil
}

func (m *memoryStore) SaveItem(key string, data []byte) error {
	if m.items == nil {
		m.items = map[string][]byte{}
	}
	m.items[key] = data
	return nil
}

func usePersistence(t *testing.T, s ItemStore) {
	t.Helper()
	UsePersistence(s)
	t.Cleanup(func() { UsePersistence(nil) })
}

func TestHighScoreSurvivesSessions(t *testing.T) {
	mem := &memoryStore{}
	usePersistence(t, mem)

	first := newTestSim(t)
	components.Score.Get(first.session).Add(40)
	if err := SaveHighScore(first.ecs); err != nil {
		t.Fatal(err)
	}

	second := newTestSim(t)
	RestoreHighScore(second.ecs)

	score := components.Score.Get(second.session)
	if score.HighScore != 40 {
		t.Errorf("HighScore = %d, want 40", score.HighScore)
	}
	if score.Current != 0 {
		t.Errorf("Current = %d, want 0", score.Current)
	}
}

func TestLoadHighScore(t *testing.T) {
	tests := []struct {
		name    string
		store   ItemStore
		want    uint32
		wantErr bool
	}{
		{"no store", nil, 0, false},
		{"nothing saved", &memoryStore{}, 0, false},
		{"saved", &memoryStore{items: map[string][]byte{highScoreKey: []byte(`{"highScore":120}`)}}, 120, false},
		{"corrupt", &memoryStore{items: map[string][]byte{highScoreKey: []byte(`{`)}}, 0, true},
		{"read error", &memoryStore{loadErr: errors.New("disk gone")}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usePersistence(t, tt.store)
			got, err := LoadHighScore()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LoadHighScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRestoreKeepsHigherSessionScore(t *testing.T) {
	usePersistence(t, &memoryStore{items: map[string][]byte{highScoreKey: []byte(`{"highScore":10}`)}})

	s := newTestSim(t)
	components.Score.Get(s.session).Add(50)
	RestoreHighScore(s.ecs)

	if hs := components.Score.Get(s.session).HighScore; hs != 50 {
		t.Errorf("HighScore = %d, want 50", hs)
	}
}
