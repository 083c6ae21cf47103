package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const highScoreKey = "highscore"

// ItemStore is the subset of *gdata.Manager used for persistence.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// SavedHighScore represents the high score data stored on disk
type SavedHighScore struct {
	HighScore uint32 `json:"highScore"`
}

var store ItemStore

// InitPersistence initializes the gdata manager for high score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Level.HighScoreStorageName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// UsePersistence replaces the backing store. Passing nil disables persistence.
func UsePersistence(s ItemStore) {
	store = s
}

// LoadHighScore returns the stored high score, or 0 when none is saved.
func LoadHighScore() (uint32, error) {
	if store == nil {
		return 0, nil
	}

	data, err := store.LoadItem(highScoreKey)
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return 0, nil
	}
	if len(data) == 0 {
		return 0, nil
	}

	var saved SavedHighScore
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved high score: %v", err)
		return 0, err
	}
	return saved.HighScore, nil
}

// SaveHighScore writes the session's high score to disk
func SaveHighScore(e *ecs.ECS) error {
	if store == nil {
		return nil
	}
	score, ok := GetScore(e)
	if !ok {
		return nil
	}

	data, err := json.Marshal(&SavedHighScore{HighScore: score.HighScore})
	if err != nil {
		log.Printf("Warning: Could not serialize high score: %v", err)
		return err
	}
	if err := store.SaveItem(highScoreKey, data); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
		return err
	}
	return nil
}

// RestoreHighScore seeds the session score's HighScore from disk.
func RestoreHighScore(e *ecs.ECS) {
	high, err := LoadHighScore()
	if err != nil || high == 0 {
		return
	}
	session, ok := sessionEntry(e)
	if !ok {
		return
	}
	score := components.Score.Get(session)
	if high > score.HighScore {
		score.HighScore = high
	}
}
