package components

import "github.com/yohamta/donburi"

// ScoreData holds the session score. HighScore is the running maximum of
// Current and never decreases.
type ScoreData struct {
	Current   uint32
	HighScore uint32
}

func (s *ScoreData) Add(points uint32) {
	s.Current += points
	if s.Current > s.HighScore {
		s.HighScore = s.Current
	}
}

// Reset zeroes Current and keeps HighScore.
func (s *ScoreData) Reset() {
	s.Current = 0
}

var Score = donburi.NewComponentType[ScoreData]()
