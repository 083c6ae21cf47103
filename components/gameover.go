package components

import "github.com/yohamta/donburi"

// GameOverData stores the results shown on the game over screen
type GameOverData struct {
	FinalScore  uint32
	HighScore   uint32
	SurvivedFor float64 // seconds
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
