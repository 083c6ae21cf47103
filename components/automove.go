package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AutoMoveData drifts an entity along Direction at Speed units per second,
// independent of velocity and gravity.
type AutoMoveData struct {
	Direction math.Vec2
	Speed     float64
}

func NewAutoMove(direction math.Vec2, speed float64) AutoMoveData {
	return AutoMoveData{Direction: direction, Speed: speed}
}

func AutoMoveLeft(speed float64) AutoMoveData {
	return NewAutoMove(math.Vec2{X: -1, Y: 0}, speed)
}

func AutoMoveRight(speed float64) AutoMoveData {
	return NewAutoMove(math.Vec2{X: 1, Y: 0}, speed)
}

var AutoMove = donburi.NewComponentType[AutoMoveData]()
