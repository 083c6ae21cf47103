package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TweenData drives a floating platform's vertical position.
type TweenData struct {
	Sequence *gween.Sequence
}

var Tween = donburi.NewComponentType[TweenData]()
