package components

import (
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	// PendingRelease records releases seen while gameplay was suspended.
	PendingRelease [cfg.ActionCount]bool
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

func (in *InputData) JustReleased(a cfg.ActionID) bool {
	return !in.Current[a] && in.Previous[a]
}

// HoldRelease remembers a release of a so a later TakeRelease still sees it.
// Pressing a again cancels the held release.
func (in *InputData) HoldRelease(a cfg.ActionID) {
	switch {
	case in.JustReleased(a):
		in.PendingRelease[a] = true
	case in.JustPressed(a):
		in.PendingRelease[a] = false
	}
}

// TakeRelease reports a release of a this tick, or a held one while a is
// still up, and clears the held release.
func (in *InputData) TakeRelease(a cfg.ActionID) bool {
	held := in.PendingRelease[a] && !in.Current[a]
	in.PendingRelease[a] = false
	return in.JustReleased(a) || held
}

var Input = donburi.NewComponentType[InputData]()
