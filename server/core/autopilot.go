package core

import (
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems"
)

// Autopilot drives the actor without a keyboard: it walks back and forth
// and taps jump on a fixed cadence. Intervals are in ticks.
type Autopilot struct {
	WalkTicks uint64
	JumpEvery uint64
	JumpHold  uint64

	source systems.ScriptedSource
	frame  uint64
}

func NewAutopilot(tickRate int) *Autopilot {
	return &Autopilot{
		WalkTicks: uint64(tickRate) * 3,
		JumpEvery: uint64(tickRate) * 3 / 2,
		JumpHold:  uint64(tickRate) / 4,
	}
}

// Advance sets the held actions for the next tick.
func (a *Autopilot) Advance() {
	a.source.Release(cfg.ActionMoveLeft)
	a.source.Release(cfg.ActionMoveRight)
	if a.WalkTicks > 0 && (a.frame/a.WalkTicks)%2 == 0 {
		a.source.Press(cfg.ActionMoveRight)
	} else {
		a.source.Press(cfg.ActionMoveLeft)
	}

	a.source.Release(cfg.ActionJump)
	if a.JumpEvery > 0 && a.frame%a.JumpEvery < a.JumpHold {
		a.source.Press(cfg.ActionJump)
	}
	a.frame++
}

func (a *Autopilot) IsPressed(action cfg.ActionID) bool {
	return a.source.IsPressed(action)
}
