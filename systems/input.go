package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports whether a logical action is held this tick. Polling is
// idempotent within a tick.
type InputSource interface {
	IsPressed(action cfg.ActionID) bool
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func(action cfg.ActionID) bool

func (f InputSourceFunc) IsPressed(action cfg.ActionID) bool { return f(action) }

// ScriptedSource is a settable InputSource for tests and the headless runner.
type ScriptedSource struct {
	held [cfg.ActionCount]bool
}

func (s *ScriptedSource) Press(a cfg.ActionID)   { s.held[a] = true }
func (s *ScriptedSource) Release(a cfg.ActionID) { s.held[a] = false }

func (s *ScriptedSource) IsPressed(a cfg.ActionID) bool {
	return s.held[a]
}

// KeyboardSource polls ebiten keyboard and standard gamepad state using
// cfg.Input bindings.
type KeyboardSource struct {
	gamepadIDs []ebiten.GamepadID
}

func (k *KeyboardSource) IsPressed(a cfg.ActionID) bool {
	binding, ok := cfg.Input.Bindings[a]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	k.gamepadIDs = ebiten.AppendGamepadIDs(k.gamepadIDs[:0])
	for _, gpID := range k.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// NewInputSystem polls source into the session's InputData.
// Must run BEFORE UpdatePlayerMovement and UpdateJump in the system order.
func NewInputSystem(source InputSource) func(*ecs.ECS) {
	return func(e *ecs.ECS) {
		session, ok := sessionEntry(e)
		if !ok {
			return
		}
		input := components.Input.Get(session)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		if source == nil {
			return
		}
		for a := cfg.ActionNone + 1; a < cfg.ActionCount; a++ {
			input.Current[a] = source.IsPressed(a)
		}
	}
}
