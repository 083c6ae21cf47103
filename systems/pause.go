package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the session pause on a pause press. While paused it
// holds jump releases so the jump cut still applies after resuming.
// This system should run AFTER the input system but BEFORE other game systems.
func UpdatePause(e *ecs.ECS) {
	session, ok := sessionEntry(e)
	if !ok {
		return
	}
	input := components.Input.Get(session)
	timer := components.GameTimer.Get(session)

	if input.JustPressed(cfg.ActionPause) {
		if timer.Paused {
			timer.Resume()
		} else {
			timer.Pause()
		}
	}
	if timer.Paused {
		input.HoldRelease(cfg.ActionJump)
	}
}

// IsPaused reports whether the session timer is paused.
func IsPaused(e *ecs.ECS) bool {
	session, ok := sessionEntry(e)
	if !ok {
		return false
	}
	return components.GameTimer.Get(session).Paused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if IsPaused(e) {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution when paused.
// This is an alias for WithPauseCheck for semantic clarity.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(system)
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e) {
		return
	}

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(screen, 0, 0, width, height, cfg.Render.PauseOverlay, false)

	ebitenutil.DebugPrintAt(screen, "PAUSED", int(width)/2-18, int(height)/2-8)
}
