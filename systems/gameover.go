package systems

import (
	"fmt"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// IsPlayerDead reports whether the actor exists and has no health left.
func IsPlayerDead(e *ecs.ECS) bool {
	player, ok := tags.Player.First(e.World)
	if !ok {
		return false
	}
	return components.Health.Get(player).IsDead()
}

// Results snapshots the session for the game over screen.
func Results(e *ecs.ECS) components.GameOverData {
	var res components.GameOverData
	if session, ok := sessionEntry(e); ok {
		score := components.Score.GetValue(session)
		res.FinalScore = score.Current
		res.HighScore = score.HighScore
		res.SurvivedFor = components.GameTimer.Get(session).Elapsed
	}
	return res
}

// NewUpdateGameOver creates an UpdateGameOver system that restarts on a jump press
func NewUpdateGameOver(sceneChanger SceneChanger, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		session, ok := sessionEntry(e)
		if !ok {
			return
		}
		if components.Input.Get(session).JustPressed(cfg.ActionJump) {
			sceneChanger.ChangeScene(createPlatformerScene())
		}
	}
}

// DrawGameOver renders the results screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return
	}
	res := components.GameOver.GetValue(entry)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	// Draw background
	vector.FillRect(screen, 0, 0, width, height, colornames.Black, false)

	x := int(width)/2 - 60
	y := int(height)/2 - 40
	ebitenutil.DebugPrintAt(screen, "GAME OVER", x, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", res.FinalScore), x, y+2*hudLineGap)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best:  %d", res.HighScore), x, y+3*hudLineGap)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time:  %.1fs", res.SurvivedFor), x, y+4*hudLineGap)
	ebitenutil.DebugPrintAt(screen, "Press jump to retry", x, y+6*hudLineGap)
}
