package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyhop/components"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
	hudLineGap   = 16
)

// DrawHUD renders the actor's health bar, score and session time in the
// top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if player, ok := tags.Player.First(e.World); ok {
		drawHealthBar(screen, components.Health.GetValue(player))
	}

	session, ok := sessionEntry(e)
	if !ok {
		return
	}
	score := components.Score.GetValue(session)
	timer := components.GameTimer.GetValue(session)

	y := hudMargin + hudBarHeight + 4
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", score.Current), hudMargin, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Best:  %d", score.HighScore), hudMargin, y+hudLineGap)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time:  %.1fs", timer.Elapsed), hudMargin, y+2*hudLineGap)
}

func drawHealthBar(screen *ebiten.Image, hp components.HealthData) {
	// Background (dark gray)
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		colornames.Dimgray, false)

	ratio := hp.Percentage()
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*float32(ratio), float32(hudBarHeight),
		healthColor(ratio), false)
}

func healthColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.6:
		return colornames.Limegreen
	case ratio > 0.3:
		return colornames.Gold
	default:
		return colornames.Crimson
	}
}
