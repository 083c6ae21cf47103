package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	v := newView(e, screen)

	drawableQuery.Each(e.World, func(entry *donburi.Entry) {
		box := components.BoxCollider.Get(entry).Bounds(components.Transform.Get(entry).Position)
		x, y, visible := v.rect(box)
		if !visible {
			return
		}

		// Determine color based on tags
		var c color.RGBA = colornames.Cyan
		switch {
		case entry.HasComponent(tags.Player):
			c = colornames.Blue
		case entry.HasComponent(tags.Obstacle):
			c = colornames.Red
		case entry.HasComponent(tags.FloatingPlatform):
			c = colornames.Lime
		}

		w, h := float32(box.Right-box.Left), float32(box.Top-box.Bottom)
		fx, fy := float32(x), float32(y)
		vector.FillRect(screen, fx, fy, w, 1, c, false)     // Top
		vector.FillRect(screen, fx, fy+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, fx, fy, 1, h, c, false)     // Left
		vector.FillRect(screen, fx+w-1, fy, 1, h, c, false) // Right
	})

	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	state := components.State.Get(player)
	vel := components.Velocity.Get(player)
	grounded := components.Grounded.Get(player)
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("state: %s (%d)  v: %.0f,%.0f  grounded: %t  fps: %.0f",
			state.CurrentState, state.StateTimer, vel.X, vel.Y, grounded.Now, ebiten.ActualFPS()),
		hudMargin, int(v.height)-hudLineGap-hudMargin)
}
