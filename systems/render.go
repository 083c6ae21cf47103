package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const cullPadding = 64.0

var drawableQuery = donburi.NewQuery(filter.Contains(
	components.Transform,
	components.BoxCollider,
))

// view maps world coordinates (y-up, camera-centered) to screen pixels.
type view struct {
	camX, camY    float64
	width, height float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) view {
	camX, camY := CameraPosition(e)
	return view{
		camX:   camX,
		camY:   camY,
		width:  float64(screen.Bounds().Dx()),
		height: float64(screen.Bounds().Dy()),
	}
}

// rect returns the top-left screen corner of box and whether any of it is
// near the screen.
func (v view) rect(box components.AABB) (x, y float64, visible bool) {
	x = box.Left - v.camX + v.width/2
	y = v.height/2 - (box.Top - v.camY)
	w, h := box.Right-box.Left, box.Top-box.Bottom
	visible = x+w >= -cullPadding && x <= v.width+cullPadding &&
		y+h >= -cullPadding && y <= v.height+cullPadding
	return x, y, visible
}

// DrawWorld renders every box-shaped entity as a filled rectangle.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.Background)
	v := newView(e, screen)

	drawableQuery.Each(e.World, func(entry *donburi.Entry) {
		box := components.BoxCollider.Get(entry).Bounds(components.Transform.Get(entry).Position)
		x, y, visible := v.rect(box)
		if !visible {
			return
		}

		clr := cfg.Render.PlatformColor
		switch {
		case entry.HasComponent(tags.Player):
			clr = cfg.Render.PlayerColor
		case entry.HasComponent(tags.Obstacle):
			clr = cfg.Render.ObstacleColor
		case entry.HasComponent(tags.Ground):
			clr = cfg.Render.GroundColor
		}

		vector.DrawFilledRect(screen,
			float32(x), float32(y),
			float32(box.Right-box.Left), float32(box.Top-box.Bottom),
			clr, false)
	})
}
