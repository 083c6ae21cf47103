package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// BoxColliderData is an axis-aligned box centered on the entity's Transform.
type BoxColliderData struct {
	Width  float64
	Height float64
}

func NewBoxCollider(width, height float64) BoxColliderData {
	return BoxColliderData{Width: width, Height: height}
}

func (b BoxColliderData) HalfWidth() float64  { return b.Width / 2 }
func (b BoxColliderData) HalfHeight() float64 { return b.Height / 2 }

// Bounds returns the box placed at pos.
func (b BoxColliderData) Bounds(pos math.Vec2) AABB {
	hw, hh := b.HalfWidth(), b.HalfHeight()
	return AABB{
		Left:   pos.X - hw,
		Right:  pos.X + hw,
		Bottom: pos.Y - hh,
		Top:    pos.Y + hh,
	}
}

// AABB edges in world units, y-up.
type AABB struct {
	Left, Right, Bottom, Top float64
}

// OverlapsX reports strict horizontal overlap; touching edges do not count.
func (a AABB) OverlapsX(b AABB) bool {
	return a.Left < b.Right && a.Right > b.Left
}

// OverlapsY reports strict vertical overlap.
func (a AABB) OverlapsY(b AABB) bool {
	return a.Bottom < b.Top && a.Top > b.Bottom
}

func (a AABB) Overlaps(b AABB) bool {
	return a.OverlapsX(b) && a.OverlapsY(b)
}

var BoxCollider = donburi.NewComponentType[BoxColliderData]()
