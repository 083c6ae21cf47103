package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/skyhop/components"
	"golang.org/x/image/colornames"
)

func TestViewMapsWorldToScreen(t *testing.T) {
	v := view{camX: 100, camY: 50, width: 1280, height: 720}

	// A 20x20 box centered on the camera sits in the middle of the screen.
	x, y, visible := v.rect(components.AABB{Left: 90, Right: 110, Bottom: 40, Top: 60})
	if x != 630 || y != 350 || !visible {
		t.Errorf("rect = (%v, %v, %v), want (630, 350, true)", x, y, visible)
	}

	// Higher world y is further up the screen.
	_, yHigh, _ := v.rect(components.AABB{Left: 90, Right: 110, Bottom: 140, Top: 160})
	if yHigh >= y {
		t.Errorf("y-up not flipped: %v >= %v", yHigh, y)
	}

	if _, _, visible := v.rect(components.AABB{Left: 5000, Right: 5020, Bottom: 0, Top: 20}); visible {
		t.Error("far-off box reported visible")
	}
}

func TestHealthColor(t *testing.T) {
	tests := []struct {
		ratio float64
		want  color.RGBA
	}{
		{1, colornames.Limegreen},
		{0.61, colornames.Limegreen},
		{0.6, colornames.Gold},
		{0.31, colornames.Gold},
		{0.3, colornames.Crimson},
		{0, colornames.Crimson},
	}
	for _, tt := range tests {
		if got := healthColor(tt.ratio); got != tt.want {
			t.Errorf("healthColor(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}
