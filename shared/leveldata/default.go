package leveldata

// DefaultLayout is the built-in stage used when no TMX level can be loaded:
// a wide ground strip and five ledges at staggered heights.
func DefaultLayout() *LayoutData {
	return &LayoutData{
		Name: "default",
		Platforms: []PlatformRect{
			{X: 0, Y: -250, W: 800, H: 40, Ground: true},
			{X: -200, Y: -100, W: 150, H: 20},
			{X: 150, Y: -50, W: 120, H: 20},
			{X: -50, Y: 50, W: 180, H: 20},
			{X: 250, Y: 120, W: 100, H: 20},
			{X: -250, Y: 150, W: 100, H: 20},
		},
		Spawn:     &SpawnPoint{X: 0, Y: 100},
		MapWidth:  1280,
		MapHeight: 736,
	}
}
