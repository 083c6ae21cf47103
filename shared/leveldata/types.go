// Package leveldata provides TMX level parsing for the platform layout.
// It has no dependencies on ebitengine or donburi: pure data only.
package leveldata

// LayoutData holds everything the simulation needs from a TMX level file.
// Coordinates are world units: origin at the map center, y growing upward,
// positions at the center of each rectangle.
type LayoutData struct {
	Name      string
	Platforms []PlatformRect
	Spawn     *SpawnPoint
	MapWidth  float64
	MapHeight float64
}

// PlatformRect is a one-way platform. Floating platforms oscillate vertically
// by Travel units.
type PlatformRect struct {
	X, Y, W, H float64
	Ground     bool
	Floating   bool
	Travel     float64
}

// SpawnPoint represents the actor start location.
type SpawnPoint struct {
	X, Y float64
}
