package config

import "image/color"

// PlayerConfig contains all actor-related configuration values
type PlayerConfig struct {
	// Movement
	Speed             float64 // Horizontal units per second while a direction is held
	JumpVelocity      float64 // Upward velocity applied on a grounded jump press
	JumpCutMultiplier float64 // Applied to residual upward velocity when jump is released early

	// Physics
	Gravity float64 // Units per second squared; 0 uses Physics.Gravity

	// Combat
	Health float64

	// Dimensions
	Width  float64
	Height float64

	// Start position (world units, y-up)
	SpawnX float64
	SpawnY float64
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	// Gravity is the default downward acceleration for entities created
	// without an explicit value. There is no terminal velocity clamp; tune
	// this value instead.
	Gravity float64

	// LandingThreshold is the depth below a platform top within which an
	// actor's bottom edge still counts as resting on it.
	LandingThreshold float64
}

// ObstacleConfig describes the playfield bounds used by the spawner and despawner.
type ObstacleConfig struct {
	SpawnInterval float64 // seconds between spawns

	SpawnX    float64
	SpawnYMin float64
	SpawnYMax float64

	WidthMin  float64
	WidthMax  float64
	HeightMin float64
	HeightMax float64

	SpeedMin float64
	SpeedMax float64

	DespawnX float64 // obstacles left of this x are removed
	Damage   float64 // default DamageOnContact
}

type CameraConfig struct {
	TargetFramerate float64 // Reference framerate the smoothing factor is tuned for
	MinSmoothing    float64
	MaxSmoothing    float64
	Smoothing       float64 // Default follow smoothing (lower = faster)
	OffsetX         float64
	OffsetY         float64
}

type ScoringConfig struct {
	ObstacleContactPoints uint32 // Points awarded when an obstacle is consumed on contact
}

type LevelConfig struct {
	Path                 string  // TMX path inside the embedded assets FS
	FloatingTravel       float64 // Default vertical travel for floating platforms
	FloatingPeriod       float64 // Seconds for one leg of a floating platform's path
	HighScoreStorageName string
}

type RenderConfig struct {
	PlayerColor   color.RGBA
	PlatformColor color.RGBA
	GroundColor   color.RGBA
	ObstacleColor color.RGBA
	Background    color.RGBA
	PauseOverlay  color.RGBA
}

type DebugConfig struct {
	TuningFile string // Optional YAML tuning overrides; empty disables loading
	Seed       uint64 // Spawner seed; 0 picks one from the clock
	Overlay    bool   // Draw collider outlines and actor state
}

type Config struct {
	Width  int
	Height int
	TPS    int
}

var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Obstacles ObstacleConfig
var Camera CameraConfig
var Scoring ScoringConfig
var Level LevelConfig
var Render RenderConfig
var Debug DebugConfig

const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// PlayerGravity is the actor's gravity: Player.Gravity when set, otherwise the
// world default.
func PlayerGravity() float64 {
	if Player.Gravity > 0 {
		return Player.Gravity
	}
	return Physics.Gravity
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:          980.0,
		LandingThreshold: 10.0,
	}

	Player = PlayerConfig{
		Speed:             250.0,
		JumpVelocity:      500.0,
		JumpCutMultiplier: 0.5,

		Gravity: 0, // Physics.Gravity

		Health: 100.0,

		Width:  40.0,
		Height: 50.0,

		SpawnX: 0.0,
		SpawnY: 100.0,
	}

	Obstacles = ObstacleConfig{
		SpawnInterval: 2.0,

		SpawnX:    700.0, // right side of the screen
		SpawnYMin: -200.0,
		SpawnYMax: 150.0,

		WidthMin:  30.0,
		WidthMax:  60.0,
		HeightMin: 30.0,
		HeightMax: 60.0,

		SpeedMin: 100.0,
		SpeedMax: 250.0,

		DespawnX: -800.0, // left side of the screen
		Damage:   10.0,
	}

	Camera = CameraConfig{
		TargetFramerate: 60.0,
		MinSmoothing:    0.01,
		MaxSmoothing:    1.0,
		Smoothing:       0.05,
		OffsetX:         0.0,
		OffsetY:         50.0,
	}

	Scoring = ScoringConfig{
		ObstacleContactPoints: 10,
	}

	Level = LevelConfig{
		Path:                 "levels/default.tmx",
		FloatingTravel:       96.0,
		FloatingPeriod:       2.0,
		HighScoreStorageName: "skyhop",
	}

	Render = RenderConfig{
		PlayerColor:   color.RGBA{R: 51, G: 153, B: 255, A: 255},
		PlatformColor: color.RGBA{R: 77, G: 128, B: 77, A: 255},
		GroundColor:   color.RGBA{R: 102, G: 77, B: 51, A: 255},
		ObstacleColor: color.RGBA{R: 204, G: 51, B: 51, A: 255},
		Background:    color.RGBA{R: 20, G: 24, B: 32, A: 255},
		PauseOverlay:  color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}
}
