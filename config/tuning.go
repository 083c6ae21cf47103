package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Range is an inclusive-min numeric range read from a tuning file.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Tuning is the on-disk override set for gameplay constants. Zero-valued
// sections are left untouched when applied.
type Tuning struct {
	Player struct {
		Speed             *float64 `yaml:"speed"`
		JumpVelocity      *float64 `yaml:"jumpVelocity"`
		JumpCutMultiplier *float64 `yaml:"jumpCutMultiplier"`
		Gravity           *float64 `yaml:"gravity"`
		Health            *float64 `yaml:"health"`
	} `yaml:"player"`

	Physics struct {
		Gravity          *float64 `yaml:"gravity"`
		LandingThreshold *float64 `yaml:"landingThreshold"`
	} `yaml:"physics"`

	Obstacles struct {
		SpawnInterval *float64 `yaml:"spawnInterval"`
		SpawnX        *float64 `yaml:"spawnX"`
		SpawnY        *Range   `yaml:"spawnY"`
		Width         *Range   `yaml:"width"`
		Height        *Range   `yaml:"height"`
		Speed         *Range   `yaml:"speed"`
		DespawnX      *float64 `yaml:"despawnX"`
		Damage        *float64 `yaml:"damage"`
	} `yaml:"obstacles"`

	Camera struct {
		Smoothing *float64 `yaml:"smoothing"`
		OffsetX   *float64 `yaml:"offsetX"`
		OffsetY   *float64 `yaml:"offsetY"`
	} `yaml:"camera"`

	Scoring struct {
		ObstacleContactPoints *uint32 `yaml:"obstacleContactPoints"`
	} `yaml:"scoring"`
}

var ErrInvalidTuning = errors.New("invalid tuning")

// LoadTuning reads and validates a YAML tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

// ParseTuning decodes and validates YAML tuning data.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks each range independently. Bounds are not cross-checked
// against each other beyond min <= max.
func (t *Tuning) Validate() error {
	if err := t.validateFinite(); err != nil {
		return err
	}

	ranges := []struct {
		name string
		r    *Range
	}{
		{"obstacles.spawnY", t.Obstacles.SpawnY},
		{"obstacles.width", t.Obstacles.Width},
		{"obstacles.height", t.Obstacles.Height},
		{"obstacles.speed", t.Obstacles.Speed},
	}
	for _, rg := range ranges {
		if rg.r != nil && rg.r.Min > rg.r.Max {
			return fmt.Errorf("%w: %s min(%.1f) > max(%.1f)", ErrInvalidTuning, rg.name, rg.r.Min, rg.r.Max)
		}
	}

	if w := t.Obstacles.Width; w != nil && w.Min <= 0 {
		return fmt.Errorf("%w: obstacles.width must be positive", ErrInvalidTuning)
	}
	if h := t.Obstacles.Height; h != nil && h.Min <= 0 {
		return fmt.Errorf("%w: obstacles.height must be positive", ErrInvalidTuning)
	}
	if iv := t.Obstacles.SpawnInterval; iv != nil && *iv <= 0 {
		return fmt.Errorf("%w: obstacles.spawnInterval must be positive", ErrInvalidTuning)
	}
	if hp := t.Player.Health; hp != nil && *hp <= 0 {
		return fmt.Errorf("%w: player.health must be positive", ErrInvalidTuning)
	}
	return nil
}

// Apply writes the overrides present in t over the package-level config.
func (t *Tuning) Apply() {
	setFloat(&Player.Speed, t.Player.Speed)
	setFloat(&Player.JumpVelocity, t.Player.JumpVelocity)
	setFloat(&Player.JumpCutMultiplier, t.Player.JumpCutMultiplier)
	setFloat(&Player.Gravity, t.Player.Gravity)
	setFloat(&Player.Health, t.Player.Health)

	setFloat(&Physics.Gravity, t.Physics.Gravity)
	setFloat(&Physics.LandingThreshold, t.Physics.LandingThreshold)

	setFloat(&Obstacles.SpawnInterval, t.Obstacles.SpawnInterval)
	setFloat(&Obstacles.SpawnX, t.Obstacles.SpawnX)
	setRange(&Obstacles.SpawnYMin, &Obstacles.SpawnYMax, t.Obstacles.SpawnY)
	setRange(&Obstacles.WidthMin, &Obstacles.WidthMax, t.Obstacles.Width)
	setRange(&Obstacles.HeightMin, &Obstacles.HeightMax, t.Obstacles.Height)
	setRange(&Obstacles.SpeedMin, &Obstacles.SpeedMax, t.Obstacles.Speed)
	setFloat(&Obstacles.DespawnX, t.Obstacles.DespawnX)
	setFloat(&Obstacles.Damage, t.Obstacles.Damage)

	setFloat(&Camera.Smoothing, t.Camera.Smoothing)
	setFloat(&Camera.OffsetX, t.Camera.OffsetX)
	setFloat(&Camera.OffsetY, t.Camera.OffsetY)

	if t.Scoring.ObstacleContactPoints != nil {
		Scoring.ObstacleContactPoints = *t.Scoring.ObstacleContactPoints
	}
}

type namedValue struct {
	name string
	v    *float64
}

// validateFinite rejects .nan and .inf, which pass every ordered comparison
// below.
func (t *Tuning) validateFinite() error {
	values := []namedValue{
		{"player.speed", t.Player.Speed},
		{"player.jumpVelocity", t.Player.JumpVelocity},
		{"player.jumpCutMultiplier", t.Player.JumpCutMultiplier},
		{"player.gravity", t.Player.Gravity},
		{"player.health", t.Player.Health},
		{"physics.gravity", t.Physics.Gravity},
		{"physics.landingThreshold", t.Physics.LandingThreshold},
		{"obstacles.spawnInterval", t.Obstacles.SpawnInterval},
		{"obstacles.spawnX", t.Obstacles.SpawnX},
		{"obstacles.despawnX", t.Obstacles.DespawnX},
		{"obstacles.damage", t.Obstacles.Damage},
		{"camera.smoothing", t.Camera.Smoothing},
		{"camera.offsetX", t.Camera.OffsetX},
		{"camera.offsetY", t.Camera.OffsetY},
	}
	ranges := map[string]*Range{
		"obstacles.spawnY": t.Obstacles.SpawnY,
		"obstacles.width":  t.Obstacles.Width,
		"obstacles.height": t.Obstacles.Height,
		"obstacles.speed":  t.Obstacles.Speed,
	}
	for name, r := range ranges {
		if r != nil {
			values = append(values, namedValue{name + ".min", &r.Min}, namedValue{name + ".max", &r.Max})
		}
	}

	for _, nv := range values {
		if nv.v != nil && (math.IsNaN(*nv.v) || math.IsInf(*nv.v, 0)) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidTuning, nv.name)
		}
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setRange(min, max *float64, r *Range) {
	if r != nil {
		*min = r.Min
		*max = r.Max
	}
}
