package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObstacleParams is the rolled attribute set for one obstacle.
type ObstacleParams struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Damage        float64
}

// RollObstacle draws obstacle parameters from the configured playfield ranges.
func RollObstacle(s components.SpawnerData) ObstacleParams {
	o := cfg.Obstacles
	return ObstacleParams{
		X:      o.SpawnX,
		Y:      s.Uniform(o.SpawnYMin, o.SpawnYMax),
		Width:  s.Uniform(o.WidthMin, o.WidthMax),
		Height: s.Uniform(o.HeightMin, o.HeightMax),
		Speed:  s.Uniform(o.SpeedMin, o.SpeedMax),
		Damage: o.Damage,
	}
}

// CreateObstacle spawns a hazard drifting left at p.Speed.
func CreateObstacle(w donburi.World, p ObstacleParams) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(w)
	components.Transform.SetValue(obstacle, components.TransformData{
		Position: math.Vec2{X: p.X, Y: p.Y},
	})
	components.BoxCollider.SetValue(obstacle, components.NewBoxCollider(p.Width, p.Height))
	components.AutoMove.SetValue(obstacle, components.AutoMoveLeft(p.Speed))
	components.DamageOnContact.SetValue(obstacle, components.NewDamageOnContact(p.Damage))
	return obstacle
}
