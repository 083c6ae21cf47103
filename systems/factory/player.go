package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the actor at (x, y) with the configured tuning.
func CreatePlayer(w donburi.World, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Transform.SetValue(player, components.TransformData{
		Position: math.Vec2{X: x, Y: y},
	})
	components.Velocity.SetValue(player, components.VelocityData{})
	components.Speed.SetValue(player, components.SpeedData{Value: cfg.Player.Speed})
	components.Gravity.SetValue(player, components.GravityData{Value: cfg.PlayerGravity()})
	components.Grounded.SetValue(player, components.GroundedData{})
	components.JumpConfig.SetValue(player, components.JumpConfigData{
		JumpVelocity:      cfg.Player.JumpVelocity,
		JumpCutMultiplier: cfg.Player.JumpCutMultiplier,
	})
	components.BoxCollider.SetValue(player, components.NewBoxCollider(cfg.Player.Width, cfg.Player.Height))
	components.Health.SetValue(player, components.NewHealth(cfg.Player.Health))
	components.State.SetValue(player, components.StateData{CurrentState: cfg.StateNone})

	return player
}
