package systems

import (
	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// moveDirection is the net of held directions: left+right cancels to 0.
func moveDirection(input *components.InputData) float64 {
	dir := 0.0
	if input.Pressed(cfg.ActionMoveLeft) {
		dir += cfg.DirectionLeft
	}
	if input.Pressed(cfg.ActionMoveRight) {
		dir += cfg.DirectionRight
	}
	return dir
}

// UpdatePlayerMovement sets horizontal velocity from held direction and Speed.
func UpdatePlayerMovement(e *ecs.ECS) {
	session, ok := sessionEntry(e)
	if !ok {
		return
	}
	dir := moveDirection(components.Input.Get(session))

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Speed) {
			return
		}
		components.Velocity.Get(entry).X = dir * components.Speed.Get(entry).Value
	})
}

// UpdateJump starts a jump on a grounded press and cuts the remaining ascent
// when jump is released early.
func UpdateJump(e *ecs.ECS) {
	session, ok := sessionEntry(e)
	if !ok {
		return
	}
	input := components.Input.Get(session)
	pressed := input.JustPressed(cfg.ActionJump)
	released := input.TakeRelease(cfg.ActionJump)
	if !pressed && !released {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		vel := components.Velocity.Get(entry)
		jump := components.JumpConfig.Get(entry)
		grounded := components.Grounded.Get(entry)

		if pressed && grounded.Was {
			vel.Y = jump.JumpVelocity
		}
		if released && vel.Y > 0 {
			vel.Y *= jump.JumpCutMultiplier
		}
	})
}
