package systems

import (
	"math"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the main camera toward its target plus offset. The
// factor is framerate independent: smoothing is the fraction of the gap left
// after one frame at cfg.Camera.TargetFramerate.
func UpdateCamera(e *ecs.ECS) {
	camera, ok := tags.MainCamera.First(e.World)
	if !ok {
		return
	}
	follow := components.CameraFollow.Get(camera)
	if !follow.HasTarget || !e.World.Valid(follow.Target) {
		return
	}
	target := e.World.Entry(follow.Target)
	if !target.HasComponent(components.Transform) {
		return
	}

	goal := components.Transform.Get(target).Position
	goalX := goal.X + follow.Offset.X
	goalY := goal.Y + follow.Offset.Y

	t := followFactor(follow.Smoothing(), deltaSeconds(e))
	pos := &components.Transform.Get(camera).Position
	pos.X = lerp(pos.X, goalX, t)
	pos.Y = lerp(pos.Y, goalY, t)
}

func followFactor(smoothing, dt float64) float64 {
	return 1 - math.Pow(smoothing, dt*cfg.Camera.TargetFramerate)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// CameraPosition returns the main camera position, or the origin.
func CameraPosition(e *ecs.ECS) (x, y float64) {
	camera, ok := tags.MainCamera.First(e.World)
	if !ok {
		return 0, 0
	}
	pos := components.Transform.Get(camera).Position
	return pos.X, pos.Y
}
