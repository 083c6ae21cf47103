package factory

import (
	"github.com/automoto/skyhop/archetypes"
	"github.com/automoto/skyhop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the main camera at (x, y) with no target.
func CreateCamera(w donburi.World, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Transform.SetValue(camera, components.TransformData{
		Position: math.Vec2{X: x, Y: y},
	})
	follow := components.CameraFollowData{}
	follow.SetSmoothing(1)
	components.CameraFollow.SetValue(camera, follow)
	return camera
}

// AttachCameraFollow points the camera at target using the configured
// offset and smoothing.
func AttachCameraFollow(camera *donburi.Entry, target donburi.Entity) {
	components.CameraFollow.SetValue(camera, components.NewCameraFollow(target))
}
