package components

import (
	stdmath "math"

	"github.com/automoto/skyhop/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraFollowData tracks a target entity without owning it. Smoothing is
// normalized into [MinSmoothing, MaxSmoothing] when assigned.
type CameraFollowData struct {
	Target    donburi.Entity
	HasTarget bool
	Offset    math.Vec2
	smoothing float64
}

func NewCameraFollow(target donburi.Entity) CameraFollowData {
	c := CameraFollowData{
		Target:    target,
		HasTarget: true,
		Offset:    math.Vec2{X: config.Camera.OffsetX, Y: config.Camera.OffsetY},
	}
	c.SetSmoothing(config.Camera.Smoothing)
	return c
}

// SetSmoothing stores s clamped into the configured range. Lower values
// converge faster. NaN is treated as MaxSmoothing, which holds the camera still.
func (c *CameraFollowData) SetSmoothing(s float64) {
	switch {
	case stdmath.IsNaN(s):
		s = config.Camera.MaxSmoothing
	case s < config.Camera.MinSmoothing:
		s = config.Camera.MinSmoothing
	case s > config.Camera.MaxSmoothing:
		s = config.Camera.MaxSmoothing
	}
	c.smoothing = s
}

func (c CameraFollowData) Smoothing() float64 {
	return c.smoothing
}

// SetTarget points the camera at e; ClearTarget stops following.
func (c *CameraFollowData) SetTarget(e donburi.Entity) {
	c.Target = e
	c.HasTarget = true
}

func (c *CameraFollowData) ClearTarget() {
	c.HasTarget = false
}

var CameraFollow = donburi.NewComponentType[CameraFollowData]()
