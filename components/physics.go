package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// VelocityData is a signed velocity in units per second.
type VelocityData struct {
	math.Vec2
}

// SpeedData is the horizontal speed applied while a direction is held.
type SpeedData struct {
	Value float64
}

// GravityData is a downward acceleration in units per second squared.
type GravityData struct {
	Value float64
}

// GroundedData carries the two phases of the grounded flag. Was is latched at
// the start of a tick and read by jump and gravity; Now is written by the
// platform collision stage later in the same tick. Jump and gravity therefore
// always see the previous tick's resolution. Platform is the entity landed
// on and is only meaningful while Now (or, next tick, Was) is true.
type GroundedData struct {
	Was      bool
	Now      bool
	Platform donburi.Entity
}

type JumpConfigData struct {
	JumpVelocity      float64
	JumpCutMultiplier float64
}

var (
	Velocity   = donburi.NewComponentType[VelocityData]()
	Speed      = donburi.NewComponentType[SpeedData]()
	Gravity    = donburi.NewComponentType[GravityData]()
	Grounded   = donburi.NewComponentType[GroundedData]()
	JumpConfig = donburi.NewComponentType[JumpConfigData]()
)
