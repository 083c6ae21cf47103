package tags

import "github.com/yohamta/donburi"

var (
	Player           = donburi.NewTag().SetName("Player")
	Platform         = donburi.NewTag().SetName("Platform")
	FloatingPlatform = donburi.NewTag().SetName("FloatingPlatform")
	Ground           = donburi.NewTag().SetName("Ground")
	Obstacle         = donburi.NewTag().SetName("Obstacle")
	MainCamera       = donburi.NewTag().SetName("MainCamera")
	Session          = donburi.NewTag().SetName("Session")
)
