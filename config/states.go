package config

// StateID identifies the actor's movement state as seen by the renderer.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jumping
	Falling
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Running:   "running",
	Jumping:   "jumping",
	Falling:   "falling",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
