package ai

// State identifies a phase of the pop-out attack cycle.
type State int

const (
	Idle State = iota
	Approaching
	Firing
	Retreating
	Hiding
)

var stateNames = [...]string{
	Idle:        "idle",
	Approaching: "approaching",
	Firing:      "firing",
	Retreating:  "retreating",
	Hiding:      "hiding",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
