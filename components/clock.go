package components

import "github.com/yohamta/donburi"

// ClockData is the singleton fixed-timestep clock.
type ClockData struct {
	Tick    float64 // seconds per tick
	Frame   uint64
	Elapsed float64 // simulated seconds
}

var Clock = donburi.NewComponentType[ClockData]()
