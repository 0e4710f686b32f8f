package netcomponents

import "github.com/yohamta/donburi"

type NetPlayerData struct {
	X, Y, Z      float64
	Yaw          float64
	Name         string
	Health       int
	LastSequence uint32 // Last input sequence applied by the server
}

var NetPlayer = donburi.NewComponentType[NetPlayerData]()

// LerpNetPlayer interpolates between two player states
func LerpNetPlayer(from, to NetPlayerData, t float64) *NetPlayerData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	out.Z = from.Z + (to.Z-from.Z)*t
	return &out
}
