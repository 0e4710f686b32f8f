package netcomponents

import "github.com/yohamta/donburi"

type NetEnemyData struct {
	X, Y, Z  float64
	Yaw      float64
	TypeName string // "Sentry", "Sniper", "Skirmisher"
	State    int    // ai.State
	Health   int

	// Posts of the current activation, for client-side debug drawing.
	InitialX, InitialZ float64
	AttackX, AttackZ   float64
	Range              float64
}

var NetEnemy = donburi.NewComponentType[NetEnemyData]()

// LerpNetEnemy interpolates between two enemy states
func LerpNetEnemy(from, to NetEnemyData, t float64) *NetEnemyData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	out.Z = from.Z + (to.Z-from.Z)*t
	return &out
}
