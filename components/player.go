package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Name string

	// Movement input on the ground plane, each in [-1, 1]
	MoveX float64
	MoveZ float64
	Speed float64
}

var Player = donburi.NewComponentType[PlayerData]()
