package components

import (
	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/registry"
	"github.com/yohamta/donburi"
)

// RosterData is the singleton holding the controllers of every enabled enemy.
type RosterData struct {
	Enemies *registry.Registry[*ai.Controller]
}

var Roster = donburi.NewComponentType[RosterData]()
