package components

import (
	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Name       string                  // level object name, may be empty
	TypeName   string                  // "Sentry", "Sniper", "Skirmisher"
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Controller *ai.Controller
}

var Enemy = donburi.NewComponentType[EnemyData]()
