package components

import "github.com/yohamta/donburi"

// DamageEventData is attached to an entity that took a hit this tick and
// consumed by UpdateDamage.
type DamageEventData struct {
	Amount   int
	Attacker donburi.Entity
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
