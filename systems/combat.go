package systems

import (
	"github.com/automoto/ambush/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDamage applies the damage queued on entities this tick.
func UpdateDamage(ecs *ecs.ECS) {
	var hit []*donburi.Entry
	for e := range components.DamageEvent.Iter(ecs.World) {
		hit = append(hit, e)
	}

	for _, e := range hit {
		dmg := components.DamageEvent.Get(e)
		if e.HasComponent(components.Health) {
			hp := components.Health.Get(e)
			hp.Current -= dmg.Amount
			if hp.Current < 0 {
				hp.Current = 0
			}
		}
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}
}
