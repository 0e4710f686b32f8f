package systems

import (
	"github.com/automoto/ambush/components"
	"github.com/automoto/ambush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes players that ran out of health. Enemies see no player
// from the next tick on.
func UpdateDeaths(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Health.Get(e).Current <= 0 {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		components.PlayerDeathEvent.Publish(ecs.World, components.PlayerDeath{
			Player: e.Entity(),
			Name:   components.Player.Get(e).Name,
		})
		RemoveEntity(ecs, e)
	}
}
