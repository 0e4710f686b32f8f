package systems

import (
	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/components"
	"github.com/automoto/ambush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies advances every enabled enemy by one tick. The target is the
// first player in the world, looked up fresh each tick.
func UpdateEnemies(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	if clock == nil {
		return
	}

	var target ai.Target
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		target = components.Transform.Get(playerEntry)
	}

	var active []*donburi.Entry
	tags.Active.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Enemy) {
			active = append(active, e)
		}
	})

	for _, e := range active {
		// An earlier enemy's transition handler may have disabled this one.
		if !e.Valid() || !e.HasComponent(tags.Active) {
			continue
		}
		enemy := components.Enemy.Get(e)
		enemy.Controller.Step(clock.Tick, target)

		if e.Valid() && e.HasComponent(components.Object) {
			components.Object.Get(e).CenterOn(components.Transform.Get(e).Pos)
		}
	}
}
