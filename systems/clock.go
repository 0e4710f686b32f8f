package systems

import (
	"github.com/automoto/ambush/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock counts simulated frames. It runs first in the pipeline.
func UpdateClock(ecs *ecs.ECS) {
	if clock := GetClock(ecs); clock != nil {
		clock.Frame++
		clock.Elapsed += clock.Tick
	}
}

func GetClock(ecs *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry)
}
