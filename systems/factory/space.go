package factory

import (
	"math"

	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/archetypes"
	"github.com/automoto/ambush/components"
	"github.com/automoto/ambush/registry"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the ground-plane collision space. Width and depth are in
// meters and rounded up to whole cells.
func CreateSpace(ecs *ecs.ECS, width, depth float64, cellSize int) *donburi.Entry {
	if cellSize <= 0 {
		cellSize = 1
	}
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(math.Ceil(width))+cellSize,
		int(math.Ceil(depth))+cellSize,
		cellSize,
		cellSize,
	)
	components.Space.Set(space, spaceData)
	return space
}

func CreateClock(ecs *ecs.ECS, tick float64) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{Tick: tick})
	return clock
}

func CreateRoster(ecs *ecs.ECS) *donburi.Entry {
	roster := archetypes.Roster.Spawn(ecs)
	components.Roster.SetValue(roster, components.RosterData{
		Enemies: registry.New[*ai.Controller](),
	})
	return roster
}

func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{Current: level})
	return entry
}
