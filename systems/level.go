package systems

import (
	"github.com/automoto/ambush/components"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the loaded level, or nil when none is loaded.
func GetLevel(ecs *ecs.ECS) *leveldata.Level {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Current
}
