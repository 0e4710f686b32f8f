package systems

import (
	"testing"

	"github.com/automoto/ambush/components"
	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/automoto/ambush/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testTick = 0.125

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	level := &leveldata.Level{Name: "test", Width: 40, Depth: 40}
	factory.CreateClock(e, testTick)
	factory.CreateRoster(e)
	factory.CreateLevel(e, level)
	factory.CreateSpace(e, level.Width, level.Depth, cfg.Sim.CellSize)
	return e
}

func spawnEnemy(e *ecs.ECS, pos gamemath.Vec3, tuning cfg.Tuning) *donburi.Entry {
	spawn := leveldata.EnemySpawn{
		Type:            "Sentry",
		Position:        pos,
		ActivationRange: &tuning.ActivationRange,
		AttackDuration:  &tuning.AttackDuration,
		HideDuration:    &tuning.HideDuration,
	}
	return factory.CreateEnemy(e, spawn, nil)
}

func enemyController(entry *donburi.Entry) *components.EnemyData {
	return components.Enemy.Get(entry)
}

func createPlayerAt(e *ecs.ECS, pos gamemath.Vec3) *donburi.Entry {
	return factory.CreatePlayer(e, "tester", pos)
}
