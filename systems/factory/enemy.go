package factory

import (
	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/archetypes"
	"github.com/automoto/ambush/components"
	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/automoto/ambush/tags"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a disabled enemy from a level spawn. Tuning is layered:
// type defaults, then saved per-type tuning, then the spawn's own overrides.
// The enemy starts without the Active tag; systems.ActivateEnemy enables it.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn, saved map[string]cfg.Tuning) *donburi.Entry {
	enemyType, exists := cfg.EnemyType(spawn.Type)
	if !exists && spawn.Type != "" {
		log.Warn("unknown enemy type, using default", "type", spawn.Type, "default", cfg.Enemy.DefaultType)
	}

	enemy := archetypes.Enemy.Spawn(ecs)

	components.Transform.SetValue(enemy, components.TransformData{
		Pos: spawn.Position,
		Yaw: spawn.Yaw,
	})

	size := enemyType.Size
	obj := resolv.NewObject(spawn.Position.X-size/2, spawn.Position.Z-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags("character", tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	controller := ai.NewController(ResolveTuning(enemyType, saved, spawn))
	entity := enemy.Entity()
	typeName := enemyType.Name
	controller.OnTransition = func(from, to ai.State) {
		components.EnemyStateChanged.Publish(ecs.World, components.EnemyStateChange{
			Enemy:    entity,
			TypeName: typeName,
			From:     from,
			To:       to,
		})
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		Name:       spawn.Name,
		TypeName:   typeName,
		TypeConfig: &enemyType,
		Controller: controller,
	})
	components.Health.SetValue(enemy, components.HealthData{
		Current: enemyType.Health,
		Max:     enemyType.Health,
	})

	return enemy
}

// ResolveTuning layers the tuning sources for one spawn.
func ResolveTuning(enemyType cfg.EnemyTypeConfig, saved map[string]cfg.Tuning, spawn leveldata.EnemySpawn) cfg.Tuning {
	t := enemyType.Tuning
	if s, ok := saved[enemyType.Name]; ok {
		t = s
	}
	if spawn.ActivationRange != nil {
		t.ActivationRange = *spawn.ActivationRange
	}
	if spawn.AttackDuration != nil {
		t.AttackDuration = *spawn.AttackDuration
	}
	if spawn.HideDuration != nil {
		t.HideDuration = *spawn.HideDuration
	}
	return t.Clamped()
}
