package systems

import (
	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/components"
	"github.com/automoto/ambush/registry"
	"github.com/automoto/ambush/systems/factory"
	"github.com/automoto/ambush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActivateEnemy enables an enemy: it gets the Active tag, its controller is
// registered in the roster and bound to the enemy's transform and a
// projectile weapon. Activating an enabled enemy is a no-op.
func ActivateEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Enemy) || e.HasComponent(tags.Active) {
		return
	}
	enemy := components.Enemy.Get(e)

	var weapon ai.Weapon
	if enemy.TypeConfig != nil {
		weapon = factory.NewProjectileWeapon(ecs, e.Entity(), enemy.TypeConfig.Weapon)
	}

	e.AddComponent(tags.Active)
	if roster := GetRoster(ecs); roster != nil {
		roster.Register(enemy.Controller)
	}
	enemy.Controller.Activate(components.Transform.Get(e), weapon)
}

// DeactivateEnemy disables an enemy. The cycle in progress is abandoned and
// the controller leaves the roster. Deactivating a disabled enemy is a no-op.
func DeactivateEnemy(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(tags.Active) {
		return
	}
	enemy := components.Enemy.Get(e)

	e.RemoveComponent(tags.Active)
	if roster := GetRoster(ecs); roster != nil {
		roster.Unregister(enemy.Controller)
	}
	enemy.Controller.Deactivate()
}

// GetRoster returns the registry of enabled enemy controllers, or nil before
// the roster entity exists.
func GetRoster(ecs *ecs.ECS) *registry.Registry[*ai.Controller] {
	entry, ok := components.Roster.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Roster.Get(entry).Enemies
}

// RemoveEntity removes an entity and its collision object.
func RemoveEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
				components.Space.Get(spaceEntry).Remove(obj.Object)
			}
		}
	}
	ecs.World.Remove(e.Entity())
}
