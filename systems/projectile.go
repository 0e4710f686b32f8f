package systems

import (
	"math"

	"github.com/automoto/ambush/components"
	"github.com/automoto/ambush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Projectiles leaving the level by more than this many meters are removed.
const projectileBoundsMargin = 5

// UpdateProjectiles moves projectiles in a straight line, expires them by
// lifetime or when they leave the level, and resolves hits against players.
func UpdateProjectiles(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	if clock == nil {
		return
	}
	level := GetLevel(ecs)

	var toRemove []*donburi.Entry

	components.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		projectile := components.Projectile.Get(e)
		transform := components.Transform.Get(e)
		obj := components.Object.Get(e)

		projectile.TTL -= clock.Tick
		if projectile.TTL <= 0 {
			toRemove = append(toRemove, e)
			return
		}

		// Sub-step so fast projectiles cannot tunnel through a player.
		travel := projectile.Velocity.Scale(clock.Tick)
		steps := 1
		if maxStep := 2 * projectile.Radius; maxStep > 0 {
			steps = max(1, int(math.Ceil(travel.Len()/maxStep)))
		}
		delta := travel.Scale(1 / float64(steps))

		for range steps {
			transform.Pos = transform.Pos.Add(delta)
			obj.CenterOn(transform.Pos)
			if checkProjectileHit(ecs, e, projectile, obj) {
				toRemove = append(toRemove, e)
				return
			}
		}

		if level != nil {
			p := transform.Pos
			if p.X < -projectileBoundsMargin || p.X > level.Width+projectileBoundsMargin ||
				p.Z < -projectileBoundsMargin || p.Z > level.Depth+projectileBoundsMargin {
				toRemove = append(toRemove, e)
			}
		}
	})

	for _, e := range toRemove {
		RemoveEntity(ecs, e)
	}
}

func checkProjectileHit(ecs *ecs.ECS, projectileEntry *donburi.Entry, projectile *components.ProjectileData, obj *components.ObjectData) bool {
	for _, playerObj := range obj.Touching(0, 0, tags.ResolvPlayer) {
		playerEntry, ok := playerObj.Data.(*donburi.Entry)
		if !ok || playerEntry == nil || !playerEntry.Valid() {
			continue
		}
		if playerEntry.HasComponent(components.DamageEvent) {
			components.DamageEvent.Get(playerEntry).Amount += projectile.Damage
		} else {
			donburi.Add(playerEntry, components.DamageEvent, &components.DamageEventData{
				Amount:   projectile.Damage,
				Attacker: projectile.Owner,
			})
		}
		components.PlayerHitEvent.Publish(ecs.World, components.PlayerHit{
			Player:   playerEntry.Entity(),
			Attacker: projectile.Owner,
			Damage:   projectile.Damage,
			Point:    components.Transform.Get(projectileEntry).Pos,
		})
		// One projectile hits one player.
		return true
	}
	return false
}
