package sim

import (
	"github.com/automoto/ambush/components"
	"github.com/automoto/ambush/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// NetEnemy is the wire and draw view of an enemy entry.
func NetEnemy(e *donburi.Entry) netcomponents.NetEnemyData {
	t := components.Transform.Get(e)
	enemy := components.Enemy.Get(e)
	c := enemy.Controller

	initial, attack := c.InitialPosition(), c.AttackPosition()
	return netcomponents.NetEnemyData{
		X:        t.Pos.X,
		Y:        t.Pos.Y,
		Z:        t.Pos.Z,
		Yaw:      t.Yaw,
		TypeName: enemy.TypeName,
		State:    int(c.State()),
		Health:   components.Health.Get(e).Current,
		InitialX: initial.X,
		InitialZ: initial.Z,
		AttackX:  attack.X,
		AttackZ:  attack.Z,
		Range:    c.Tuning().ActivationRange,
	}
}

// NetPlayer is the wire and draw view of a player entry.
func NetPlayer(e *donburi.Entry) netcomponents.NetPlayerData {
	t := components.Transform.Get(e)
	return netcomponents.NetPlayerData{
		X:      t.Pos.X,
		Y:      t.Pos.Y,
		Z:      t.Pos.Z,
		Yaw:    t.Yaw,
		Name:   components.Player.Get(e).Name,
		Health: components.Health.Get(e).Current,
	}
}

func NetProjectile(e *donburi.Entry) netcomponents.NetProjectileData {
	t := components.Transform.Get(e)
	p := components.Projectile.Get(e)
	return netcomponents.NetProjectileData{
		X:      t.Pos.X,
		Y:      t.Pos.Y,
		Z:      t.Pos.Z,
		VelX:   p.Velocity.X,
		VelY:   p.Velocity.Y,
		VelZ:   p.Velocity.Z,
		Radius: p.Radius,
	}
}
