package components

import (
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectileData struct {
	Owner    donburi.Entity
	Velocity gamemath.Vec3
	Damage   int
	Radius   float64
	TTL      float64 // seconds left before the projectile expires
}

var Projectile = donburi.NewComponentType[ProjectileData]()
