package factory

import (
	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/archetypes"
	"github.com/automoto/ambush/components"
	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/automoto/ambush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a projectile at from travelling toward aim.
func CreateProjectile(ecs *ecs.ECS, owner donburi.Entity, from, aim gamemath.Vec3, weapon cfg.WeaponConfig) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)

	r := weapon.ProjectileRadius
	obj := resolv.NewObject(from.X-r, from.Z-r, 2*r, 2*r, tags.ResolvProjectile)
	obj.Data = p
	components.Object.SetValue(p, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	dir := aim.Sub(from).Normalized()
	components.Transform.SetValue(p, components.TransformData{Pos: from})
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:    owner,
		Velocity: dir.Scale(weapon.ProjectileSpeed),
		Damage:   weapon.Damage,
		Radius:   r,
		TTL:      weapon.Lifetime,
	})

	return p
}

// ProjectileWeapon is the weapon mounted on an enemy. Every Fire call spawns
// one projectile from the owner's muzzle toward the aim point.
type ProjectileWeapon struct {
	ecs    *ecs.ECS
	owner  donburi.Entity
	config cfg.WeaponConfig
}

var _ ai.Weapon = (*ProjectileWeapon)(nil)

func NewProjectileWeapon(ecs *ecs.ECS, owner donburi.Entity, config cfg.WeaponConfig) *ProjectileWeapon {
	return &ProjectileWeapon{ecs: ecs, owner: owner, config: config}
}

func (w *ProjectileWeapon) Fire(_ ai.Target, point gamemath.Vec3) {
	if !w.ecs.World.Valid(w.owner) {
		return
	}
	entry := w.ecs.World.Entry(w.owner)
	muzzle := components.Transform.Get(entry).Pos.Add(gamemath.Vec3{Y: w.config.MuzzleHeight})
	CreateProjectile(w.ecs, w.owner, muzzle, point, w.config)
}
