package factory

import (
	"github.com/automoto/ambush/archetypes"
	"github.com/automoto/ambush/components"
	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/automoto/ambush/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, name string, pos gamemath.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := cfg.Player.Size
	obj := resolv.NewObject(pos.X-size/2, pos.Z-size/2, size, size)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.AddTags("character", tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)

	components.Transform.SetValue(player, components.TransformData{Pos: pos})
	components.Player.SetValue(player, components.PlayerData{
		Name:  name,
		Speed: cfg.Player.MoveSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	return player
}
