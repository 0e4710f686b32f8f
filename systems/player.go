package systems

import (
	"math"

	"github.com/automoto/ambush/components"
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/automoto/ambush/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers moves every player along its input direction on the ground
// plane. Enemies block movement and the level edge clamps it.
func UpdatePlayers(ecs *ecs.ECS) {
	clock := GetClock(ecs)
	if clock == nil {
		return
	}
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		updateSinglePlayer(ecs, e, clock.Tick)
	})
}

func updateSinglePlayer(ecs *ecs.ECS, e *donburi.Entry, dt float64) {
	player := components.Player.Get(e)
	transform := components.Transform.Get(e)
	obj := components.Object.Get(e)

	dir := gamemath.Vec3{
		X: gamemath.Clamp(player.MoveX, -1, 1),
		Z: gamemath.Clamp(player.MoveZ, -1, 1),
	}
	if dir.Len() > 1 {
		dir = dir.Normalized()
	}
	if dir == gamemath.Zero {
		return
	}

	step := dir.Scale(player.Speed * dt)

	// Resolve each axis separately so the player slides along enemies. A
	// player already overlapping an enemy (it stepped onto them) walks free.
	if len(obj.Touching(0, 0, tags.ResolvEnemy)) == 0 {
		if step.X != 0 && len(obj.Touching(step.X, 0, tags.ResolvEnemy)) > 0 {
			step.X = 0
		}
		if step.Z != 0 && len(obj.Touching(0, step.Z, tags.ResolvEnemy)) > 0 {
			step.Z = 0
		}
	}

	pos := transform.Pos.Add(step)
	if level := GetLevel(ecs); level != nil {
		pos.X = gamemath.Clamp(pos.X, 0, level.Width)
		pos.Z = gamemath.Clamp(pos.Z, 0, level.Depth)
	}

	transform.Pos = pos
	transform.Yaw = math.Atan2(dir.X, dir.Z)
	obj.CenterOn(pos)
}
