package components

import (
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's world placement. Yaw rotates around +Y; at
// zero the entity faces +Z with +X on its right.
type TransformData struct {
	Pos gamemath.Vec3
	Yaw float64
}

func (t *TransformData) Position() gamemath.Vec3 {
	return t.Pos
}

func (t *TransformData) SetPosition(p gamemath.Vec3) {
	t.Pos = p
}

func (t *TransformData) Right() gamemath.Vec3 {
	return gamemath.YawRight(t.Yaw)
}

func (t *TransformData) Forward() gamemath.Vec3 {
	return gamemath.YawForward(t.Yaw)
}

var Transform = donburi.NewComponentType[TransformData]()
