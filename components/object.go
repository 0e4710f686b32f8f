package components

import (
	"github.com/automoto/ambush/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's footprint in the ground-plane collision space.
// Object X maps to world X and object Y maps to world Z.
type ObjectData struct {
	*resolv.Object
}

// CenterOn moves the footprint so it is centered under p and refreshes its
// cell membership.
func (o *ObjectData) CenterOn(p gamemath.Vec3) {
	o.X = p.X - o.W/2
	o.Y = p.Z - o.H/2
	o.Update()
}

// Touching returns the objects carrying tag whose footprints would overlap
// this one after moving it by (dx, dy). Space cells only narrow the search.
func (o *ObjectData) Touching(dx, dy float64, tag string) []*resolv.Object {
	check := o.Check(dx, dy, tag)
	if check == nil {
		return nil
	}
	var out []*resolv.Object
	for _, other := range check.ObjectsByTags(tag) {
		if other == o.Object {
			continue
		}
		if o.X+dx < other.X+other.W && other.X < o.X+dx+o.W &&
			o.Y+dy < other.Y+other.H && other.Y < o.Y+dy+o.H {
			out = append(out, other)
		}
	}
	return out
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
