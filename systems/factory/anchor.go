package factory

import (
	"github.com/automoto/rtscam/archetypes"
	"github.com/automoto/rtscam/components"
	"github.com/automoto/rtscam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AnchorSize is the anchor's footprint in world units.
const AnchorSize = 0.5

// CreateAnchor spawns the anchor centred on world position (x, z).
func CreateAnchor(ecs *ecs.ECS, x, z float64) *donburi.Entry {
	anchor := archetypes.Anchor.Spawn(ecs)

	size := ToSpace(AnchorSize)
	obj := resolv.NewObject(ToSpace(x)-size/2, ToSpace(z)-size/2, size, size, tags.ResolvAnchor)
	obj.Data = anchor // Link for O(1) lookup

	components.Object.SetValue(anchor, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return anchor
}

// AnchorPosition returns the world position of the anchor's centre.
func AnchorPosition(obj *resolv.Object) (x, z float64) {
	return ToWorld(obj.X + obj.W/2), ToWorld(obj.Y + obj.H/2)
}

// PlaceAnchor moves the anchor so its centre sits on world position (x, z).
func PlaceAnchor(obj *resolv.Object, x, z float64) {
	obj.X = ToSpace(x) - obj.W/2
	obj.Y = ToSpace(z) - obj.H/2
	obj.Update()
}
