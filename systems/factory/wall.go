package factory

import (
	"github.com/automoto/rtscam/archetypes"
	"github.com/automoto/rtscam/components"
	"github.com/automoto/rtscam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall spawns a solid box. Arguments are world units.
func CreateWall(ecs *ecs.ECS, x, z, w, d float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(ToSpace(x), ToSpace(z), ToSpace(w), ToSpace(d), tags.ResolvSolid)
	obj.Data = wall

	components.Object.SetValue(wall, components.ObjectData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}

// CreateBounds lines the inside edge of a width x depth field with walls of
// the given thickness so the anchor cannot leave it.
func CreateBounds(ecs *ecs.ECS, width, depth, thickness float64) []*donburi.Entry {
	return []*donburi.Entry{
		CreateWall(ecs, 0, 0, width, thickness),               // north
		CreateWall(ecs, 0, depth-thickness, width, thickness), // south
		CreateWall(ecs, 0, 0, thickness, depth),               // west
		CreateWall(ecs, width-thickness, 0, thickness, depth), // east
	}
}
