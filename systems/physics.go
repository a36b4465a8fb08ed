package systems

import (
	"github.com/automoto/rtscam/components"
	"github.com/automoto/rtscam/systems/factory"
	"github.com/automoto/rtscam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates anchor velocity over the tick and stops it at walls.
func UpdatePhysics(e *ecs.ECS) {
	dt := getOrCreateClock(e).Delta

	tags.Anchor.Each(e.World, func(entry *donburi.Entry) {
		anchor := components.Anchor.Get(entry)
		obj := components.Object.Get(entry)

		dx := factory.ToSpace(anchor.Velocity.X * dt)
		dz := factory.ToSpace(anchor.Velocity.Y * dt)

		// One axis at a time so the anchor slides along a wall instead of sticking.
		resolveAxisMovement(obj.Object, dx, 0)
		resolveAxisMovement(obj.Object, 0, dz)
		obj.Update()
	})
}

// resolveAxisMovement moves object by (dx, dy), stopping flush against the first solid in the way.
func resolveAxisMovement(object *resolv.Object, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}

	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		object.X += dx
		object.Y += dy
		return
	}

	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		object.X += dx
		object.Y += dy
		return
	}

	contact := check.ContactWithObject(solids[0])
	object.X += contact.X()
	object.Y += contact.Y()
}
