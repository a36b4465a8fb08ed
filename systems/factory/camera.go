package factory

import (
	"github.com/automoto/rtscam/archetypes"
	"github.com/automoto/rtscam/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera entity with its rig set to offset. The
// controller reads the offset back from the rig on its first tick.
func CreateCamera(ecs *ecs.ECS, offset mgl64.Vec3) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Rig.SetValue(camera, components.RigData{FollowOffset: offset})
	return camera
}
