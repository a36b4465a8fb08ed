package systems

import (
	"log"
	"math"

	"github.com/automoto/rtscam/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InitCameraController captures the rig's follow offset as the starting
// offset. It runs once; later calls are no-ops. A camera without a rig is
// logged and left degraded: panning keeps working, zoom and rotation do not.
func InitCameraController(e *ecs.ECS) {
	entry, ok := components.CameraController.First(e.World)
	if !ok {
		return
	}
	initCameraController(e, entry)
}

func initCameraController(e *ecs.ECS, entry *donburi.Entry) *components.CameraControllerData {
	ctrl := components.CameraController.Get(entry)
	if ctrl.Initialized {
		return ctrl
	}
	ctrl.Initialized = true

	if !entry.HasComponent(components.Rig) {
		log.Printf("Warning: camera has no rig component; zoom and rotation disabled")
		ctrl.Degraded = true
		return ctrl
	}

	offset := components.Rig.Get(entry).FollowOffset
	ctrl.FollowOffset = offset
	ctrl.StartingOffset = offset
	ctrl.MaxRotationAmount = math.Abs(offset.Z())

	now := getOrCreateClock(e).Now
	ctrl.Zoom.Restart(now)
	ctrl.Rotation.Restart(now)
	return ctrl
}

// activeCameraController returns the controller if it can drive the rig.
func activeCameraController(e *ecs.ECS) (*components.CameraControllerData, bool) {
	entry, ok := components.CameraController.First(e.World)
	if !ok {
		return nil, false
	}
	ctrl := initCameraController(e, entry)
	if ctrl.Degraded {
		return nil, false
	}
	return ctrl, true
}

// ApplyCameraRig writes the controller's offset into the rig. Must run AFTER
// every system that moves the follow offset; it is the only writer of the rig.
func ApplyCameraRig(e *ecs.ECS) {
	entry, ok := components.CameraController.First(e.World)
	if !ok {
		return
	}
	ctrl := components.CameraController.Get(entry)
	if !ctrl.Initialized || ctrl.Degraded {
		return
	}
	components.Rig.Get(entry).FollowOffset = ctrl.FollowOffset
}
