package components

import (
	"github.com/automoto/rtscam/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraControllerData is the controller's own view of the rig. The camera
// systems only ever touch this; ApplyCameraRig copies FollowOffset into the
// rig at the end of the tick.
type CameraControllerData struct {
	FollowOffset      mgl64.Vec3 // Live offset from the anchor to the eye
	StartingOffset    mgl64.Vec3 // Captured from the rig once, never written again
	MaxRotationAmount float64    // |StartingOffset.z|

	Zoom     gamemath.WindowTimer
	Rotation gamemath.WindowTimer

	// Last computed fractions, kept for the debug overlay
	ZoomFraction     float64
	RotationFraction float64

	Initialized bool
	Degraded    bool // No rig was found at init; zoom and rotation are disabled
}

var CameraController = donburi.NewComponentType[CameraControllerData]()

// RigData is the camera rig the renderer follows. It exposes a single mutable
// follow offset, measured from the anchor to the eye.
type RigData struct {
	FollowOffset mgl64.Vec3
}

var Rig = donburi.NewComponentType[RigData]()
