package systems

import (
	cfg "github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCameraZoom moves the follow offset's height toward the zoomed-in or
// resting height. The zoom window restarts whenever the zoom key changes
// state, and each tick interpolates from the live offset, so toggling
// mid-zoom turns around smoothly instead of snapping.
func UpdateCameraZoom(e *ecs.ECS) {
	ctrl, ok := activeCameraController(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	now := getOrCreateClock(e).Now

	if changedThisTick(input, cfg.ActionZoom) {
		ctrl.Zoom.Restart(now)
	}

	t := ctrl.Zoom.Fraction(now, cfg.Camera.ZoomSpeed)
	ctrl.ZoomFraction = t

	target := ZoomTarget(ctrl.FollowOffset, ctrl.StartingOffset, input.Current[cfg.ActionZoom], cfg.Camera.MinZoomDistance)
	ctrl.FollowOffset = gamemath.Slerp(ctrl.FollowOffset, target, t)
}

// UpdateCameraRotation swings the follow offset around the anchor while a
// rotate key is held and back to the starting side when released.
func UpdateCameraRotation(e *ecs.ECS) {
	ctrl, ok := activeCameraController(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	now := getOrCreateClock(e).Now

	if changedThisTick(input, cfg.RotateActions...) {
		ctrl.Rotation.Restart(now)
	}

	t := ctrl.Rotation.Fraction(now, cfg.Camera.RotationSpeed)
	ctrl.RotationFraction = t

	target := RotationTarget(
		ctrl.FollowOffset,
		ctrl.StartingOffset,
		input.Current[cfg.ActionRotateLeft],
		input.Current[cfg.ActionRotateRight],
		ctrl.MaxRotationAmount,
	)
	ctrl.FollowOffset = gamemath.Slerp(ctrl.FollowOffset, target, t)
}

// ZoomTarget only changes the height; x and z come from the live offset.
func ZoomTarget(live, starting mgl64.Vec3, zoomHeld bool, minZoom float64) mgl64.Vec3 {
	if zoomHeld {
		return mgl64.Vec3{live.X(), minZoom, live.Z()}
	}
	return mgl64.Vec3{live.X(), starting.Y(), live.Z()}
}

// RotationTarget only changes x and z; the height comes from the live offset.
// Rotating left wins when both directions are held.
func RotationTarget(live, starting mgl64.Vec3, left, right bool, maxRotation float64) mgl64.Vec3 {
	switch {
	case left:
		return mgl64.Vec3{maxRotation, live.Y(), 0}
	case right:
		return mgl64.Vec3{-maxRotation, live.Y(), 0}
	default:
		return mgl64.Vec3{starting.X(), live.Y(), starting.Z()}
	}
}
