package systems

import (
	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePan samples the pan vector and hands it to the anchor as a velocity.
// Physics integrates it, so pan speed does not depend on the tick rate.
func UpdatePan(e *ecs.ECS) {
	anchorEntry, ok := tags.Anchor.First(e.World)
	if !ok {
		return
	}
	anchor := components.Anchor.Get(anchorEntry)
	input := getOrCreateInput(e)

	pan := PanVector(input, cfg.Camera)
	anchor.Pan = pan

	if anchorEntry.HasComponent(components.Recenter) {
		recenter := components.Recenter.Get(anchorEntry)
		if recenter.Active {
			if pan.X == 0 && pan.Y == 0 {
				anchor.Velocity = math.Vec2{}
				return
			}
			// Any pan input takes the anchor back from the recenter glide.
			recenter.Active = false
		}
	}

	anchor.Velocity = pan
}

// PanVector sums keyboard and edge-pan contributions. The result is not
// normalised, so diagonals are faster than straight pans.
func PanVector(input *components.InputData, cam cfg.CameraConfig) math.Vec2 {
	kb := KeyboardPan(input, cam)
	edge := EdgePan(input, cam)
	return math.Vec2{X: kb.X + edge.X, Y: kb.Y + edge.Y}
}

// KeyboardPan adds KeyboardPanSpeed for every held direction. Opposite
// directions cancel out.
func KeyboardPan(input *components.InputData, cam cfg.CameraConfig) math.Vec2 {
	var move math.Vec2

	if input.Current[cfg.ActionPanUp] {
		move.Y += cam.KeyboardPanSpeed
	}
	if input.Current[cfg.ActionPanLeft] {
		move.X -= cam.KeyboardPanSpeed
	}
	if input.Current[cfg.ActionPanDown] {
		move.Y -= cam.KeyboardPanSpeed
	}
	if input.Current[cfg.ActionPanRight] {
		move.X += cam.KeyboardPanSpeed
	}

	return move
}

// EdgePan pans when the cursor is within EdgePanSize pixels of a screen edge.
// The left edge wins over the right and the top over the bottom when the
// margins overlap on a tiny window.
func EdgePan(input *components.InputData, cam cfg.CameraConfig) math.Vec2 {
	var move math.Vec2

	if !cam.EnableEdgePan || !input.CursorValid {
		return move
	}

	x, y := input.CursorX, input.CursorY
	margin := cam.EdgePanSize

	if x <= margin {
		move.X -= cam.MousePanSpeed
	} else if x >= input.ScreenW-margin {
		move.X += cam.MousePanSpeed
	}

	if y >= input.ScreenH-margin {
		move.Y += cam.MousePanSpeed
	} else if y <= margin {
		move.Y -= cam.MousePanSpeed
	}

	return move
}
