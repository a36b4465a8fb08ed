package systems

import (
	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/systems/factory"
	"github.com/automoto/rtscam/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRecenter starts a glide back to the map's spawn point when the
// recenter key is pressed and advances it every tick. Must run AFTER
// UpdatePan, which cancels the glide on pan input.
func UpdateRecenter(e *ecs.ECS) {
	anchorEntry, ok := tags.Anchor.First(e.World)
	if !ok {
		return
	}
	recenter := components.Recenter.Get(anchorEntry)
	obj := components.Object.Get(anchorEntry)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionRecenter).JustPressed {
		if levelEntry, ok := components.Level.First(e.World); ok {
			spawn := components.Level.Get(levelEntry).Field.Spawn
			startRecenter(anchorEntry, spawn.X, spawn.Z)
		}
	}

	if !recenter.Active {
		return
	}

	dt := float32(getOrCreateClock(e).Delta)
	x, xDone := recenter.X.Update(dt)
	z, zDone := recenter.Z.Update(dt)
	factory.PlaceAnchor(obj.Object, float64(x), float64(z))

	if xDone && zDone {
		recenter.Active = false
	}
}

// startRecenter points the anchor's recenter tweens from its current
// position to (x, z).
func startRecenter(anchorEntry *donburi.Entry, x, z float64) {
	recenter := components.Recenter.Get(anchorEntry)
	obj := components.Object.Get(anchorEntry)
	fromX, fromZ := factory.AnchorPosition(obj.Object)

	duration := float32(cfg.Camera.RecenterDuration)
	recenter.X = gween.New(float32(fromX), float32(x), duration, ease.OutCubic)
	recenter.Z = gween.New(float32(fromZ), float32(z), duration, ease.OutCubic)
	recenter.Active = true

	components.Anchor.Get(anchorEntry).Velocity.X = 0
	components.Anchor.Get(anchorEntry).Velocity.Y = 0
}
