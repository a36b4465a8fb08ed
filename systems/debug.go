package systems

import (
	"fmt"

	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/fonts"
	"github.com/automoto/rtscam/systems/factory"
	"github.com/automoto/rtscam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	// Draw collision objects projected onto the ground.
	if view, ok := currentView(e, screen); ok {
		if spaceEntry, ok := components.Space.First(e.World); ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				if !obj.HasTags(tags.ResolvSolid) {
					continue
				}
				drawRect(screen, view,
					factory.ToWorld(obj.X), factory.ToWorld(obj.Y),
					factory.ToWorld(obj.W), factory.ToWorld(obj.H),
					0, cfg.HUD.WallColor)
			}
		}
	}

	lines := debugLines(e)
	face := fonts.HUDSmall.Get()
	x := screen.Bounds().Dx() - 260
	y := cfg.HUD.Margin + cfg.HUD.LineHeight
	for _, line := range lines {
		text.Draw(screen, line, face, x, int(y), cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}
}

// debugLines describes the camera state, one value per line.
func debugLines(e *ecs.ECS) []string {
	var lines []string

	if entry, ok := components.CameraController.First(e.World); ok {
		ctrl := components.CameraController.Get(entry)
		o := ctrl.FollowOffset
		lines = append(lines,
			fmt.Sprintf("offset   %6.2f %6.2f %6.2f", o.X(), o.Y(), o.Z()),
			fmt.Sprintf("zoom t   %.2f", ctrl.ZoomFraction),
			fmt.Sprintf("rotate t %.2f", ctrl.RotationFraction),
		)
		if ctrl.Degraded {
			lines = append(lines, "rig missing: zoom/rotate off")
		}
	}

	if entry, ok := tags.Anchor.First(e.World); ok {
		anchor := components.Anchor.Get(entry)
		x, z := factory.AnchorPosition(components.Object.Get(entry).Object)
		lines = append(lines,
			fmt.Sprintf("pan      %6.2f %6.2f", anchor.Pan.X, anchor.Pan.Y),
			fmt.Sprintf("anchor   %6.2f %6.2f", x, z),
		)
		if components.Recenter.Get(entry).Active {
			lines = append(lines, "recentering")
		}
	}

	lines = append(lines, fmt.Sprintf("tps      %.1f", ebiten.ActualTPS()))
	return lines
}
