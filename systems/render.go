package systems

import (
	"image/color"

	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/shared/leveldata"
	"github.com/automoto/rtscam/systems/factory"
	"github.com/automoto/rtscam/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// anchorMarkerSize is the half-width of the anchor cross in world units.
const anchorMarkerSize = 0.6

// DrawWorld renders the ground grid, map bounds, landmarks and anchor from the rig's point of view.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.HUD.Background)

	view, ok := currentView(e, screen)
	if !ok {
		return // No anchor yet
	}

	levelEntry, ok := components.Level.First(e.World)
	if ok {
		field := components.Level.Get(levelEntry).Field
		drawGrid(screen, view, field)
		drawRect(screen, view, 0, 0, field.Width, field.Depth, 0, cfg.HUD.BoundsColor)
		for _, lm := range field.Landmarks {
			drawLandmark(screen, view, lm)
		}
	}

	drawAnchor(e, screen, view)
}

// currentView builds the view for this frame from the anchor and the rig.
// A camera without a rig is drawn from the configured starting offset.
func currentView(e *ecs.ECS, screen *ebiten.Image) (View, bool) {
	anchorEntry, ok := tags.Anchor.First(e.World)
	if !ok {
		return View{}, false
	}
	x, z := factory.AnchorPosition(components.Object.Get(anchorEntry).Object)

	offset := cfg.Camera.StartingFollowOffset
	if camEntry, ok := components.Rig.First(e.World); ok {
		offset = components.Rig.Get(camEntry).FollowOffset
	}

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return NewView(mgl64.Vec3{x, 0, z}, offset, cfg.Camera.FOV, w, h), true
}

func drawGrid(screen *ebiten.Image, view View, field *leveldata.Field) {
	step := cfg.Map.GridSpacing
	if step <= 0 {
		return
	}
	// Short segments so lines partly behind the eye still draw their visible part.
	for x := 0.0; x <= field.Width; x += step {
		for z := 0.0; z < field.Depth; z += step {
			drawSegment(screen, view, mgl64.Vec3{x, 0, z}, mgl64.Vec3{x, 0, z + step}, 1, cfg.HUD.GridColor)
		}
	}
	for z := 0.0; z <= field.Depth; z += step {
		for x := 0.0; x < field.Width; x += step {
			drawSegment(screen, view, mgl64.Vec3{x, 0, z}, mgl64.Vec3{x + step, 0, z}, 1, cfg.HUD.GridColor)
		}
	}
}

func drawLandmark(screen *ebiten.Image, view View, lm leveldata.Landmark) {
	drawRect(screen, view, lm.X, lm.Z, lm.W, lm.D, 0, cfg.HUD.MarkColor)
	drawRect(screen, view, lm.X, lm.Z, lm.W, lm.D, lm.Height, cfg.HUD.MarkColor)
	for _, c := range [][2]float64{{lm.X, lm.Z}, {lm.X + lm.W, lm.Z}, {lm.X, lm.Z + lm.D}, {lm.X + lm.W, lm.Z + lm.D}} {
		drawSegment(screen, view, mgl64.Vec3{c[0], 0, c[1]}, mgl64.Vec3{c[0], lm.Height, c[1]}, cfg.HUD.LineWidth, cfg.HUD.MarkColor)
	}
}

func drawAnchor(e *ecs.ECS, screen *ebiten.Image, view View) {
	anchorEntry, ok := tags.Anchor.First(e.World)
	if !ok {
		return
	}
	x, z := factory.AnchorPosition(components.Object.Get(anchorEntry).Object)
	s := anchorMarkerSize
	c := cfg.HUD.AnchorColor
	drawSegment(screen, view, mgl64.Vec3{x - s, 0, z}, mgl64.Vec3{x + s, 0, z}, cfg.HUD.LineWidth, c)
	drawSegment(screen, view, mgl64.Vec3{x, 0, z - s}, mgl64.Vec3{x, 0, z + s}, cfg.HUD.LineWidth, c)
	drawSegment(screen, view, mgl64.Vec3{x, 0, z}, mgl64.Vec3{x, s, z}, cfg.HUD.LineWidth, c)
}

// drawRect outlines an axis-aligned rectangle on the plane at height y.
func drawRect(screen *ebiten.Image, view View, x, z, w, d, y float64, clr color.Color) {
	corners := []mgl64.Vec3{{x, y, z}, {x + w, y, z}, {x + w, y, z + d}, {x, y, z + d}}
	for i := range corners {
		drawSegment(screen, view, corners[i], corners[(i+1)%len(corners)], cfg.HUD.LineWidth, clr)
	}
}

// drawSegment draws a world-space segment. Segments crossing behind the eye are skipped.
func drawSegment(screen *ebiten.Image, view View, a, b mgl64.Vec3, width float32, clr color.Color) {
	x0, y0, ok0 := view.Project(a)
	x1, y1, ok1 := view.Project(b)
	if !ok0 || !ok1 {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}
