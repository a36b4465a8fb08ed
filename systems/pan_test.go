package systems

import (
	"testing"

	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func sample(src *scriptedInput) *components.InputData {
	var input components.InputData
	pollInput(&input, src)
	return &input
}

func TestPanVectorAtRestIsZero(t *testing.T) {
	src := newScriptedInput()
	cam := cfg.DefaultCamera()

	assert.True(t, cam.EnableEdgePan)
	assert.Equal(t, math.Vec2{}, PanVector(sample(src), cam))
}

func TestKeyboardPan(t *testing.T) {
	cam := cfg.DefaultCamera()
	s := cam.KeyboardPanSpeed

	tests := []struct {
		name string
		keys []ebiten.Key
		want math.Vec2
	}{
		{name: "up", keys: []ebiten.Key{ebiten.KeyArrowUp}, want: math.Vec2{Y: s}},
		{name: "w", keys: []ebiten.Key{ebiten.KeyW}, want: math.Vec2{Y: s}},
		{name: "left", keys: []ebiten.Key{ebiten.KeyA}, want: math.Vec2{X: -s}},
		{name: "down", keys: []ebiten.Key{ebiten.KeyArrowDown}, want: math.Vec2{Y: -s}},
		{name: "right", keys: []ebiten.Key{ebiten.KeyD}, want: math.Vec2{X: s}},
		{name: "diagonal is not normalised", keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, want: math.Vec2{X: s, Y: s}},
		{name: "opposites cancel", keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyS}, want: math.Vec2{}},
		{name: "arrow and wasd count once", keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, want: math.Vec2{Y: s}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newScriptedInput()
			src.press(tt.keys...)
			assert.Equal(t, tt.want, KeyboardPan(sample(src), cam))
		})
	}
}

func TestEdgePan(t *testing.T) {
	cam := cfg.DefaultCamera()
	s := cam.MousePanSpeed
	w, h := cfg.C.Width, cfg.C.Height

	tests := []struct {
		name   string
		cx, cy int
		want   math.Vec2
	}{
		{name: "centre", cx: w / 2, cy: h / 2, want: math.Vec2{}},
		{name: "left edge", cx: 10, cy: h / 2, want: math.Vec2{X: -s}},
		{name: "right edge", cx: w - 10, cy: h / 2, want: math.Vec2{X: s}},
		{name: "top edge pans up", cx: w / 2, cy: 10, want: math.Vec2{Y: s}},
		{name: "bottom edge pans down", cx: w / 2, cy: h - 10, want: math.Vec2{Y: -s}},
		{name: "corner", cx: 0, cy: 0, want: math.Vec2{X: -s, Y: s}},
		{name: "on the margin", cx: int(cam.EdgePanSize), cy: h / 2, want: math.Vec2{X: -s}},
		{name: "just inside the margin", cx: int(cam.EdgePanSize) + 1, cy: h / 2, want: math.Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newScriptedInput()
			src.cx, src.cy = tt.cx, tt.cy
			assert.Equal(t, tt.want, EdgePan(sample(src), cam))
		})
	}

	t.Run("disabled", func(t *testing.T) {
		src := newScriptedInput()
		src.cx, src.cy = 0, 0
		off := cam
		off.EnableEdgePan = false
		assert.Equal(t, math.Vec2{}, EdgePan(sample(src), off))
	})

	t.Run("no cursor reported", func(t *testing.T) {
		assert.Equal(t, math.Vec2{}, EdgePan(&components.InputData{ScreenW: 100, ScreenH: 100}, cam))
	})
}

func TestPanVectorSumsSources(t *testing.T) {
	cam := cfg.DefaultCamera()
	src := newScriptedInput()
	src.press(ebiten.KeyD)
	src.cx = cfg.C.Width - 1

	assert.Equal(t, math.Vec2{X: cam.KeyboardPanSpeed + cam.MousePanSpeed}, PanVector(sample(src), cam))
}

func TestUpdatePanSetsAnchorVelocity(t *testing.T) {
	w := newTestWorld(t)
	w.input.press(ebiten.KeyW, ebiten.KeyA)
	w.tick()

	anchor := components.Anchor.Get(w.anchor)
	want := math.Vec2{X: -cfg.Camera.KeyboardPanSpeed, Y: cfg.Camera.KeyboardPanSpeed}
	assert.Equal(t, want, anchor.Velocity)
	assert.Equal(t, want, anchor.Pan)

	w.input.release(ebiten.KeyW, ebiten.KeyA)
	w.tick()
	assert.Equal(t, math.Vec2{}, anchor.Velocity)
}
