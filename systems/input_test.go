package systems

import (
	"testing"

	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestPollInputEdges(t *testing.T) {
	src := newScriptedInput()
	var input components.InputData

	src.press(ebiten.KeyEnd)
	pollInput(&input, src)
	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, GetAction(&input, cfg.ActionZoom))

	pollInput(&input, src)
	assert.Equal(t, components.ActionState{Pressed: true}, GetAction(&input, cfg.ActionZoom))

	src.release(ebiten.KeyEnd)
	pollInput(&input, src)
	assert.Equal(t, components.ActionState{JustReleased: true}, GetAction(&input, cfg.ActionZoom))

	pollInput(&input, src)
	assert.Equal(t, components.ActionState{}, GetAction(&input, cfg.ActionZoom))
}

func TestPollInputCursorOrigin(t *testing.T) {
	src := newScriptedInput()
	src.cx, src.cy = 100, 20

	var input components.InputData
	pollInput(&input, src)

	assert.True(t, input.CursorValid)
	assert.Equal(t, 100.0, input.CursorX)
	assert.Equal(t, float64(cfg.C.Height-20), input.CursorY)
	assert.Equal(t, float64(cfg.C.Width), input.ScreenW)
}

func TestChangedThisTick(t *testing.T) {
	input := &components.InputData{}
	assert.False(t, changedThisTick(input, cfg.RotateActions...))

	input.Current[cfg.ActionRotateRight] = true
	assert.True(t, changedThisTick(input, cfg.RotateActions...))

	input.Previous = input.Current
	assert.False(t, changedThisTick(input, cfg.RotateActions...))
	assert.False(t, changedThisTick(input, cfg.ActionZoom))
}
