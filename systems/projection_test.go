package systems

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewProject(t *testing.T) {
	anchor := mgl64.Vec3{10, 0, 20}
	offset := mgl64.Vec3{0, 10, -15}
	view := NewView(anchor, offset, 60, 1280, 720)

	x, y, ok := view.Project(anchor)
	require.True(t, ok)
	assert.InDelta(t, 640.0, x, 1e-6)
	assert.InDelta(t, 360.0, y, 1e-6)

	t.Run("+x is screen right", func(t *testing.T) {
		x, _, ok := view.Project(anchor.Add(mgl64.Vec3{1, 0, 0}))
		require.True(t, ok)
		assert.Greater(t, x, 640.0)
	})

	t.Run("+z is further up the screen", func(t *testing.T) {
		_, y, ok := view.Project(anchor.Add(mgl64.Vec3{0, 0, 1}))
		require.True(t, ok)
		assert.Less(t, y, 360.0)
	})

	t.Run("behind the eye", func(t *testing.T) {
		_, _, ok := view.Project(anchor.Add(offset.Mul(2)))
		assert.False(t, ok)
	})
}

func TestViewStraightDown(t *testing.T) {
	anchor := mgl64.Vec3{5, 0, 5}
	view := NewView(anchor, mgl64.Vec3{0, 10, 0}, 60, 800, 600)

	x, y, ok := view.Project(anchor)
	require.True(t, ok)
	assert.InDelta(t, 400.0, x, 1e-6)
	assert.InDelta(t, 300.0, y, 1e-6)
}
