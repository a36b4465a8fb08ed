package factory

import (
	"testing"

	"github.com/automoto/rtscam/components"
	"github.com/automoto/rtscam/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestAnchorPlacement(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 64, 64, 16)
	anchor := CreateAnchor(e, 12.5, 40)

	obj := components.Object.Get(anchor).Object
	require.NotNil(t, obj.Space, "anchor joins the space")
	assert.Same(t, anchor, obj.Data)

	x, z := AnchorPosition(obj)
	assert.InDelta(t, 12.5, x, 1e-9)
	assert.InDelta(t, 40.0, z, 1e-9)

	PlaceAnchor(obj, 3, 4)
	x, z = AnchorPosition(obj)
	assert.InDelta(t, 3.0, x, 1e-9)
	assert.InDelta(t, 4.0, z, 1e-9)
}

func TestCreateBounds(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 64, 32, 16)
	walls := CreateBounds(e, 64, 32, 1)
	require.Len(t, walls, 4)

	for _, wall := range walls {
		obj := components.Object.Get(wall).Object
		assert.True(t, obj.HasTags(tags.ResolvSolid))
		assert.GreaterOrEqual(t, obj.X, 0.0)
		assert.GreaterOrEqual(t, obj.Y, 0.0)
		assert.LessOrEqual(t, obj.X+obj.W, ToSpace(64))
		assert.LessOrEqual(t, obj.Y+obj.H, ToSpace(32))
	}
}

func TestSpaceUnits(t *testing.T) {
	assert.InDelta(t, 2.5, ToWorld(ToSpace(2.5)), 1e-12)
	assert.InDelta(t, 16.0, ToSpace(1), 1e-12)
}
