package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestSlerpEndpoints(t *testing.T) {
	a := mgl64.Vec3{0, 10, -15}
	b := mgl64.Vec3{15, 10, 0}

	assertVecInDelta(t, a, Slerp(a, b, 0), 1e-12)
	assertVecInDelta(t, b, Slerp(a, b, 1), 1e-12)
	assertVecInDelta(t, a, Slerp(a, b, -3), 1e-12)
	assertVecInDelta(t, b, Slerp(a, b, 42), 1e-12)
}

func TestSlerpRotatesAroundOrigin(t *testing.T) {
	a := mgl64.Vec3{0, 0, -15}
	b := mgl64.Vec3{15, 0, 0}

	mid := Slerp(a, b, 0.5)
	assert.InDelta(t, 15.0, mid.Len(), 1e-9)
	assertVecInDelta(t, mgl64.Vec3{15 / math.Sqrt2, 0, -15 / math.Sqrt2}, mid, 1e-9)
}

func TestSlerpBlendsLength(t *testing.T) {
	a := mgl64.Vec3{0, 10, 0}
	b := mgl64.Vec3{0, 20, 0}

	assertVecInDelta(t, mgl64.Vec3{0, 15, 0}, Slerp(a, b, 0.5), 1e-9)
}

func TestSlerpDegenerateInputs(t *testing.T) {
	t.Run("zero source", func(t *testing.T) {
		got := Slerp(mgl64.Vec3{}, mgl64.Vec3{0, 4, 0}, 0.5)
		assertVecInDelta(t, mgl64.Vec3{0, 2, 0}, got, 1e-12)
	})

	t.Run("opposite directions", func(t *testing.T) {
		a := mgl64.Vec3{0, 0, -10}
		b := mgl64.Vec3{0, 0, 10}
		mid := Slerp(a, b, 0.5)
		assert.InDelta(t, 10.0, mid.Len(), 1e-9)
		assert.InDelta(t, 0.0, mid.Z(), 1e-9)
	})
}

func TestPerpendicular(t *testing.T) {
	for _, v := range []mgl64.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, mgl64.Vec3{1, 2, 3}.Normalize()} {
		p := Perpendicular(v)
		assert.InDelta(t, 0.0, p.Dot(v), 1e-9)
		assert.InDelta(t, 1.0, p.Len(), 1e-9)
	}
}
