package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const slerpEpsilon = 1e-9

// Slerp spherically interpolates between a and b. The direction of a is rotated
// toward b by t of the angle between them while the length is blended linearly,
// so an offset swings around its anchor instead of cutting across it.
// t is clamped to [0, 1].
func Slerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	t = Clamp01(t)
	if t == 0 {
		return a
	}
	if t == 1 {
		return b
	}

	lenA, lenB := a.Len(), b.Len()
	if lenA < slerpEpsilon || lenB < slerpEpsilon {
		return Lerp(a, b, t)
	}

	dirA := a.Mul(1 / lenA)
	dirB := b.Mul(1 / lenB)
	length := lenA + (lenB-lenA)*t

	dot := Clamp(dirA.Dot(dirB), -1, 1)
	if dot > 1-slerpEpsilon {
		return Lerp(dirA, dirB, t).Normalize().Mul(length)
	}

	theta := math.Acos(dot)
	var axis mgl64.Vec3
	if dot < -1+slerpEpsilon {
		axis = Perpendicular(dirA)
	} else {
		axis = dirA.Cross(dirB).Normalize()
	}

	rotated := mgl64.QuatRotate(theta*t, axis).Rotate(dirA)
	return rotated.Normalize().Mul(length)
}

// Lerp linearly interpolates each component of a toward b.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Perpendicular returns a unit vector orthogonal to v.
func Perpendicular(v mgl64.Vec3) mgl64.Vec3 {
	// Cross with the world axis least aligned with v.
	axis := mgl64.Vec3{1, 0, 0}
	if math.Abs(v.X()) > 0.9 {
		axis = mgl64.Vec3{0, 1, 0}
	}
	return v.Cross(axis).Normalize()
}
