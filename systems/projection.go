package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	viewNear = 0.1
	viewFar  = 500.0
)

// View projects world points onto the screen for one rig pose.
//
// World space follows the camera controller: +y is up and +z is forward
// when panning up. mgl64 is right-handed, so z is negated on the way in to
// keep +x on the right of the screen.
type View struct {
	viewProj      mgl64.Mat4
	width, height float64
}

// NewView builds a perspective view from an eye at anchor+offset looking at anchor.
func NewView(anchor, offset mgl64.Vec3, fovDeg float64, width, height int) View {
	if offset.Len() < 1e-6 {
		offset = mgl64.Vec3{0, 1, 0}
	}
	target := toViewSpace(anchor)
	eye := target.Add(toViewSpace(offset))

	up := mgl64.Vec3{0, 1, 0}
	if math.Abs(offset.Normalize().Dot(up)) > 0.999 {
		// Looking straight down; any horizontal up works.
		up = mgl64.Vec3{0, 0, -1}
	}

	aspect := float64(width) / math.Max(1, float64(height))
	proj := mgl64.Perspective(mgl64.DegToRad(fovDeg), aspect, viewNear, viewFar)
	view := mgl64.LookAtV(eye, target, up)

	return View{
		viewProj: proj.Mul4(view),
		width:    float64(width),
		height:   float64(height),
	}
}

// Project returns the screen position of p. ok is false when p is behind the eye.
func (v View) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	clip := v.viewProj.Mul4x1(toViewSpace(p).Vec4(1))
	w := clip.W()
	if w < viewNear {
		return 0, 0, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	return (ndcX + 1) / 2 * v.width, (1 - ndcY) / 2 * v.height, true
}

func toViewSpace(p mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{p.X(), p.Y(), -p.Z()}
}
