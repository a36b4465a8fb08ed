// Package leveldata parses the ground map the camera pans over.
// It does not import the engine, the ECS or the collision packages. Pure data only.
package leveldata

// Field holds the ground map in world units. Tiled's y axis maps to world z.
type Field struct {
	Name      string
	Width     float64 // Extent along world x
	Depth     float64 // Extent along world z
	Spawn     Point
	Landmarks []Landmark
}

// Point is a location on the ground plane.
type Point struct {
	X, Z float64
}

// Landmark is a box standing on the ground, drawn so panning and rotation
// have something to read against.
type Landmark struct {
	Name   string
	X, Z   float64 // Minimum corner
	W, D   float64 // Footprint
	Height float64
}

// Center returns the middle of the landmark's footprint.
func (l Landmark) Center() Point {
	return Point{X: l.X + l.W/2, Z: l.Z + l.D/2}
}
