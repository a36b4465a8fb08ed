package factory

import (
	"math"

	"github.com/automoto/rtscam/archetypes"
	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The collision space works in map pixels, not world units: resolv's cell
// lookups assume objects are at least a pixel wide.

// ToSpace converts world units to collision space pixels.
func ToSpace(v float64) float64 {
	return v * cfg.Map.PixelsPerUnit
}

// ToWorld converts collision space pixels to world units.
func ToWorld(v float64) float64 {
	return v / cfg.Map.PixelsPerUnit
}

// CreateSpace creates a collision space covering width x depth world units.
func CreateSpace(ecs *ecs.ECS, width, depth float64, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(
		int(math.Ceil(ToSpace(width))),
		int(math.Ceil(ToSpace(depth))),
		cellSize, cellSize,
	)
	components.Space.Set(space, spaceData)
	return space
}
