package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// AnchorData is the point on the ground the rig looks at. Velocity is in world
// units per second along x and z; the resolv object carries the position with
// its Y field standing in for world z.
type AnchorData struct {
	Velocity math.Vec2
	Pan      math.Vec2 // Pan vector sampled this tick, kept for the debug overlay
}

var Anchor = donburi.NewComponentType[AnchorData]()
