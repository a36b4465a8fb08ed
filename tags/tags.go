package tags

import "github.com/yohamta/donburi"

var (
	Anchor = donburi.NewTag().SetName("Anchor")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvAnchor = "anchor"
)
