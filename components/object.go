package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its collision object. The resolv plane is the
// ground: X is world x and Y is world z.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the collision space holding the anchor and the map walls.
var Space = donburi.NewComponentType[resolv.Space]()
