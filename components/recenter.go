package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RecenterData drives the anchor back to the spawn point, one tween per axis.
type RecenterData struct {
	X, Z   *gween.Tween
	Active bool
}

var Recenter = donburi.NewComponentType[RecenterData]()
