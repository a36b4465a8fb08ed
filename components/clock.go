package components

import "github.com/yohamta/donburi"

// ClockData is game time in seconds. Now only moves forward.
type ClockData struct {
	Now   float64
	Delta float64 // Length of the current tick
}

var Clock = donburi.NewComponentType[ClockData]()
