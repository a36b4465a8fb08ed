package systems

import (
	"github.com/automoto/rtscam/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances game time by one tick at the configured TPS.
func UpdateClock(e *ecs.ECS) {
	AdvanceClock(e, 1/float64(ebiten.TPS()))
}

// AdvanceClock moves game time forward by dt seconds. Negative steps are ignored.
func AdvanceClock(e *ecs.ECS, dt float64) {
	clock := getOrCreateClock(e)
	if dt < 0 {
		dt = 0
	}
	clock.Delta = dt
	clock.Now += dt
}

// getOrCreateClock returns the singleton Clock component, creating if needed
func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
