package systems

import (
	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputSource is what the input system polls each tick. The game runs on
// EbitenInput; tests feed scripted key and cursor states.
type InputSource interface {
	IsKeyPressed(key ebiten.Key) bool
	// CursorPosition returns the pointer in screen pixels, origin top-left.
	CursorPosition() (x, y int)
}

// EbitenInput reads the live keyboard and mouse.
type EbitenInput struct{}

func (EbitenInput) IsKeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (EbitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

// NewInputSystem returns a system that polls src into the InputComponent.
// Must run BEFORE every system that reads actions.
func NewInputSystem(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		pollInput(getOrCreateInput(e), src)
	}
}

func pollInput(input *components.InputData, src InputSource) {
	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if src.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}

	input.ScreenW = float64(cfg.C.Width)
	input.ScreenH = float64(cfg.C.Height)

	// Flip to a bottom-left origin so that up on screen is +y, like the pan vector.
	x, y := src.CursorPosition()
	input.CursorX = float64(x)
	input.CursorY = input.ScreenH - float64(y)
	input.CursorValid = true
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous tick.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// changedThisTick reports whether any of ids was pressed or released this tick.
func changedThisTick(input *components.InputData, ids ...cfg.ActionID) bool {
	for _, id := range ids {
		if a := GetAction(input, id); a.JustPressed || a.JustReleased {
			return true
		}
	}
	return false
}
