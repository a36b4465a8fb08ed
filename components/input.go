package components

import (
	cfg "github.com/automoto/rtscam/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the current and previous tick's pressed state for all
// actions, plus the pointer. JustPressed/JustReleased are computed on demand
// by comparing ticks.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current tick's Pressed state
	Previous [cfg.ActionCount]bool // Previous tick's Pressed state

	// Pointer in screen pixels with the origin at the bottom-left corner
	CursorX, CursorY float64
	ScreenW, ScreenH float64
	CursorValid      bool // False until the input source has reported a cursor
}

var Input = donburi.NewComponentType[InputData]()
