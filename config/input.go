package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical camera action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPanUp
	ActionPanLeft
	ActionPanDown
	ActionPanRight
	ActionZoom
	ActionRotateLeft
	ActionRotateRight
	ActionRecenter
	ActionToggleEdgePan
	ActionToggleDebug
	ActionSettings
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

// RotateActions are the actions whose press or release restarts the rotation window.
var RotateActions = []ActionID{ActionRotateLeft, ActionRotateRight}

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionPanUp: {
				Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			},
			ActionPanLeft: {
				Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
			},
			ActionPanDown: {
				Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			},
			ActionPanRight: {
				Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
			},
			ActionZoom: {
				Keys: []ebiten.Key{ebiten.KeyEnd},
			},
			// Rotate left swings the rig toward +x.
			ActionRotateLeft: {
				Keys: []ebiten.Key{ebiten.KeyPageDown, ebiten.KeyQ},
			},
			ActionRotateRight: {
				Keys: []ebiten.Key{ebiten.KeyPageUp, ebiten.KeyR},
			},
			ActionRecenter: {
				Keys: []ebiten.Key{ebiten.KeyHome},
			},
			ActionToggleEdgePan: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			ActionSettings: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
		},
	}
}
