package components

import "github.com/yohamta/donburi"

// SettingsData stores runtime toggles that are not part of the camera tuning.
type SettingsData struct {
	Debug       bool // Debug overlay visible
	OverlayOpen bool // Settings overlay is open; camera systems are suspended
}

var Settings = donburi.NewComponentType[SettingsData]()
