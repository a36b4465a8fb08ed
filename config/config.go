package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// CameraConfig contains the designer-tunable camera values. Field names double
// as YAML keys in the tuning file.
type CameraConfig struct {
	// Panning
	KeyboardPanSpeed float64 `yaml:"keyboard_pan_speed"` // World units per second per held direction
	MousePanSpeed    float64 `yaml:"mouse_pan_speed"`    // World units per second per edge touched
	EdgePanSize      float64 `yaml:"edge_pan_size"`      // Pixels from the screen edge that trigger edge-pan
	EnableEdgePan    bool    `yaml:"enable_edge_pan"`
	PanSpeedStep     float64 `yaml:"pan_speed_step"` // Increment used by the settings overlay

	// Zoom
	ZoomSpeed       float64 `yaml:"zoom_speed"`        // Inverse seconds to finish a zoom window
	MinZoomDistance float64 `yaml:"min_zoom_distance"` // Follow offset height when zoomed in

	// Rotation
	RotationSpeed float64 `yaml:"rotation_speed"` // Inverse seconds to finish a rotation window

	// Rig
	StartingFollowOffset mgl64.Vec3 `yaml:"starting_follow_offset"` // Rig offset the camera entity spawns with
	FOV                  float64    `yaml:"fov"`                    // Vertical field of view in degrees

	// Recenter
	RecenterDuration float64 `yaml:"recenter_duration"` // Seconds to glide back to the spawn point
}

// MapConfig describes where the ground map lives and how it is scaled.
type MapConfig struct {
	Path          string
	PixelsPerUnit float64 // Tiled pixels per world unit
	GridSpacing   float64 // World units between ground grid lines
	WallThickness float64 // Thickness of the invisible walls around the map
}

// DebugConfig contains debug toggles.
type DebugConfig struct {
	StartWithOverlay bool
}

// HUDConfig contains HUD layout and colors.
type HUDConfig struct {
	Margin       float64
	LineHeight   float64
	TextColor    color.RGBA
	DimColor     color.RGBA
	GridColor    color.RGBA
	BoundsColor  color.RGBA
	MarkColor    color.RGBA
	AnchorColor  color.RGBA
	WallColor    color.RGBA
	Background   color.RGBA
	LineWidth    float32
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Map MapConfig
var Debug DebugConfig
var HUD HUDConfig

// CameraDefaults is what the settings overlay's reset button restores. It is
// the built-in camera config with the tuning file applied on top.
var CameraDefaults CameraConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	DarkGrey     = color.RGBA{R: 60, G: 66, B: 60, A: 255}
	Ground       = color.RGBA{R: 24, G: 38, B: 28, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// DefaultCamera returns the built-in camera tuning.
func DefaultCamera() CameraConfig {
	return CameraConfig{
		KeyboardPanSpeed: 5,
		MousePanSpeed:    5,
		EdgePanSize:      50,
		EnableEdgePan:    true,
		PanSpeedStep:     1,

		ZoomSpeed:       1,
		MinZoomDistance: 3,

		RotationSpeed: 1,

		StartingFollowOffset: mgl64.Vec3{0, 10, -15},
		FOV:                  60,

		RecenterDuration: 0.6,
	}
}

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "rtscam",
	}

	Camera = DefaultCamera()
	CameraDefaults = Camera

	Map = MapConfig{
		Path:          "maps/field.tmx",
		PixelsPerUnit: 16,
		GridSpacing:   2,
		WallThickness: 1,
	}

	Debug = DebugConfig{
		StartWithOverlay: false,
	}

	HUD = HUDConfig{
		Margin:       10,
		LineHeight:   16,
		TextColor:    White,
		DimColor:     Grey,
		GridColor:    DarkGrey,
		BoundsColor:  Orange,
		MarkColor:    LightBlue,
		AnchorColor:  Yellow,
		WallColor:    LightRed,
		Background:   Ground,
		LineWidth:    2,
	}
}
