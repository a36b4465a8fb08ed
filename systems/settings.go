package systems

import (
	"log"
	"math"

	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the overlay, edge-pan and debug toggles.
// This system should run AFTER UpdateInput but BEFORE the camera systems.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionSettings).JustPressed {
		if settings.OverlayOpen {
			CloseSettings(e)
		} else {
			settings.OverlayOpen = true
		}
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
	}
	if GetAction(input, cfg.ActionToggleEdgePan).JustPressed {
		ToggleEdgePan()
	}
}

// CameraSystems returns the per-tick camera systems in run order. They read
// the actions polled by the input system and the clock, so both must run
// first. Zoom runs before rotation and ApplyCameraRig comes last.
func CameraSystems() []ecs.System {
	return []ecs.System{
		UpdateSettings,
		WithCameraChecks(UpdatePan),
		WithCameraChecks(UpdateRecenter),
		WithCameraChecks(UpdatePhysics),
		WithCameraChecks(UpdateCameraZoom),
		WithCameraChecks(UpdateCameraRotation),
		ApplyCameraRig,
	}
}

// DrawSettingsBackdrop dims the world while the settings overlay is open.
func DrawSettingsBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(e).OverlayOpen {
		return
	}
	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		cfg.BlackOverlay,
		false,
	)
}

// WithCameraChecks wraps a system to skip execution while the settings
// overlay is open.
func WithCameraChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetOrCreateSettings(e).OverlayOpen {
			return
		}
		system(e)
	}
}

// CloseSettings closes the settings overlay. Zoom and rotation input that
// changed while it was open was never seen by the camera systems, so both
// windows restart here and the rig eases toward the new targets.
func CloseSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.OverlayOpen {
		return
	}
	settings.OverlayOpen = false

	if ctrl, ok := activeCameraController(e); ok {
		now := getOrCreateClock(e).Now
		ctrl.Zoom.Restart(now)
		ctrl.Rotation.Restart(now)
	}
}

// IsSettingsOpen reports whether the settings overlay is open.
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettings(e).OverlayOpen
}

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.StartWithOverlay,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// ToggleEdgePan flips edge panning on or off.
func ToggleEdgePan() {
	cfg.Camera.EnableEdgePan = !cfg.Camera.EnableEdgePan
}

// AdjustKeyboardPanSpeed changes the keyboard pan speed by steps increments
// of PanSpeedStep. The speed never drops below one step.
func AdjustKeyboardPanSpeed(steps int) {
	cfg.Camera.KeyboardPanSpeed = stepSpeed(cfg.Camera.KeyboardPanSpeed, steps)
}

// AdjustMousePanSpeed changes the edge-pan speed by steps increments of PanSpeedStep.
func AdjustMousePanSpeed(steps int) {
	cfg.Camera.MousePanSpeed = stepSpeed(cfg.Camera.MousePanSpeed, steps)
}

func stepSpeed(speed float64, steps int) float64 {
	step := cfg.Camera.PanSpeedStep
	return math.Max(step, speed+float64(steps)*step)
}

// ResetCameraTuning restores the pan settings to the values loaded at startup
// or by the last tuning file reload.
func ResetCameraTuning() {
	cfg.Camera.KeyboardPanSpeed = cfg.CameraDefaults.KeyboardPanSpeed
	cfg.Camera.MousePanSpeed = cfg.CameraDefaults.MousePanSpeed
	cfg.Camera.EnableEdgePan = cfg.CameraDefaults.EnableEdgePan
}

// NewConfigReloadSystem applies tuning file reloads published on updates.
// The starting follow offset is captured once, so a reload never moves it.
// A nil channel disables reloading.
func NewConfigReloadSystem(updates <-chan cfg.CameraConfig) ecs.System {
	return func(e *ecs.ECS) {
		select {
		case cam, ok := <-updates:
			if !ok {
				return
			}
			cfg.Camera = cam
			cfg.CameraDefaults = cam
			log.Printf("Reloaded camera config")
		default:
		}
	}
}
