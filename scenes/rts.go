package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/rtscam/assets"
	cfg "github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/systems"
	"github.com/automoto/rtscam/systems/factory"
	"github.com/automoto/rtscam/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RTSScene shows the embedded field through the RTS camera.
type RTSScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	input        systems.InputSource
	reloads      <-chan cfg.CameraConfig
	settingsUI   *ui.SettingsUI
	once         sync.Once
}

// NewRTSScene creates the scene. reloads carries tuning file changes and may be nil.
func NewRTSScene(sc SceneChanger, input systems.InputSource, reloads <-chan cfg.CameraConfig) *RTSScene {
	return &RTSScene{sceneChanger: sc, input: input, reloads: reloads}
}

func (rs *RTSScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()

	if systems.IsSettingsOpen(rs.ecs) {
		rs.settingsUI.Update()
	}
}

func (rs *RTSScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)

	if systems.IsSettingsOpen(rs.ecs) {
		rs.settingsUI.Draw(screen)
	}
}

func (rs *RTSScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.NewInputSystem(rs.input))
	ecs.AddSystem(systems.UpdateClock)
	ecs.AddSystem(systems.NewConfigReloadSystem(rs.reloads))

	// Camera systems, skipped while the settings overlay is open
	for _, system := range systems.CameraSystems() {
		ecs.AddSystem(system)
	}

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsBackdrop)

	rs.ecs = ecs

	// Level first, so the collision space can be sized from it.
	field := assets.MustLoadField()
	factory.CreateLevel(rs.ecs, field)
	factory.CreateSpace(rs.ecs, field.Width, field.Depth, 16)
	factory.CreateBounds(rs.ecs, field.Width, field.Depth, cfg.Map.WallThickness)

	factory.CreateAnchor(rs.ecs, field.Spawn.X, field.Spawn.Z)
	factory.CreateCamera(rs.ecs, cfg.Camera.StartingFollowOffset)
	systems.InitCameraController(rs.ecs)

	rs.settingsUI = ui.NewSettingsUI(ui.SettingsActions{
		ToggleEdgePan:     systems.ToggleEdgePan,
		AdjustKeyboardPan: systems.AdjustKeyboardPanSpeed,
		AdjustMousePan:    systems.AdjustMousePanSpeed,
		Reset:             systems.ResetCameraTuning,
		Close: func() {
			systems.CloseSettings(rs.ecs)
		},
	})
}
