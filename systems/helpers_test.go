package systems

import (
	"testing"

	"github.com/automoto/rtscam/components"
	cfg "github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/shared/leveldata"
	"github.com/automoto/rtscam/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

// scriptedInput is an InputSource driven by the test.
type scriptedInput struct {
	held   map[ebiten.Key]bool
	cx, cy int
}

func newScriptedInput() *scriptedInput {
	return &scriptedInput{
		held: map[ebiten.Key]bool{},
		cx:   cfg.C.Width / 2,
		cy:   cfg.C.Height / 2,
	}
}

func (s *scriptedInput) IsKeyPressed(key ebiten.Key) bool { return s.held[key] }

func (s *scriptedInput) CursorPosition() (int, int) { return s.cx, s.cy }

func (s *scriptedInput) press(keys ...ebiten.Key) {
	for _, k := range keys {
		s.held[k] = true
	}
}

func (s *scriptedInput) release(keys ...ebiten.Key) {
	for _, k := range keys {
		delete(s.held, k)
	}
}

type testWorld struct {
	ecs     *ecs.ECS
	input   *scriptedInput
	camera  *donburi.Entry
	anchor  *donburi.Entry
	systems []ecs.System
}

// newTestWorld builds a 64x64 field with bounds walls, the anchor at its
// centre and a camera rig at the default starting offset.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	w := newBareWorld(t)
	w.camera = factory.CreateCamera(w.ecs, mgl64.Vec3{0, 10, -15})
	InitCameraController(w.ecs)
	return w
}

// newBareWorld is newTestWorld without a camera entity.
func newBareWorld(t *testing.T) *testWorld {
	t.Helper()
	keepCameraConfig(t)

	e := ecs.NewECS(donburi.NewWorld())
	input := newScriptedInput()

	field := &leveldata.Field{
		Name:  "test",
		Width: 64,
		Depth: 64,
		Spawn: leveldata.Point{X: 32, Z: 32},
	}
	factory.CreateLevel(e, field)
	factory.CreateSpace(e, field.Width, field.Depth, 16)
	factory.CreateBounds(e, field.Width, field.Depth, 1)

	w := &testWorld{ecs: e, input: input}
	w.anchor = factory.CreateAnchor(e, field.Spawn.X, field.Spawn.Z)
	w.systems = append([]ecs.System{
		NewInputSystem(input),
		func(e *ecs.ECS) { AdvanceClock(e, testDT) },
	}, CameraSystems()...)
	return w
}

// keepCameraConfig restores the mutable camera globals after the test.
func keepCameraConfig(t *testing.T) {
	t.Helper()
	cam, defaults := cfg.Camera, cfg.CameraDefaults
	cfg.Camera = cfg.DefaultCamera()
	cfg.CameraDefaults = cfg.Camera
	t.Cleanup(func() {
		cfg.Camera, cfg.CameraDefaults = cam, defaults
	})
}

func (w *testWorld) tick() {
	for _, system := range w.systems {
		system(w.ecs)
	}
}

func (w *testWorld) ticks(n int) {
	for i := 0; i < n; i++ {
		w.tick()
	}
}

func (w *testWorld) controller() *components.CameraControllerData {
	entry, _ := components.CameraController.First(w.ecs.World)
	return components.CameraController.Get(entry)
}

func (w *testWorld) anchorPosition() (x, z float64) {
	return factory.AnchorPosition(components.Object.Get(w.anchor).Object)
}

func (w *testWorld) now() float64 {
	return getOrCreateClock(w.ecs).Now
}
