package main

import (
	"image"
	"log"

	"github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/fonts"
	"github.com/automoto/rtscam/scenes"
	"github.com/automoto/rtscam/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(reloads <-chan config.CameraConfig) *Game {
	if err := fonts.LoadFontWithSize(fonts.HUD, goregular.TTF, 14); err != nil {
		log.Fatalf("Failed to load HUD font: %v", err)
	}
	if err := fonts.LoadFontWithSize(fonts.HUDSmall, goregular.TTF, 11); err != nil {
		log.Fatalf("Failed to load HUD font: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewRTSScene(g, systems.EbitenInput{}, reloads)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	path := config.CameraFilePath()
	if cam, err := config.LoadCameraFile(path, config.Camera); err != nil {
		log.Printf("Warning: Could not load camera config %s: %v", path, err)
	} else {
		config.Camera = cam
		config.CameraDefaults = cam
	}

	reloads, stop, err := config.WatchCameraFile(path)
	if err != nil {
		log.Printf("Warning: Camera config hot reload disabled: %v", err)
	} else {
		defer func() {
			if err := stop(); err != nil {
				log.Printf("Warning: Could not stop config watcher: %v", err)
			}
		}()
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(reloads)); err != nil {
		log.Fatal(err)
	}
}
