package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	cfg "github.com/automoto/rtscam/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsActions are invoked by the settings panel's buttons.
type SettingsActions struct {
	ToggleEdgePan     func()
	AdjustKeyboardPan func(steps int)
	AdjustMousePan    func(steps int)
	Reset             func()
	Close             func()
}

// SettingsUI is the camera tuning panel shown over the world.
type SettingsUI struct {
	UI *ebitenui.UI

	actions SettingsActions

	edgePanBtn    *widget.Button
	keyboardLabel *widget.Label
	mouseLabel    *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewSettingsUI(actions SettingsActions) *SettingsUI {
	ui := &SettingsUI{actions: actions}
	ui.loadFonts()
	ui.buildUI()
	ui.Refresh(cfg.Camera)
	return ui
}

func (ui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CAMERA", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	ui.edgePanBtn = ui.newButton("", 200, color.RGBA{60, 60, 80, 255}, func() {
		call(ui.actions.ToggleEdgePan)
	})
	panel.AddChild(ui.edgePanBtn)

	ui.keyboardLabel = ui.newValueLabel()
	panel.AddChild(ui.buildStepper(ui.keyboardLabel, ui.actions.AdjustKeyboardPan))

	ui.mouseLabel = ui.newValueLabel()
	panel.AddChild(ui.buildStepper(ui.mouseLabel, ui.actions.AdjustMousePan))

	panel.AddChild(ui.buildButtons())

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Esc: close", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{150, 150, 150, 255},
		}),
	))

	rootContainer.AddChild(panel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// buildStepper lays out "[-] label [+]" for one speed value.
func (ui *SettingsUI) buildStepper(label *widget.Label, adjust func(steps int)) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
		)),
	)

	step := func(n int) func() {
		return func() {
			if adjust != nil {
				adjust(n)
			}
			ui.Refresh(cfg.Camera)
		}
	}

	row.AddChild(ui.newButton("-", 28, color.RGBA{60, 60, 80, 255}, step(-1)))
	row.AddChild(label)
	row.AddChild(ui.newButton("+", 28, color.RGBA{60, 60, 80, 255}, step(1)))
	return row
}

func (ui *SettingsUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	container.AddChild(ui.newButton("Reset", 90, color.RGBA{100, 60, 40, 255}, func() {
		call(ui.actions.Reset)
		ui.Refresh(cfg.Camera)
	}))
	container.AddChild(ui.newButton("Close", 90, color.RGBA{40, 100, 40, 255}, func() {
		call(ui.actions.Close)
	}))

	return container
}

func (ui *SettingsUI) newValueLabel() *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
}

func (ui *SettingsUI) newButton(label string, width int, idle color.RGBA, onClick func()) *widget.Button {
	hover := color.RGBA{clampAdd(idle.R, 30), clampAdd(idle.G, 30), clampAdd(idle.B, 30), 255}
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(width, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(idle),
			Hover:   image.NewNineSliceColor(hover),
			Pressed: image.NewNineSliceColor(idle),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// Refresh shows the values in cam.
func (ui *SettingsUI) Refresh(cam cfg.CameraConfig) {
	state := "Off"
	if cam.EnableEdgePan {
		state = "On"
	}
	if ui.edgePanBtn != nil {
		if textWidget := ui.edgePanBtn.Text(); textWidget != nil {
			textWidget.Label = "Edge pan: " + state
		}
	}
	if ui.keyboardLabel != nil {
		ui.keyboardLabel.Label = fmt.Sprintf("Keyboard pan %5.1f", cam.KeyboardPanSpeed)
	}
	if ui.mouseLabel != nil {
		ui.mouseLabel.Label = fmt.Sprintf("Edge pan     %5.1f", cam.MousePanSpeed)
	}
}

func (ui *SettingsUI) Update() {
	ui.Refresh(cfg.Camera)
	ui.UI.Update()
}

func (ui *SettingsUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}

func clampAdd(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}
