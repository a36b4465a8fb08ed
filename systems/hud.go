package systems

import (
	"fmt"

	cfg "github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var hudHints = []string{
	"WASD / arrows: pan",
	"End: zoom   Q/PgDn R/PgUp: rotate",
	"Home: recenter   F2: edge pan   F3: debug   Esc: settings",
}

// DrawHUD renders the control hints and edge-pan state in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	if IsSettingsOpen(e) {
		return
	}

	face := fonts.HUD.Get()
	y := cfg.HUD.Margin + cfg.HUD.LineHeight
	x := int(cfg.HUD.Margin)

	text.Draw(screen, edgePanLabel(), face, x, int(y), cfg.HUD.TextColor)
	y += cfg.HUD.LineHeight

	small := fonts.HUDSmall.Get()
	for _, hint := range hudHints {
		text.Draw(screen, hint, small, x, int(y), cfg.HUD.DimColor)
		y += cfg.HUD.LineHeight
	}
}

func edgePanLabel() string {
	state := "off"
	if cfg.Camera.EnableEdgePan {
		state = "on"
	}
	return fmt.Sprintf("Edge pan: %s", state)
}
