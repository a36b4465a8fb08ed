package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/rtscam/config"
	"github.com/automoto/rtscam/shared/leveldata"
)

var (
	//go:embed all:maps
	mapFS embed.FS
)

// MustLoadField loads the configured ground map from the embedded assets.
func MustLoadField() *leveldata.Field {
	field, err := leveldata.LoadField(mapFS, config.Map.Path, config.Map.PixelsPerUnit)
	if err != nil {
		panic(fmt.Sprintf("Failed to load map %s: %v", config.Map.Path, err))
	}
	return field
}
