package leveldata

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// DefaultLandmarkHeight is used when a landmark has no "height" property.
const DefaultLandmarkHeight = 2.0

var errBadScale = errors.New("pixels per unit must be positive")

// LoadField parses a TMX file into a Field. Object positions are divided by
// pixelsPerUnit to convert from Tiled pixels to world units. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadField(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*Field, error) {
	if pixelsPerUnit <= 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, errBadScale)
	}

	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	field := &Field{
		Name:  tmxPath,
		Width: float64(levelMap.Width*levelMap.TileWidth) / pixelsPerUnit,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / pixelsPerUnit,
	}
	// Spawn in the middle unless the map says otherwise.
	field.Spawn = Point{X: field.Width / 2, Z: field.Depth / 2}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Spawn":
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				field.Spawn = Point{X: o.X / pixelsPerUnit, Z: o.Y / pixelsPerUnit}
			}
		case "Landmarks":
			for _, o := range og.Objects {
				height := o.Properties.GetFloat("height")
				if height <= 0 {
					height = DefaultLandmarkHeight
				}
				field.Landmarks = append(field.Landmarks, Landmark{
					Name:   o.Name,
					X:      o.X / pixelsPerUnit,
					Z:      o.Y / pixelsPerUnit,
					W:      o.Width / pixelsPerUnit,
					D:      o.Height / pixelsPerUnit,
					Height: height,
				})
			}
		}
	}

	return field, nil
}
