package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="8" height="4" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="4">
 <objectgroup id="1" name="Spawn">
  <object id="1" name="anchor" x="32" y="16">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="Landmarks">
  <object id="2" name="tower" x="16" y="16" width="32" height="16">
   <properties>
    <property name="height" type="float" value="5"/>
   </properties>
  </object>
  <object id="3" name="rock" x="64" y="32" width="16" height="16"/>
 </objectgroup>
</map>
`

func TestLoadField(t *testing.T) {
	fsys := fstest.MapFS{"maps/test.tmx": {Data: []byte(testTMX)}}

	field, err := LoadField(fsys, "maps/test.tmx", 16)
	require.NoError(t, err)

	assert.Equal(t, 8.0, field.Width)
	assert.Equal(t, 4.0, field.Depth)
	assert.Equal(t, Point{X: 2, Z: 1}, field.Spawn)

	require.Len(t, field.Landmarks, 2)
	assert.Equal(t, Landmark{Name: "tower", X: 1, Z: 1, W: 2, D: 1, Height: 5}, field.Landmarks[0])
	assert.Equal(t, DefaultLandmarkHeight, field.Landmarks[1].Height)
	assert.Equal(t, Point{X: 1.5, Z: 1.5}, field.Landmarks[1].Center())
}

func TestLoadFieldErrors(t *testing.T) {
	fsys := fstest.MapFS{"maps/test.tmx": {Data: []byte(testTMX)}}

	_, err := LoadField(fsys, "maps/missing.tmx", 16)
	assert.Error(t, err)

	_, err = LoadField(fsys, "maps/test.tmx", 0)
	assert.ErrorIs(t, err, errBadScale)
}
