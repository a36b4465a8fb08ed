package components

import (
	"github.com/automoto/rtscam/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Field *leveldata.Field
}

var Level = donburi.NewComponentType[LevelData]()
