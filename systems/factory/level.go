package factory

import (
	"github.com/automoto/rtscam/archetypes"
	"github.com/automoto/rtscam/components"
	"github.com/automoto/rtscam/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, field *leveldata.Field) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Field: field})
	return level
}
