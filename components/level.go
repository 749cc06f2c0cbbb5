package components

import (
	"github.com/automoto/dreadhall/leveldata"
	"github.com/automoto/dreadhall/nav"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *leveldata.Level
	Nav   *nav.Grid
}

var Level = donburi.NewComponentType[LevelData]()
