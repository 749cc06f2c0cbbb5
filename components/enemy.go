package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	Type string
	Boss bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
