package tags

import "github.com/yohamta/donburi"

var (
	Player  = donburi.NewTag().SetName("Player")
	Enemy   = donburi.NewTag().SetName("Enemy")
	Boss    = donburi.NewTag().SetName("Boss")
	Wall    = donburi.NewTag().SetName("Wall")
	Door    = donburi.NewTag().SetName("Door")
	Trigger = donburi.NewTag().SetName("Trigger")
	Piece   = donburi.NewTag().SetName("Piece")
)

// Resolv tags for collision
const (
	ResolvSolid   = "solid"
	ResolvPlayer  = "Player"
	ResolvEnemy   = "Enemy"
	ResolvDoor    = "door"
	ResolvTrigger = "trigger"
	ResolvPiece   = "piece"
	ResolvDamage  = "damage"
)
