package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; the top-down view draws everything in one pass.
const Default ecs.LayerID = 0

// TickRate is the fixed simulation rate. Every system advances by Dt seconds per tick.
const TickRate = 60

// Dt is the length of one simulation tick in seconds.
const Dt = 1.0 / TickRate

// CollisionScale is the number of collision space units per meter. resolv
// works in whole cells, so the space is laid out in centimeters.
const CollisionScale = 100.0

// CollisionCell is the collision space cell size in units.
const CollisionCell = 50

// NavCellSize is the navigation grid resolution in meters.
const NavCellSize = 0.5

// Up is the world up axis. Planar (horizontal) math ignores this component.
var Up = mgl64.Vec3{0, 1, 0}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // meters per second
	TurnSpeed float64 // radians per second (keyboard turning)
	MouseTurn float64 // radians per pixel of horizontal mouse travel

	// Combat
	Health     int
	Invincible bool

	// Dimensions (XZ footprint, meters)
	Radius float64
	Height float64

	// Weapon zone in front of the player
	WeaponDamage   int
	WeaponInterval float64 // seconds between hits on the same enemy
	WeaponReach    float64 // distance from player center to zone center
	WeaponSize     float64 // side length of the square zone

	// Death
	DeathFadeDuration float64
	DeathHoldDuration float64
}

// PartConfig describes one visual sub-part of an actor. Parts become
// independent pieces when the actor decomposes on death.
type PartConfig struct {
	Name    string     `yaml:"name"`
	Offset  [3]float64 `yaml:"offset"`
	Size    float64    `yaml:"size"`
	Color   [4]uint8   `yaml:"color"`
	HasBody bool       `yaml:"has_body"` // false => a default body is attached on death
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name   string      `yaml:"name"`
	Health int         `yaml:"health"`
	Motion MotionKind  `yaml:"motion"`
	Death  DeathPolicy `yaml:"death"`

	// Follow behavior
	MoveSpeed       float64 `yaml:"move_speed"`
	TurnRate        float64 `yaml:"turn_rate"`
	DetectionRadius float64 `yaml:"detection_radius"`
	VisualYawOffset float64 `yaml:"visual_yaw_offset"` // degrees
	StartEngaged    bool    `yaml:"start_engaged"`
	StartInvincible bool    `yaml:"start_invincible"`

	// Melee damage zone
	MeleeDamage   int     `yaml:"melee_damage"`
	MeleeInterval float64 `yaml:"melee_interval"`
	MeleeReach    float64 `yaml:"melee_reach"` // zone half extent beyond the body radius

	// Dimensions (XZ footprint, meters)
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`

	Color color.RGBA   `yaml:"-"`
	Parts []PartConfig `yaml:"parts"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig

	// Navigation backend
	RepathInterval   float64 // seconds between path requests while pursuing
	WaypointReached  float64 // meters; waypoint considered reached inside this radius
	StoppingDistance float64 // NavMotion stops this far from the target
}

// BossConfig contains the flicker/teleport activation sequence tunables
type BossConfig struct {
	FlickerDuration float64 `yaml:"flicker_duration"`
	MinInterval     float64 `yaml:"min_interval"`
	MaxInterval     float64 `yaml:"max_interval"`
	TeleportDelay   float64 `yaml:"teleport_delay"`
}

// DeathConfig contains the decomposition tunables
type DeathConfig struct {
	PieceLifetime  float64 `yaml:"piece_lifetime"`  // seconds until a detached piece is removed
	ExplosionForce float64 `yaml:"explosion_force"` // outward impulse, 0 disables
	ExplosionLift  float64 `yaml:"explosion_lift"`  // upward share of the impulse
	DefaultPiece   float64 `yaml:"default_piece"`   // collider size attached to parts without one
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // m/s^2
	MaxFallSpeed float64
	FloorY       float64
	Friction     float64 // per-second horizontal damping for grounded free bodies
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	HealthBarDuration float64 // seconds an enemy health bar stays visible after a hit
}

// DoorConfig contains door defaults used when the level omits a property
type DoorConfig struct {
	OpenAngle float64 // degrees
	OpenSpeed float64 // 1/seconds
	AutoClose bool
	Width     float64
	Thickness float64
}

// SpawnConfig contains enemy spawner defaults
type SpawnConfig struct {
	Count           int
	Delay           float64
	StarfishDelay   float64 // delay between starfish spawns
	StarfishFall    float64 // seconds a starfish hangs before dropping
	StarfishFlip    float64 // seconds to flip 180 degrees while falling
	StarfishHeight  float64 // spawn height of ceiling starfish
	StarfishYawTurn float64 // degrees added to the spawn point yaw
}

// FinishConfig contains the win sequence tunables
type FinishConfig struct {
	Text            string
	TextFade        float64
	Pause           float64
	FadeColor       color.RGBA
	FadeDuration    float64
	DisplayDuration float64
}

// FadeConfig contains screen fade defaults
type FadeConfig struct {
	DefaultDuration float64
	DeathColor      color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	Title             string
	TitleColor        color.RGBA
}

// ViewConfig contains the top-down debug view configuration
type ViewConfig struct {
	PixelsPerMeter  float64
	FollowSmoothing float64 // share of the distance to the player closed per tick
	Background      color.RGBA
	WallColor       color.RGBA
	DoorColor       color.RGBA
	TriggerColor    color.RGBA
	PlayerColor     color.RGBA
	WeaponColor     color.RGBA
	HUDTextColor    color.RGBA
	HealthBarBg     color.RGBA
	HealthBarFg     color.RGBA
	ShowTriggers    bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Boss BossConfig
var Death DeathConfig
var Physics PhysicsConfig
var Combat CombatConfig
var Door DoorConfig
var Spawn SpawnConfig
var Finish FinishConfig
var Fade FadeConfig
var Pause PauseConfig
var View ViewConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	TuningPath string // Optional YAML overrides
	WatchTune  bool   // Reload TuningPath when it changes
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 120, G: 0, B: 0, A: 255}
	Bone         = color.RGBA{R: 220, G: 210, B: 180, A: 255}
	Flesh        = color.RGBA{R: 200, G: 150, B: 130, A: 255}
	Coral        = color.RGBA{R: 255, G: 120, B: 90, A: 255}
	Ash          = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	Sickly       = color.RGBA{R: 190, G: 200, B: 120, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Physics = PhysicsConfig{
		Gravity:      9.81,
		MaxFallSpeed: 30,
		FloorY:       0,
		Friction:     4,
	}

	Player = PlayerConfig{
		MoveSpeed:         3.0,
		TurnSpeed:         2.5,
		MouseTurn:         0.005,
		Health:            100,
		Invincible:        false,
		Radius:            0.3,
		Height:            1.8,
		WeaponDamage:      15,
		WeaponInterval:    0.5,
		WeaponReach:       0.8,
		WeaponSize:        0.8,
		DeathFadeDuration: 1.5,
		DeathHoldDuration: 1.0,
	}

	smiler := EnemyTypeConfig{
		Name:            "Smiler",
		Health:          50,
		Motion:          MotionBody,
		Death:           DeathDecompose,
		MoveSpeed:       2,
		TurnRate:        5,
		DetectionRadius: 10,
		VisualYawOffset: 90,
		StartEngaged:    true,
		MeleeDamage:     10,
		MeleeInterval:   1.5,
		MeleeReach:      0.4,
		Radius:          0.35,
		Height:          1.9,
		Color:           Bone,
		Parts: []PartConfig{
			{Name: "head", Offset: [3]float64{0, 1.7, 0}, Size: 0.3, Color: [4]uint8{240, 235, 200, 255}},
			{Name: "torso", Offset: [3]float64{0, 1.2, 0}, Size: 0.45, Color: [4]uint8{210, 200, 170, 255}, HasBody: true},
			{Name: "left_arm", Offset: [3]float64{-0.35, 1.3, 0}, Size: 0.15, Color: [4]uint8{200, 190, 160, 255}},
			{Name: "right_arm", Offset: [3]float64{0.35, 1.3, 0}, Size: 0.15, Color: [4]uint8{200, 190, 160, 255}},
			{Name: "legs", Offset: [3]float64{0, 0.5, 0}, Size: 0.35, Color: [4]uint8{180, 170, 140, 255}},
		},
	}

	starfish := EnemyTypeConfig{
		Name:            "Starfish",
		Health:          30,
		Motion:          MotionBody,
		Death:           DeathDecompose,
		MoveSpeed:       2,
		TurnRate:        8,
		DetectionRadius: 10,
		StartEngaged:    false,
		MeleeDamage:     5,
		MeleeInterval:   1.0,
		MeleeReach:      0.3,
		Radius:          0.4,
		Height:          0.3,
		Color:           Coral,
		Parts: []PartConfig{
			{Name: "arm_0", Offset: [3]float64{0, 0.1, 0.35}, Size: 0.15, Color: [4]uint8{255, 120, 90, 255}},
			{Name: "arm_1", Offset: [3]float64{0.33, 0.1, 0.11}, Size: 0.15, Color: [4]uint8{255, 120, 90, 255}},
			{Name: "arm_2", Offset: [3]float64{0.2, 0.1, -0.28}, Size: 0.15, Color: [4]uint8{255, 120, 90, 255}},
			{Name: "arm_3", Offset: [3]float64{-0.2, 0.1, -0.28}, Size: 0.15, Color: [4]uint8{255, 120, 90, 255}},
			{Name: "arm_4", Offset: [3]float64{-0.33, 0.1, 0.11}, Size: 0.15, Color: [4]uint8{255, 120, 90, 255}},
		},
	}

	boss := EnemyTypeConfig{
		Name:            "Boss",
		Health:          200,
		Motion:          MotionNav,
		Death:           DeathDecompose,
		MoveSpeed:       3,
		TurnRate:        6,
		DetectionRadius: 15,
		StartEngaged:    false,
		StartInvincible: true,
		MeleeDamage:     25,
		MeleeInterval:   1.5,
		MeleeReach:      0.5,
		Radius:          0.6,
		Height:          2.6,
		Color:           Ash,
		Parts: []PartConfig{
			{Name: "skull", Offset: [3]float64{0, 2.4, 0}, Size: 0.45, Color: [4]uint8{120, 120, 130, 255}},
			{Name: "ribcage", Offset: [3]float64{0, 1.7, 0}, Size: 0.7, Color: [4]uint8{90, 90, 100, 255}, HasBody: true},
			{Name: "left_claw", Offset: [3]float64{-0.6, 1.5, 0.2}, Size: 0.3, Color: [4]uint8{70, 70, 80, 255}},
			{Name: "right_claw", Offset: [3]float64{0.6, 1.5, 0.2}, Size: 0.3, Color: [4]uint8{70, 70, 80, 255}},
			{Name: "pelvis", Offset: [3]float64{0, 1.0, 0}, Size: 0.5, Color: [4]uint8{80, 80, 90, 255}},
			{Name: "legs", Offset: [3]float64{0, 0.4, 0}, Size: 0.5, Color: [4]uint8{60, 60, 70, 255}, HasBody: true},
		},
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Smiler":   smiler,
			"Starfish": starfish,
			"Boss":     boss,
		},
		RepathInterval:   0.5,
		WaypointReached:  0.25,
		StoppingDistance: 1.5,
	}

	Boss = BossConfig{
		FlickerDuration: 5,
		MinInterval:     0.05,
		MaxInterval:     0.2,
		TeleportDelay:   0.2,
	}

	Death = DeathConfig{
		PieceLifetime:  2.0,
		ExplosionForce: 0,
		ExplosionLift:  0.3,
		DefaultPiece:   0.2,
	}

	Combat = CombatConfig{
		HealthBarDuration: 3,
	}

	Door = DoorConfig{
		OpenAngle: 90,
		OpenSpeed: 2,
		AutoClose: true,
		Width:     1.2,
		Thickness: 0.1,
	}

	Spawn = SpawnConfig{
		Count:           3,
		Delay:           0.5,
		StarfishDelay:   0.3,
		StarfishFall:    1,
		StarfishFlip:    0.5,
		StarfishHeight:  3,
		StarfishYawTurn: 180,
	}

	Finish = FinishConfig{
		Text:            "YOU ESCAPED",
		TextFade:        1.0,
		Pause:           0.5,
		FadeColor:       White,
		FadeDuration:    1.5,
		DisplayDuration: 5,
	}

	Fade = FadeConfig{
		DefaultDuration: 1.0,
		DeathColor:      DarkRed,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		Title:             "The hall waits",
		TitleColor:        DarkRed,
	}

	View = ViewConfig{
		PixelsPerMeter:  24,
		FollowSmoothing: 0.15,
		Background:      color.RGBA{R: 12, G: 10, B: 14, A: 255},
		WallColor:       color.RGBA{R: 60, G: 56, B: 66, A: 255},
		DoorColor:       color.RGBA{R: 110, G: 80, B: 50, A: 255},
		TriggerColor:    color.RGBA{R: 80, G: 160, B: 80, A: 120},
		PlayerColor:     color.RGBA{R: 120, G: 180, B: 255, A: 255},
		WeaponColor:     color.RGBA{R: 200, G: 220, B: 255, A: 90},
		HUDTextColor:    White,
		HealthBarBg:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthBarFg:     color.RGBA{R: 200, G: 30, B: 30, A: 255},
	}
}

// EnemyType returns the configuration for name, falling back to Smiler.
func EnemyType(name string) (EnemyTypeConfig, bool) {
	t, ok := Enemy.Types[name]
	if !ok {
		return Enemy.Types["Smiler"], false
	}
	return t, true
}

// PartColor converts a part's RGBA array into a color.
func (p PartConfig) PartColor() color.RGBA {
	return color.RGBA{R: p.Color[0], G: p.Color[1], B: p.Color[2], A: p.Color[3]}
}

// OffsetVec returns the part offset as a vector.
func (p PartConfig) OffsetVec() mgl64.Vec3 {
	return mgl64.Vec3{p.Offset[0], p.Offset[1], p.Offset[2]}
}
