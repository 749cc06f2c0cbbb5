package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Tuning is the on-disk override file. Every section is optional and only the
// keys present in the file replace the compiled-in defaults.
type Tuning struct {
	Boss    yaml.Node            `yaml:"boss"`
	Death   yaml.Node            `yaml:"death"`
	Player  yaml.Node            `yaml:"player"`
	Enemies map[string]yaml.Node `yaml:"enemies"`
}

type playerTuning struct {
	MoveSpeed      *float64 `yaml:"move_speed"`
	Health         *int     `yaml:"health"`
	Invincible     *bool    `yaml:"invincible"`
	WeaponDamage   *int     `yaml:"weapon_damage"`
	WeaponInterval *float64 `yaml:"weapon_interval"`
}

// LoadTuning reads path and applies it on top of the current configuration.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "tuning: read %s", path)
	}
	if err := ApplyTuning(data); err != nil {
		return errors.Wrapf(err, "tuning: %s", path)
	}
	return nil
}

// ApplyTuning decodes a tuning document and merges it into the globals.
// Nothing is modified when the document fails to decode.
func ApplyTuning(data []byte) error {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return errors.Wrap(err, "unmarshal")
	}

	boss := Boss
	if !isEmpty(t.Boss) {
		if err := t.Boss.Decode(&boss); err != nil {
			return errors.Wrap(err, "boss")
		}
	}
	if boss.MinInterval <= 0 || boss.MaxInterval < boss.MinInterval {
		return errors.Errorf("boss: interval range [%v, %v] is invalid", boss.MinInterval, boss.MaxInterval)
	}

	death := Death
	if !isEmpty(t.Death) {
		if err := t.Death.Decode(&death); err != nil {
			return errors.Wrap(err, "death")
		}
	}

	player := Player
	if !isEmpty(t.Player) {
		var pt playerTuning
		if err := t.Player.Decode(&pt); err != nil {
			return errors.Wrap(err, "player")
		}
		if pt.MoveSpeed != nil {
			player.MoveSpeed = *pt.MoveSpeed
		}
		if pt.Health != nil {
			player.Health = *pt.Health
		}
		if pt.Invincible != nil {
			player.Invincible = *pt.Invincible
		}
		if pt.WeaponDamage != nil {
			player.WeaponDamage = *pt.WeaponDamage
		}
		if pt.WeaponInterval != nil {
			player.WeaponInterval = *pt.WeaponInterval
		}
		if player.Health <= 0 {
			return errors.Errorf("player: health must be positive")
		}
	}

	types := make(map[string]EnemyTypeConfig, len(Enemy.Types))
	for name, et := range Enemy.Types {
		types[name] = et
	}
	for name, node := range t.Enemies {
		et, ok := types[name]
		if !ok {
			et = types["Smiler"]
			et.Name = name
		}
		if err := node.Decode(&et); err != nil {
			return errors.Wrapf(err, "enemy %s", name)
		}
		if et.Health <= 0 {
			return errors.Errorf("enemy %s: health must be positive", name)
		}
		switch et.Motion {
		case MotionTransform, MotionBody, MotionNav:
		default:
			return errors.Errorf("enemy %s: unknown motion %q", name, et.Motion)
		}
		switch et.Death {
		case DeathDecompose, DeathSimpleDisable:
		default:
			return errors.Errorf("enemy %s: unknown death policy %q", name, et.Death)
		}
		types[name] = et
	}

	Boss = boss
	Death = death
	Player = player
	Enemy.Types = types
	return nil
}

func isEmpty(n yaml.Node) bool {
	return n.Kind == 0
}
