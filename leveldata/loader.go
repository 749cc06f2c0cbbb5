package leveldata

import (
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
	"github.com/pkg/errors"
)

// ErrNoPlayerSpawn is returned for maps without a Player object.
var ErrNoPlayerSpawn = errors.New("level has no player spawn")

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, errors.Wrapf(err, "load TMX %s", tmxPath)
	}

	ppm := levelMap.Properties.GetFloat("pixels_per_meter")
	if ppm <= 0 {
		ppm = DefaultPixelsPerMeter
	}
	toMeters := func(px float64) float64 { return px / ppm }
	rect := func(o *tiled.Object) Rect {
		return Rect{X: toMeters(o.X), Z: toMeters(o.Y), W: toMeters(o.Width), D: toMeters(o.Height)}
	}
	spawn := func(o *tiled.Object) Spawn {
		return Spawn{
			Position: mgl64.Vec3{toMeters(o.X), o.Properties.GetFloat("height"), toMeters(o.Y)},
			Yaw:      mgl64.DegToRad(o.Properties.GetFloat("yaw")),
		}
	}

	level := &Level{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: toMeters(float64(levelMap.Width * levelMap.TileWidth)),
		Depth: toMeters(float64(levelMap.Height * levelMap.TileHeight)),
	}

	hasPlayer := false
	points := map[string][]Spawn{}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, rect(o))
			}
		case "Player":
			for _, o := range og.Objects {
				level.PlayerSpawn = spawn(o)
				hasPlayer = true
			}
		case "Enemies":
			for _, o := range og.Objects {
				level.Enemies = append(level.Enemies, Actor{Type: objectType(o), Spawn: spawn(o)})
			}
		case "Boss":
			for _, o := range og.Objects {
				if objectType(o) == "destination" {
					dest := spawn(o)
					level.BossDestination = &dest
					continue
				}
				level.Boss = &Actor{Type: "Boss", Spawn: spawn(o)}
			}
		case "Doors":
			for _, o := range og.Objects {
				zone := rect(o)
				hinge := zone.Center()
				if o.Properties.GetString("hinge_x") != "" {
					hinge = mgl64.Vec3{toMeters(o.Properties.GetFloat("hinge_x")), 0, toMeters(o.Properties.GetFloat("hinge_y"))}
				}
				width := toMeters(o.Properties.GetFloat("door_width"))
				if width <= 0 {
					width = math.Max(zone.W, zone.D)
				}
				level.Doors = append(level.Doors, Door{
					Name:      o.Name,
					Zone:      zone,
					Hinge:     hinge,
					Yaw:       mgl64.DegToRad(o.Properties.GetFloat("yaw")),
					Width:     width,
					OpenAngle: o.Properties.GetFloat("open_angle"),
					OpenSpeed: o.Properties.GetFloat("open_speed"),
					AutoClose: boolOr(o, "auto_close", true),
					Locked:    o.Properties.GetBool("locked"),
				})
			}
		case "Triggers":
			for _, o := range og.Objects {
				level.Triggers = append(level.Triggers, Trigger{
					Kind:    objectType(o),
					Target:  o.Properties.GetString("target"),
					Zone:    rect(o),
					OneShot: boolOr(o, "one_shot", true),
				})
			}
		case "Spawners":
			for _, o := range og.Objects {
				level.Spawners = append(level.Spawners, Spawner{
					Name:      o.Name,
					EnemyType: o.Properties.GetString("enemy"),
					Count:     o.Properties.GetInt("count"),
					Delay:     o.Properties.GetFloat("delay"),
					Ceiling:   o.Properties.GetBool("ceiling"),
				})
			}
		case "SpawnPoints":
			for _, o := range og.Objects {
				name := o.Properties.GetString("spawner")
				points[name] = append(points[name], spawn(o))
			}
		}
	}

	if !hasPlayer {
		return nil, errors.Wrap(ErrNoPlayerSpawn, tmxPath)
	}

	for i := range level.Spawners {
		level.Spawners[i].Points = points[level.Spawners[i].Name]
	}

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "glob %s", pattern)
	}
	if len(matches) == 0 {
		return nil, nil, errors.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// objectType reads the Tiled class, falling back to the legacy type attribute.
func objectType(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}

func boolOr(o *tiled.Object, name string, def bool) bool {
	if o.Properties.GetString(name) == "" {
		return def
	}
	return o.Properties.GetBool(name)
}
