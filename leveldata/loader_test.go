package leveldata

import (
	"errors"
	"math"
	"testing"
	"testing/fstest"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="32" tileheight="32" infinite="0" nextlayerid="5" nextobjectid="20">
 <properties>
  <property name="pixels_per_meter" type="float" value="32"/>
 </properties>
 <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="0" width="320" height="16"/>
 </objectgroup>
 <objectgroup id="2" name="Player">
  <object id="2" x="32" y="64">
   <properties><property name="yaw" type="float" value="90"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="Boss">
  <object id="3" x="256" y="64"/>
  <object id="4" class="destination" x="128" y="64">
   <properties><property name="yaw" type="float" value="180"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="Triggers">
  <object id="5" class="boss_door" x="96" y="32" width="32" height="64">
   <properties><property name="target" value="boss"/></properties>
  </object>
  <object id="6" class="finish" x="288" y="0" width="32" height="32">
   <properties><property name="one_shot" type="bool" value="false"/></properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Spawners">
  <object id="7" name="hall" x="0" y="0">
   <properties>
    <property name="enemy" value="Smiler"/>
    <property name="count" type="int" value="2"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="6" name="SpawnPoints">
  <object id="8" x="64" y="64"><properties><property name="spawner" value="hall"/></properties></object>
  <object id="9" x="96" y="64"><properties><property name="spawner" value="hall"/></properties></object>
  <object id="10" x="96" y="96"><properties><property name="spawner" value="other"/></properties></object>
 </objectgroup>
</map>
`

const noPlayerMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="32" tileheight="32" infinite="0" nextlayerid="1" nextobjectid="1">
</map>
`

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testMap)}}

	level, err := Load(fsys, "levels/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if level.Name != "test" {
		t.Errorf("Name = %q, want test", level.Name)
	}
	if !near(level.Width, 10) || !near(level.Depth, 5) {
		t.Errorf("size = %vx%v, want 10x5", level.Width, level.Depth)
	}
	if len(level.Walls) != 1 || !near(level.Walls[0].W, 10) || !near(level.Walls[0].D, 0.5) {
		t.Errorf("walls = %+v", level.Walls)
	}

	p := level.PlayerSpawn
	if !near(p.Position.X(), 1) || !near(p.Position.Z(), 2) || !near(p.Yaw, math.Pi/2) {
		t.Errorf("player spawn = %+v", p)
	}

	if level.Boss == nil || !near(level.Boss.Position.X(), 8) {
		t.Errorf("boss = %+v", level.Boss)
	}
	if level.BossDestination == nil || !near(level.BossDestination.Yaw, math.Pi) {
		t.Errorf("boss destination = %+v", level.BossDestination)
	}

	if len(level.Triggers) != 2 {
		t.Fatalf("triggers = %d, want 2", len(level.Triggers))
	}
	if tr := level.Triggers[0]; tr.Kind != "boss_door" || tr.Target != "boss" || !tr.OneShot {
		t.Errorf("trigger 0 = %+v", tr)
	}
	if level.Triggers[1].OneShot {
		t.Error("trigger 1 should not be one-shot")
	}

	if len(level.Spawners) != 1 {
		t.Fatalf("spawners = %d, want 1", len(level.Spawners))
	}
	if sp := level.Spawners[0]; sp.Count != 2 || sp.EnemyType != "Smiler" || len(sp.Points) != 2 {
		t.Errorf("spawner = %+v", sp)
	}
}

func TestLoadMissingPlayer(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(noPlayerMap)}}
	_, err := Load(fsys, "levels/empty.tmx")
	if !errors.Is(err, ErrNoPlayerSpawn) {
		t.Errorf("err = %v, want ErrNoPlayerSpawn", err)
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": {Data: []byte(testMap)},
		"levels/a.tmx": {Data: []byte(testMap)},
	}
	levels, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}
	if levels["a"] == nil {
		t.Error("level a missing")
	}
}

func TestLoadAllEmpty(t *testing.T) {
	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("expected an error for a directory without levels")
	}
}
