package systems

import (
	"encoding/json"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	MusicVolume float64 `json:"musicVolume"`
	SFXVolume   float64 `json:"sfxVolume"`
	Muted       bool    `json:"muted"`
	Fullscreen  bool    `json:"fullscreen"`
}

// RunRecord accumulates results across play sessions.
type RunRecord struct {
	Runs     int     `json:"runs"`
	Wins     int     `json:"wins"`
	Deaths   int     `json:"deaths"`
	Kills    int     `json:"kills"`
	BestTime float64 `json:"bestTime"` // seconds, 0 until the first win
}

// itemStore is the part of gdata.Manager the game saves through.
type itemStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// store is nil until InitPersistence succeeds; loads and saves are then
// no-ops.
var store itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "dreadhall",
	})
	if err != nil {
		log.Printf("[persistence] could not initialize: %v", err)
		return err
	}
	store = m
	return nil
}

func loadItem(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("[persistence] could not load %s: %v", key, err)
		return false, nil
	}
	if len(data) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("[persistence] could not parse %s: %v", key, err)
		return false, err
	}
	return true, nil
}

func saveItem(key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "serialize %s", key)
	}
	if err := store.SaveItem(key, data); err != nil {
		return errors.Wrapf(err, "save %s", key)
	}
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	var s SavedSettings
	ok, err := loadItem("settings", &s)
	if !ok {
		return nil, err
	}
	return &s, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveItem("settings", s)
}

// CurrentSettings captures the live audio and window settings.
func CurrentSettings(muted bool) *SavedSettings {
	return &SavedSettings{
		MusicVolume: GetMusicVolume(),
		SFXVolume:   GetSFXVolume(),
		Muted:       muted,
		Fullscreen:  ebiten.IsFullscreen(),
	}
}

// ApplySavedSettingsGlobal applies settings during startup, before any
// scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	SetMusicVolume(saved.MusicVolume)
	SetSFXVolume(saved.SFXVolume)
	if saved.Muted {
		SetMusicVolume(0)
		SetSFXVolume(0)
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}

// LoadRunRecord returns the saved record, or a zero record.
func LoadRunRecord() RunRecord {
	var r RunRecord
	_, _ = loadItem("record", &r)
	return r
}

// RecordRun folds one finished run into the saved record. The updated
// record is returned even when it could not be written.
func RecordRun(won bool, kills int, seconds float64) (RunRecord, error) {
	r := LoadRunRecord().Add(won, kills, seconds)
	return r, saveItem("record", r)
}

// Add returns r updated with one run.
func (r RunRecord) Add(won bool, kills int, seconds float64) RunRecord {
	r.Runs++
	r.Kills += kills
	if !won {
		r.Deaths++
		return r
	}
	r.Wins++
	if r.BestTime == 0 || seconds < r.BestTime {
		r.BestTime = seconds
	}
	return r
}
