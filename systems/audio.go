package systems

import (
	"log"
	"sync"

	"github.com/automoto/dreadhall/assets"
	"github.com/automoto/dreadhall/components"
	cfg "github.com/automoto/dreadhall/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     cfg.SoundID
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalFadeTimer    float64
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX synthesizes all sound effects at startup to avoid lag on
// first play.
func PreloadAllSFX() {
	initGlobalAudio()
	bank := globalAudioLoader.PreloadAll()
	log.Printf("[audio] synthesized %d sounds", len(bank))
}

// UpdateAudio plays queued SFX and advances music fades. Sounds are only
// queued by gameplay systems, so simulation code never touches the device.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()
	dt := deltaTime(e.World)

	if globalFadeTimer > 0 {
		globalFadeTimer -= dt
		if globalMusicPlayer != nil {
			progress := max(0, globalFadeTimer/cfg.Audio.MusicFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer <= 0 {
			StopMusic(e)
		}
	}

	audioData := GetOrCreateAudio(e)
	if audioData.Context == nil {
		audioData.Context = globalAudioContext
	}
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	player, err := globalAudioLoader.LoadSFX(soundID)
	if err != nil {
		log.Printf("[audio] %v", err)
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}

// PlayMusic starts looping the given sound as background music.
func PlayMusic(e *ecs.ECS, id cfg.SoundID) {
	initGlobalAudio()

	// Already playing this music
	if globalMusicPlayer != nil && globalMusicKey == id && globalFadeTimer <= 0 {
		return
	}
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadLoop(id)
	if err != nil {
		log.Printf("[audio] %v", err)
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = id
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeStart = globalMusicVolume
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
	}
	globalFadeTimer = 0
}

// PauseMusic pauses the current music playback
func PauseMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Pause()
	}
}

// ResumeMusic resumes paused music playback
func ResumeMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		globalMusicPlayer.Play()
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = volume
	if globalMusicPlayer != nil && globalFadeTimer <= 0 {
		globalMusicPlayer.SetVolume(volume)
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetMusicVolume returns the current music volume (0.0 - 1.0)
func GetMusicVolume() float64 {
	return globalMusicVolume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. The device context is attached by UpdateAudio.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
