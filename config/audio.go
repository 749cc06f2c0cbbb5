package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundPlayerHit
	SoundEnemyHit
	SoundDeath
	SoundDecompose
	// Boss sounds
	SoundJumpscare
	SoundTeleport
	SoundBossRoom
	// World sounds
	SoundDoor
	SoundLanding
	SoundWin
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
	// Music
	SoundAmbience
)

// ToneSpec describes a synthesized sound effect. The bank is generated at
// startup, so the game ships without audio files.
type ToneSpec struct {
	Frequency float64 // Hz of the base oscillator, 0 for pure noise
	Sweep     float64 // Hz added linearly over the duration
	Duration  float64 // seconds
	Noise     float64 // 0..1 share of white noise
	Decay     float64 // exponential decay rate per second
	Volume    float64 // 0..1
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration float64 // seconds
}

// SoundConfig maps sound IDs to synthesis parameters
type SoundConfig struct {
	Tones map[SoundID]ToneSpec
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.75,
		DefaultSFXVol:     1.0,
		MusicFadeDuration: 1.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneSpec{
			SoundPlayerHit:    {Frequency: 140, Sweep: -60, Duration: 0.25, Noise: 0.4, Decay: 10, Volume: 0.8},
			SoundEnemyHit:     {Frequency: 320, Sweep: -120, Duration: 0.15, Noise: 0.3, Decay: 14, Volume: 0.6},
			SoundDeath:        {Frequency: 90, Sweep: -50, Duration: 0.8, Noise: 0.2, Decay: 3, Volume: 0.8},
			SoundDecompose:    {Frequency: 0, Duration: 0.5, Noise: 1, Decay: 6, Volume: 0.6},
			SoundJumpscare:    {Frequency: 660, Sweep: 900, Duration: 0.9, Noise: 0.6, Decay: 2, Volume: 1},
			SoundTeleport:     {Frequency: 220, Sweep: 440, Duration: 0.4, Noise: 0.1, Decay: 4, Volume: 0.7},
			SoundBossRoom:     {Frequency: 55, Sweep: 5, Duration: 2.5, Noise: 0.05, Decay: 0.8, Volume: 0.9},
			SoundDoor:         {Frequency: 70, Sweep: 30, Duration: 0.6, Noise: 0.5, Decay: 3, Volume: 0.5},
			SoundLanding:      {Frequency: 110, Sweep: -40, Duration: 0.2, Noise: 0.7, Decay: 12, Volume: 0.6},
			SoundWin:          {Frequency: 440, Sweep: 220, Duration: 1.2, Noise: 0, Decay: 1.5, Volume: 0.7},
			SoundMenuNavigate: {Frequency: 880, Duration: 0.05, Decay: 30, Volume: 0.4},
			SoundMenuSelect:   {Frequency: 660, Sweep: 220, Duration: 0.1, Decay: 20, Volume: 0.5},
			SoundAmbience:     {Frequency: 41, Sweep: 0, Duration: 4, Noise: 0.15, Decay: 0, Volume: 0.35},
		},
	}
}
