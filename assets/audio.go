package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	cfg "github.com/automoto/dreadhall/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects. Samples are 16-bit
// little endian stereo at the context sample rate.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
	rnd      *rand.Rand
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
		rnd:      rand.New(rand.NewSource(1)),
	}
}

// PreloadAll synthesizes every configured sound so the first play does not stall.
func (l *AudioLoader) PreloadAll() map[cfg.SoundID][]byte {
	for id := range cfg.Sound.Tones {
		_, _ = l.PCM(id)
	}
	return l.sfxCache
}

// PCM returns the cached samples for id, synthesizing them on first use.
func (l *AudioLoader) PCM(id cfg.SoundID) ([]byte, error) {
	if pcm, ok := l.sfxCache[id]; ok {
		return pcm, nil
	}
	ts, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	pcm := Synthesize(ts, l.context.SampleRate(), l.rnd)
	l.sfxCache[id] = pcm
	return pcm, nil
}

// LoadSFX returns a new player for id each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	pcm, err := l.PCM(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(pcm), nil
}

// LoadLoop returns a player that repeats id forever.
func (l *AudioLoader) LoadLoop(id cfg.SoundID) (*audio.Player, error) {
	pcm, err := l.PCM(id)
	if err != nil {
		return nil, err
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := l.context.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create loop player for sound %d: %w", id, err)
	}
	return player, nil
}

// Synthesize renders ts as 16-bit stereo PCM: a swept sine mixed with white
// noise under an exponential decay envelope.
func Synthesize(ts cfg.ToneSpec, sampleRate int, rnd *rand.Rand) []byte {
	n := int(ts.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		freq := ts.Frequency + ts.Sweep*(t/ts.Duration)
		phase += 2 * math.Pi * freq / float64(sampleRate)

		tone := 0.0
		if ts.Frequency > 0 {
			tone = math.Sin(phase)
		}
		noise := rnd.Float64()*2 - 1
		v := tone*(1-ts.Noise) + noise*ts.Noise
		v *= math.Exp(-ts.Decay*t) * ts.Volume

		// Short release so sounds do not click at the cut.
		if remaining := n - i; remaining < 64 {
			v *= float64(remaining) / 64
		}

		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
