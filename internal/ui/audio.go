package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundDrop SoundType = iota
	SoundUndo
	SoundRefused
)

const (
	sampleRate = 44100
)

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager(enabled bool) *AudioManager {
	return &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  generateSounds(),
		enabled: enabled,
		volume:  0.5,
	}
}

// generateSounds creates procedural sounds for each event type.
func generateSounds() map[SoundType][]byte {
	return map[SoundType][]byte{
		// Wood on wood
		SoundDrop: generateClick(440, 0.08, 0.3),
		// Lower, quieter click
		SoundUndo: generateClick(300, 0.06, 0.2),
		// Low buzz
		SoundRefused: generateBuzz(150, 0.1, 0.3),
	}
}

// generateClick creates a short percussive click sound.
func generateClick(freq, duration, amplitude float64) []byte {
	return synth(duration, func(i int, t, _ float64) float64 {
		// Exponential decay envelope
		envelope := math.Exp(-t * 30)
		// Some noise for wood texture
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		return (math.Sin(2*math.Pi*freq*t) + noise) * envelope * amplitude
	})
}

// generateBuzz creates a low error buzz.
func generateBuzz(freq, duration, amplitude float64) []byte {
	return synth(duration, func(_ int, t, progress float64) float64 {
		envelope := 1.0 - progress
		wave := math.Sin(2*math.Pi*freq*t) + 0.3*math.Sin(4*math.Pi*freq*t)
		return wave * envelope * amplitude * 0.5
	})
}

// synth renders sample(i, t, progress) as 16-bit little-endian stereo PCM.
func synth(duration float64, sample func(i int, t, progress float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := sample(i, t, t/duration)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}

		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// New player per play so sounds can overlap
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
