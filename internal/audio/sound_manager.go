// internal/audio/sound_manager.go
package audio

import (
	"math"
	"sync"
	"time"

	"space-war/internal/event"
	"space-war/internal/utils"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	shotFrequency     = 880.0
	shotDuration      = 80 * time.Millisecond
	explosionDuration = 450 * time.Millisecond
	roundEndDuration  = 150 * time.Millisecond

	explosionAmplitude = 0.6
	explosionSeed      = 1 // каждый взрыв звучит одинаково
)

// SoundManager озвучивает события раунда. Если аудиоустройство недоступно,
// Initialize возвращает ошибку, а все Play* молча ничего не делают.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: utils.Clamp01(volume),
	}
}

// Initialize sets up the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup останавливает все звуки и закрывает устройство
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether sounds are actually played.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// OnEvent implements event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.ProjectileFired:
		sm.PlayShot()
	case event.CraftDestroyed:
		sm.PlayExplosion()
	case event.RoundEnded:
		sm.PlayRoundEnd()
	}
}

func (sm *SoundManager) PlayShot() {
	sm.play(newShot(sampleRate))
}

func (sm *SoundManager) PlayExplosion() {
	sm.play(newExplosion(sampleRate, explosionDuration))
}

func (sm *SoundManager) PlayRoundEnd() {
	sm.play(newRoundEnd(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(withVolume(s, sm.volume))
	speaker.Unlock()
}

// withVolume: громкость в линейной шкале 0..1
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// newShot: короткий синусоидальный «пиу»
func newShot(sr beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(sr, shotFrequency)
	if err != nil {
		return nil
	}
	return beep.Take(sr.N(shotDuration), sine)
}

// newRoundEnd: два тона вниз
func newRoundEnd(sr beep.SampleRate) beep.Streamer {
	high, err := generators.SineTone(sr, 660)
	if err != nil {
		return nil
	}
	low, err := generators.SineTone(sr, 440)
	if err != nil {
		return nil
	}
	return beep.Seq(
		beep.Take(sr.N(roundEndDuration), high),
		beep.Take(sr.N(roundEndDuration), low),
	)
}

// newExplosion: белый шум с линейным затуханием
func newExplosion(sr beep.SampleRate, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	rng := utils.NewPRNGService(explosionSeed)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			amp := utils.Lerp(explosionAmplitude, 0, float64(pos)/float64(total))
			v := rng.Range(-1, 1) * amp
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}
