package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ohflip/internal/core"
)

const (
	sampleRate = beep.SampleRate(44100)

	// maxVoices caps effects mixed at once; extra events are dropped.
	maxVoices = 8
)

// SoundManager mixes event effects onto the local speaker.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given linear volume.
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// HandleEvents plays the effect for each event of a tick.
func (sm *SoundManager) HandleEvents(events []core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || len(events) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	for _, e := range events {
		if sm.mixer.Len() >= maxVoices {
			return
		}
		if s := EffectFor(e, sampleRate, sm.volume); s != nil {
			sm.mixer.Add(s)
		}
	}
}
