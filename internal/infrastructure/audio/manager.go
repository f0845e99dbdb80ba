// Package audio synthesizes and plays the game's sound effects with beep.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player plays sound effects
type Player interface {
	Play(s Sound)
}

// Manager owns the speaker and a mixer that every effect is added to.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewManager creates a manager. A muted manager never touches the speaker.
func NewManager(muted bool) *Manager {
	return &Manager{mixer: &beep.Mixer{}, muted: muted}
}

// Initialize opens the speaker. Failure is returned but leaves the manager
// usable as a silent player.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		m.muted = true
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	log.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Muted reports whether Play is a no-op.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted || !m.initialized
}

// Play mixes a new instance of s into the output.
func (m *Manager) Play(s Sound) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.muted || !m.initialized {
		return
	}
	streamer := NewSound(s, sampleRate)
	if streamer == nil {
		return
	}
	speaker.Lock()
	m.mixer.Add(streamer)
	speaker.Unlock()
}

// Cleanup silences anything still playing.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}
