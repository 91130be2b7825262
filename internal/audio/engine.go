// Package audio plays the runner's sound cues through the system speaker.
// Every cue is synthesized, so there are no asset files to ship.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dino-runner/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Engine mixes cue sounds into a single speaker stream.
// A nil or uninitialized engine is silent.
type Engine struct {
	mu          sync.Mutex
	logger      *log.Logger
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
}

// NewEngine creates an engine. Call Init to open the speaker.
func NewEngine(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	mixer := &beep.Mixer{}
	return &Engine{
		logger: logger,
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Init opens the speaker and starts the mixer.
func (e *Engine) Init() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(e.volume)
	e.initialized = true
	e.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Play schedules a cue. It returns immediately.
func (e *Engine) Play(c core.Cue) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized || e.muted {
		return
	}
	s := Streamer(c, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	e.mixer.Add(s)
	speaker.Unlock()
}

// PlayAll schedules every cue in order.
func (e *Engine) PlayAll(cues []core.Cue) {
	for _, c := range cues {
		e.Play(c)
	}
}

// SetMuted silences or restores output. Cues played while muted are dropped.
func (e *Engine) SetMuted(muted bool) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.muted = muted
	if e.initialized {
		speaker.Lock()
		e.volume.Silent = muted
		speaker.Unlock()
	} else {
		e.volume.Silent = muted
	}
}

// Muted reports whether output is silenced.
func (e *Engine) Muted() bool {
	if e == nil {
		return true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.muted
}

// Close stops playback and releases the speaker.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.initialized = false
}
