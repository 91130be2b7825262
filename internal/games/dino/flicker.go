package dino

import "github.com/vovakirdan/dino-runner/internal/config"

// Flicker fades the score out and back in a fixed number of times after a
// milestone.
type Flicker struct {
	halfMs    float64
	cycles    int
	remaining float64
}

// NewFlicker creates an idle flicker.
func NewFlicker(cfg config.ScoringConfig) Flicker {
	return Flicker{halfMs: cfg.FlickerHalfMs, cycles: cfg.FlickerCycles}
}

// Start restarts the flicker from full opacity.
func (f *Flicker) Start() {
	f.remaining = f.total()
}

// Stop ends the flicker immediately.
func (f *Flicker) Stop() {
	f.remaining = 0
}

// Advance moves the flicker forward in time.
func (f *Flicker) Advance(deltaMs float64) {
	f.remaining = max(f.remaining-deltaMs, 0)
}

// Active reports whether the flicker is running.
func (f *Flicker) Active() bool {
	return f.remaining > 0
}

// Alpha returns the score opacity in [0, 1]. Each cycle fades out over one
// half period and back in over the next.
func (f *Flicker) Alpha() float64 {
	if !f.Active() || f.halfMs <= 0 {
		return 1
	}
	elapsed := f.total() - f.remaining
	phase := int(elapsed / f.halfMs)
	t := (elapsed - float64(phase)*f.halfMs) / f.halfMs
	if phase%2 == 0 {
		return 1 - t
	}
	return t
}

// Visible reports whether a binary renderer should draw the score.
func (f *Flicker) Visible() bool {
	return f.Alpha() >= 0.5
}

func (f *Flicker) total() float64 {
	return f.halfMs * 2 * float64(f.cycles)
}
