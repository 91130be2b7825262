package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/dino-runner/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
)

// Tone is one note of a cue. A non-zero EndFreq sweeps linearly from Freq.
type Tone struct {
	Freq     float64
	EndFreq  float64
	Duration time.Duration
	Wave     Wave
	Gain     float64
}

// Tones returns the notes played for a cue, in order.
func Tones(c core.Cue) []Tone {
	switch c {
	case core.CueJump:
		// Short rising chirp
		return []Tone{{Freq: 520, EndFreq: 880, Duration: 90 * time.Millisecond, Wave: WaveSine, Gain: 0.30}}
	case core.CueHit:
		// Low buzz
		return []Tone{{Freq: 110, Duration: 220 * time.Millisecond, Wave: WaveSquare, Gain: 0.20}}
	case core.CueProgress:
		// Two-note chime (E5, B5)
		return []Tone{
			{Freq: 659.25, Duration: 80 * time.Millisecond, Wave: WaveSine, Gain: 0.25},
			{Freq: 987.77, Duration: 140 * time.Millisecond, Wave: WaveSine, Gain: 0.25},
		}
	default:
		return nil
	}
}

// Duration returns the total length of a cue.
func Duration(c core.Cue) time.Duration {
	var d time.Duration
	for _, t := range Tones(c) {
		d += t.Duration
	}
	return d
}

// Streamer builds a finite streamer that plays a cue at the given rate.
// Returns nil for cues without tones.
func Streamer(c core.Cue, sr beep.SampleRate) beep.Streamer {
	tones := Tones(c)
	if len(tones) == 0 {
		return nil
	}
	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		parts = append(parts, toneStreamer(t, sr))
	}
	return beep.Seq(parts...)
}

func toneStreamer(t Tone, sr beep.SampleRate) beep.Streamer {
	n := sr.N(t.Duration)
	if t.Wave == WaveSine && t.EndFreq == 0 {
		if sine, err := generators.SineTone(sr, t.Freq); err == nil {
			return newFade(beep.Take(n, sine), n, t.Gain)
		}
	}
	return newFade(&oscillator{tone: t, rate: sr, total: n}, n, t.Gain)
}

// oscillator generates a square or swept wave for a fixed number of samples.
type oscillator struct {
	tone  Tone
	rate  beep.SampleRate
	phase float64
	pos   int
	total int
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}

		freq := o.tone.Freq
		if o.tone.EndFreq != 0 {
			freq += (o.tone.EndFreq - o.tone.Freq) * float64(o.pos) / float64(o.total)
		}

		var val float64
		switch o.tone.Wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error {
	return nil
}

// fade scales a streamer by gain with a linear release over its last quarter.
type fade struct {
	s     beep.Streamer
	gain  float64
	pos   int
	total int
}

func newFade(s beep.Streamer, total int, gain float64) *fade {
	return &fade{s: s, gain: gain, total: total}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	release := f.total / 4
	for i := 0; i < n; i++ {
		vol := f.gain
		if left := f.total - f.pos; release > 0 && left < release {
			vol *= float64(left) / float64(release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.s.Err()
}
