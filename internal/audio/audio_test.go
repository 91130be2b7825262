package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/dino-runner/internal/core"
)

func TestTonesPerCue(t *testing.T) {
	tests := []struct {
		cue   core.Cue
		notes int
		wave  Wave
	}{
		{core.CueJump, 1, WaveSine},
		{core.CueHit, 1, WaveSquare},
		{core.CueProgress, 2, WaveSine},
	}

	for _, tc := range tests {
		t.Run(tc.cue.String(), func(t *testing.T) {
			tones := Tones(tc.cue)
			if len(tones) != tc.notes {
				t.Fatalf("got %d notes, expected %d", len(tones), tc.notes)
			}
			for _, tone := range tones {
				if tone.Wave != tc.wave || tone.Freq <= 0 || tone.Duration <= 0 {
					t.Errorf("bad tone %+v", tone)
				}
				if tone.Gain <= 0 || tone.Gain > 1 {
					t.Errorf("gain %v out of (0, 1]", tone.Gain)
				}
			}
		})
	}

	if jump := Tones(core.CueJump)[0]; jump.EndFreq <= jump.Freq {
		t.Error("jump should rise in pitch")
	}
	if Tones(core.Cue(99)) != nil || Streamer(core.Cue(99), 44100) != nil {
		t.Error("unknown cue should be silent")
	}
}

// drain reads a streamer to the end and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
			if smp[0] != smp[1] {
				t.Fatal("channels should match")
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestStreamerLength(t *testing.T) {
	sr := beep.SampleRate(8000)

	for _, cue := range []core.Cue{core.CueJump, core.CueHit, core.CueProgress} {
		n, peak := drain(t, Streamer(cue, sr))

		want := 0
		for _, tone := range Tones(cue) {
			want += sr.N(tone.Duration)
		}
		if n != want {
			t.Errorf("%v: streamed %d samples, expected %d", cue, n, want)
		}
		if peak <= 0 || peak > 0.5 {
			t.Errorf("%v: peak %v, expected audible and below 0.5", cue, peak)
		}
	}
}

func TestDuration(t *testing.T) {
	if got := Duration(core.CueProgress); got != 220*time.Millisecond {
		t.Errorf("progress duration = %v, expected 220ms", got)
	}
}

func TestOscillatorSquare(t *testing.T) {
	o := &oscillator{tone: Tone{Freq: 100, Wave: WaveSquare}, rate: 8000, total: 160}
	buf := make([][2]float64, 200)
	n, ok := o.Stream(buf)
	if n != 160 || !ok {
		t.Fatalf("Stream = %d,%v, expected 160,true", n, ok)
	}
	for i, s := range buf[:n] {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d = %v, expected +-1", i, s[0])
		}
	}
	if n, ok := o.Stream(buf); n != 0 || ok {
		t.Errorf("drained oscillator returned %d,%v", n, ok)
	}
}

func TestEngineSilentWithoutSpeaker(t *testing.T) {
	var nilEngine *Engine
	nilEngine.Play(core.CueJump)
	nilEngine.SetMuted(true)
	nilEngine.Close()
	if !nilEngine.Muted() {
		t.Error("nil engine should report muted")
	}

	e := NewEngine(nil)
	e.Play(core.CueHit)
	e.PlayAll([]core.Cue{core.CueJump, core.CueProgress})
	if e.mixer.Len() != 0 {
		t.Errorf("uninitialized engine queued %d streamers", e.mixer.Len())
	}

	e.SetMuted(true)
	if !e.Muted() || !e.volume.Silent {
		t.Error("SetMuted(true) should silence the output")
	}
	e.SetMuted(false)
	if e.Muted() {
		t.Error("SetMuted(false) should restore output")
	}
	e.Close()
}
