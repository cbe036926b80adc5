// Package audio plays a short tone for every sort step, pitched by the value
// of the bar being touched.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/san-kum/sortviz/internal/logging"
	"github.com/san-kum/sortviz/internal/visualizer"
)

const (
	SampleRate = 44100
	BufferSize = 512
)

var logger = logging.GetLogger("audio")

type Settings struct {
	MinHz  float64
	MaxHz  float64
	Volume float64
}

// Tone is a visualizer.Observer. Each step retunes the oscillator and
// retriggers a short decaying envelope; the finish frame plays a sweep.
type Tone struct {
	Stream *portaudio.Stream

	settings Settings

	mu       sync.Mutex
	freq     float64
	env      float64
	sweep    int
	sweepLen int

	phase       float64
	filterState float64

	Active bool
}

func NewTone(s Settings) *Tone {
	if s.MaxHz <= s.MinHz {
		s.MaxHz = s.MinHz + 1
	}
	return &Tone{settings: s, freq: s.MinHz}
}

func (t *Tone) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 1, SampleRate, BufferSize, t.Process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	logger.WithField("sample_rate", SampleRate).Info("audio output started")
	t.Stream = stream
	t.Active = true
	return nil
}

func (t *Tone) Stop() {
	if !t.Active {
		return
	}
	if t.Stream != nil {
		t.Stream.Stop()
		t.Stream.Close()
	}
	portaudio.Terminate()
	t.Active = false
}

// Frequency maps a bar value in 1..n onto the configured range.
func Frequency(value, n int, minHz, maxHz float64) float64 {
	if n <= 1 {
		return minHz
	}
	v := min(max(value, 1), n)
	return minHz + float64(v-1)/float64(n-1)*(maxHz-minHz)
}

func (t *Tone) OnStep(f visualizer.Frame) {
	value, ok := f.Focus()
	if !ok {
		return
	}
	hz := Frequency(value, len(f.Elements), t.settings.MinHz, t.settings.MaxHz)

	t.mu.Lock()
	t.freq = hz
	t.env = 1
	t.sweep, t.sweepLen = 0, 0
	t.mu.Unlock()
}

func (t *Tone) OnFinish(f visualizer.Frame) {
	t.mu.Lock()
	t.sweep = 0
	t.sweepLen = SampleRate / 2
	t.env = 1
	t.mu.Unlock()
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// one pole low pass
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

func (t *Tone) Process(out []float32) {
	dt := 1.0 / float64(SampleRate)
	decay := math.Exp(-dt / 0.03)

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range out {
		freq := t.freq
		if t.sweepLen > 0 {
			frac := float64(t.sweep) / float64(t.sweepLen)
			freq = t.settings.MinHz + frac*(t.settings.MaxHz-t.settings.MinHz)
			t.sweep++
			if t.sweep >= t.sweepLen {
				t.sweepLen = 0
				t.env = 0
			}
		} else {
			t.env *= decay
		}

		t.phase += freq * dt
		if t.phase >= 1 {
			t.phase -= math.Floor(t.phase)
		}
		t.filterState = lpf(triangle(t.phase), 4*freq, dt, t.filterState)
		out[i] = float32(t.filterState * t.env * t.settings.Volume)
	}
}
