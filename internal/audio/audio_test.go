package audio

import (
	"math"
	"testing"

	"github.com/san-kum/sortviz/internal/bars"
	"github.com/san-kum/sortviz/internal/visualizer"
)

func TestFrequency(t *testing.T) {
	tests := []struct {
		value, n int
		want     float64
	}{
		{1, 10, 100},
		{10, 10, 1000},
		{0, 10, 100},
		{11, 10, 1000},
		{5, 9, 550},
		{1, 1, 100},
	}
	for _, tt := range tests {
		got := Frequency(tt.value, tt.n, 100, 1000)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Frequency(%d, %d) = %v, want %v", tt.value, tt.n, got, tt.want)
		}
	}
}

func frameWith(els []bars.Element) visualizer.Frame {
	return visualizer.Frame{Elements: els}
}

func TestToneRetunesOnStep(t *testing.T) {
	tone := NewTone(Settings{MinHz: 100, MaxHz: 1000, Volume: 0.5})
	tone.OnStep(frameWith([]bars.Element{
		{Value: 1, Role: bars.Idle},
		{Value: 10, Role: bars.Swapped},
		{Value: 2, Role: bars.Idle},
		{Value: 3, Role: bars.Idle},
		{Value: 4, Role: bars.Idle},
		{Value: 5, Role: bars.Idle},
		{Value: 6, Role: bars.Idle},
		{Value: 7, Role: bars.Idle},
		{Value: 8, Role: bars.Idle},
		{Value: 9, Role: bars.Idle},
	}))
	if tone.freq != 1000 || tone.env != 1 {
		t.Errorf("expected 1000 Hz at full envelope, got %v Hz env %v", tone.freq, tone.env)
	}
}

func TestToneIgnoresIdleFrame(t *testing.T) {
	tone := NewTone(Settings{MinHz: 100, MaxHz: 1000, Volume: 0.5})
	tone.OnStep(frameWith([]bars.Element{{Value: 2}, {Value: 1}}))
	if tone.env != 0 {
		t.Errorf("expected silence, got env %v", tone.env)
	}
}

func TestProcessDecays(t *testing.T) {
	tone := NewTone(Settings{MinHz: 200, MaxHz: 800, Volume: 1})
	tone.OnStep(frameWith([]bars.Element{{Value: 1, Role: bars.Compare}}))

	buf := make([]float32, SampleRate/2)
	tone.Process(buf)
	for i, s := range buf {
		if s > 1 || s < -1 {
			t.Fatalf("sample %d out of range: %v", i, s)
		}
	}
	if tone.env > 1e-3 {
		t.Errorf("envelope did not decay: %v", tone.env)
	}
}

func TestFinishSweepEnds(t *testing.T) {
	tone := NewTone(Settings{MinHz: 200, MaxHz: 800, Volume: 1})
	tone.OnFinish(visualizer.Frame{})
	tone.Process(make([]float32, SampleRate))
	if tone.sweepLen != 0 || tone.env != 0 {
		t.Errorf("sweep still active: len=%d env=%v", tone.sweepLen, tone.env)
	}
}
