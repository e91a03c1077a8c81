package analysis

import (
	"math"
	"testing"
)

func TestDominantFrequencySine(t *testing.T) {
	// 2 Hz sine sampled at 60 Hz for 4.27 s (256 samples).
	dt := 1.0 / 60.0
	data := make([]float64, 256)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 2.0 * float64(i) * dt)
	}

	got := DominantFrequency(data, dt)
	if got < 1.5 || got > 2.5 {
		t.Errorf("expected dominant frequency near 2 Hz, got %f", got)
	}
}

func TestDominantFrequencyDegenerate(t *testing.T) {
	if got := DominantFrequency(nil, 0.01); got != 0 {
		t.Errorf("expected 0 for empty input, got %f", got)
	}
	if got := DominantFrequency([]float64{1, 2, 3}, 0); got != 0 {
		t.Errorf("expected 0 for zero dt, got %f", got)
	}
}

func TestPowerSpectrumLength(t *testing.T) {
	ps := PowerSpectrum(make([]float64, 100))
	// Padded to 128 samples, half retained.
	if len(ps) != 64 {
		t.Errorf("expected 64 bins, got %d", len(ps))
	}
}

func TestMeanAndPeak(t *testing.T) {
	data := []float64{1, 2, 3, 10}
	if got := Mean(data); got != 4 {
		t.Errorf("expected mean 4, got %f", got)
	}
	if got := Peak(data); got != 10 {
		t.Errorf("expected peak 10, got %f", got)
	}
	if Mean(nil) != 0 || Peak(nil) != 0 {
		t.Error("expected 0 for empty input")
	}
}
