// Package analysis reduces recorded run telemetry to frequency-domain
// summaries, used by the analyze command on the kinetic energy trace.
package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of each positive-frequency bin of the
// signal, Hann-windowed and zero-padded to a power of two.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}

	windowed := make([]float64, nextPow2(len(data)))
	copy(windowed, hann(data))

	spectrum := fft.FFTReal(windowed)

	half := len(spectrum) / 2
	power := make([]float64, half)
	for i := 0; i < half; i++ {
		power[i] = cmplx.Abs(spectrum[i])
	}
	return power
}

// DominantFrequency returns the strongest non-DC frequency in hertz, given
// the sample spacing of the original signal. Returns 0 when the spectrum is
// too short to judge.
func DominantFrequency(data []float64, dt float64) float64 {
	power := PowerSpectrum(data)
	if len(power) < 2 || dt <= 0 {
		return 0
	}

	best := 1
	for i := 2; i < len(power); i++ {
		if power[i] > power[best] {
			best = i
		}
	}

	n := (len(power)) * 2
	return float64(best) / (float64(n) * dt)
}

// Mean and Peak summarize a telemetry trace for the analyze report.
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func Peak(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	peak := data[0]
	for _, v := range data[1:] {
		if v > peak {
			peak = v
		}
	}
	return peak
}

func hann(data []float64) []float64 {
	n := len(data)
	out := make([]float64, n)
	for i, v := range data {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		out[i] = v * w
	}
	return out
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
