// Package audio turns collision impacts into sound. Output only; duplex
// streams often fail on Linux when input and output devices differ.
package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/gordonklaus/portaudio"
	"github.com/mjibson/go-dsp/fft"
)

const (
	SampleRate = 44100
	BufferSize = 1024
)

// Sonifier renders a percussive ping per impact over a quiet drone. Impacts
// arrive from the frame loop; the stream callback runs on portaudio's thread,
// so the handoff is a mutex-guarded accumulator.
type Sonifier struct {
	stream *portaudio.Stream

	mu      sync.Mutex
	pending float64 // impact speed accumulated since the last callback

	time        float64
	amp         float64
	pitch       float64
	filterState [2]float64

	// Spectral levels of the rendered output, for the readout.
	Bass, Mid, High float64

	Active bool
}

func NewSonifier() *Sonifier {
	return &Sonifier{pitch: 220}
}

func (s *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}

	s.stream = stream
	s.Active = true
	return nil
}

func (s *Sonifier) Stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
		s.stream = nil
	}
	portaudio.Terminate()
	s.Active = false
}

// AddImpact queues one collision for sonification. Safe to call from the
// frame loop while the stream is running.
func (s *Sonifier) AddImpact(speed float64) {
	if speed <= 0 {
		return
	}
	s.mu.Lock()
	s.pending += speed
	s.mu.Unlock()
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

func (s *Sonifier) process(out [][]float32) {
	s.mu.Lock()
	hit := s.pending
	s.pending = 0
	s.mu.Unlock()

	if hit > 0 {
		// Harder hits ring louder and higher.
		s.amp = math.Min(s.amp+hit*0.08, 0.8)
		s.pitch = 180 + math.Min(hit*20, 400)
	}

	dt := 1.0 / float64(SampleRate)
	cutoff := 400.0 + s.amp*1600.0
	decay := math.Pow(0.25, float64(len(out[0]))/float64(SampleRate))

	rendered := make([]float64, len(out[0]))
	for i := range out[0] {
		oscL := triangle(s.time * s.pitch * 0.999)
		oscR := triangle(s.time * s.pitch * 1.001)

		// Quiet drone keeps the stream from clicking between impacts.
		drone := 0.04 * math.Sin(2*math.Pi*98.0*s.time)

		var l, r float64
		l, s.filterState[0] = lpf(oscL*s.amp+drone, cutoff, dt, s.filterState[0])
		r, s.filterState[1] = lpf(oscR*s.amp+drone, cutoff, dt, s.filterState[1])

		out[0][i] = float32(l)
		out[1][i] = float32(r)
		rendered[i] = l

		s.time += dt
	}
	s.amp *= decay

	s.analyze(rendered)
}

// analyze buckets the rendered buffer's spectrum into three smoothed bands.
func (s *Sonifier) analyze(buf []float64) {
	spectrum := fft.FFTReal(buf)

	bassSum, midSum, highSum := 0.0, 0.0, 0.0
	for i := 1; i < len(spectrum)/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		switch {
		case i < 5:
			bassSum += mag
		case i < 46:
			midSum += mag
		default:
			highSum += mag
		}
	}

	s.Bass = s.Bass*0.9 + math.Min(bassSum/20.0, 1.0)*0.1
	s.Mid = s.Mid*0.9 + math.Min(midSum/50.0, 1.0)*0.1
	s.High = s.High*0.9 + math.Min(highSum/100.0, 1.0)*0.1
}
