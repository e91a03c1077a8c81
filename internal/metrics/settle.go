package metrics

import "github.com/michael-hamilton/physbox/internal/phys"

// SettleTime records the last observation time at which any dynamic body was
// still moving faster than the threshold. A pile that never settles reports
// the final sample time.
type SettleTime struct {
	name      string
	threshold float64
	last      float64
	samples   int
}

func NewSettleTime(threshold float64) *SettleTime {
	if threshold <= 0 {
		threshold = 0.1
	}
	return &SettleTime{name: "settle_time", threshold: threshold}
}

func (s *SettleTime) Name() string { return s.name }

func (s *SettleTime) Observe(w *phys.World, t float64) {
	s.samples++
	for _, b := range w.Bodies() {
		if b.Static {
			continue
		}
		if float64(b.Vel.Len()) > s.threshold {
			s.last = t
			return
		}
	}
}

func (s *SettleTime) Value() float64 { return s.last }

func (s *SettleTime) Reset() {
	s.last = 0
	s.samples = 0
}
