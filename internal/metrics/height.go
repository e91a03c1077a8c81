package metrics

import "github.com/michael-hamilton/physbox/internal/phys"

// PeakHeight tracks the highest body center seen during the run.
type PeakHeight struct {
	name    string
	peak    float64
	samples int
}

func NewPeakHeight() *PeakHeight {
	return &PeakHeight{name: "peak_height"}
}

func (p *PeakHeight) Name() string { return p.name }

func (p *PeakHeight) Observe(w *phys.World, t float64) {
	_, max := Heights(w)
	if p.samples == 0 || max > p.peak {
		p.peak = max
	}
	p.samples++
}

func (p *PeakHeight) Value() float64 { return p.peak }

func (p *PeakHeight) Reset() {
	p.peak = 0
	p.samples = 0
}
