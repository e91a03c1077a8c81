package metrics

import "github.com/michael-hamilton/physbox/internal/phys"

// Metric observes the world once per recorded frame and reduces the run to a
// single scalar.
type Metric interface {
	Name() string
	Observe(w *phys.World, t float64)
	Value() float64
	Reset()
}

// TotalKinetic sums 0.5*m*v^2 over every dynamic body.
func TotalKinetic(w *phys.World) float64 {
	total := 0.0
	for _, b := range w.Bodies() {
		if b.Static {
			continue
		}
		v := float64(b.Vel.Len())
		total += 0.5 * float64(b.Mass) * v * v
	}
	return total
}

// Heights returns the min and max body center heights, or (0, 0) when the
// world holds no dynamic bodies.
func Heights(w *phys.World) (min, max float64) {
	first := true
	for _, b := range w.Bodies() {
		if b.Static {
			continue
		}
		y := float64(b.Pos.Y())
		if first {
			min, max = y, y
			first = false
			continue
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	return min, max
}

// DynamicCount counts the non-static bodies.
func DynamicCount(w *phys.World) int {
	n := 0
	for _, b := range w.Bodies() {
		if !b.Static {
			n++
		}
	}
	return n
}
