package arena

import (
	"context"

	"github.com/michael-hamilton/physbox/internal/metrics"
	"github.com/michael-hamilton/physbox/internal/storage"
)

// Result is the output of a headless run.
type Result struct {
	Frames  []storage.Frame
	Metrics map[string]float64
}

// RunHeadless ticks the sandbox at a fixed dt for the given duration,
// recording one frame per tick and feeding every metric. Cancelling the
// context stops the run early; frames recorded so far are returned.
func RunHeadless(ctx context.Context, sb *Sandbox, dt, duration float64, mets []metrics.Metric) *Result {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	steps := int(duration/dt + 0.5)

	frames := make([]storage.Frame, 0, steps)
	for i := 0; i < steps; i++ {
		if ctx.Err() != nil {
			break
		}
		sb.Loop.Tick(float32(dt))
		t := float64(i+1) * dt

		minY, maxY := metrics.Heights(sb.World)
		frames = append(frames, storage.Frame{
			Time:    t,
			Objects: metrics.DynamicCount(sb.World),
			Kinetic: metrics.TotalKinetic(sb.World),
			MinY:    minY,
			MaxY:    maxY,
		})

		for _, m := range mets {
			m.Observe(sb.World, t)
		}
	}

	values := make(map[string]float64, len(mets))
	for _, m := range mets {
		values[m.Name()] = m.Value()
	}

	return &Result{Frames: frames, Metrics: values}
}
