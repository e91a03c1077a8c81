package metrics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/michael-hamilton/physbox/internal/phys"
)

func testWorld() *phys.World {
	w := phys.NewWorld(phys.DefaultGravity)

	floor := phys.NewBody(phys.NewBox(mgl32.Vec3{5, 0.5, 5}), 0, mgl32.Vec3{0, -0.5, 0}, mgl32.QuatIdent())
	w.AddBody(floor)

	b := phys.NewBody(phys.NewBox(mgl32.Vec3{0.5, 0.5, 0.5}), 2, mgl32.Vec3{0, 10, 0}, mgl32.QuatIdent())
	b.Vel = mgl32.Vec3{0, -3, 0}
	w.AddBody(b)

	return w
}

func TestTotalKineticIgnoresStatics(t *testing.T) {
	w := testWorld()

	// 0.5 * 2 * 3^2 = 9, floor contributes nothing.
	got := TotalKinetic(w)
	if got < 8.99 || got > 9.01 {
		t.Errorf("expected kinetic energy 9, got %f", got)
	}
}

func TestHeightsAndCount(t *testing.T) {
	w := testWorld()

	min, max := Heights(w)
	if min != 10 || max != 10 {
		t.Errorf("expected heights 10/10, got %f/%f", min, max)
	}
	if got := DynamicCount(w); got != 1 {
		t.Errorf("expected 1 dynamic body, got %d", got)
	}
}

func TestKineticEnergyAverages(t *testing.T) {
	w := testWorld()
	m := NewKineticEnergy()

	m.Observe(w, 0)
	m.Observe(w, 0.1)

	if got := m.Value(); got < 8.99 || got > 9.01 {
		t.Errorf("expected average 9, got %f", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected 0 after reset")
	}
}

func TestPeakHeightTracksMaximum(t *testing.T) {
	w := testWorld()
	m := NewPeakHeight()

	m.Observe(w, 0)
	w.Bodies()[1].Pos = mgl32.Vec3{0, 25, 0}
	m.Observe(w, 0.1)
	w.Bodies()[1].Pos = mgl32.Vec3{0, 5, 0}
	m.Observe(w, 0.2)

	if got := m.Value(); got != 25 {
		t.Errorf("expected peak 25, got %f", got)
	}
}

func TestSettleTimeStopsAdvancing(t *testing.T) {
	w := testWorld()
	m := NewSettleTime(0.1)

	m.Observe(w, 1)
	w.Bodies()[1].Vel = mgl32.Vec3{}
	m.Observe(w, 2)
	m.Observe(w, 3)

	if got := m.Value(); got != 1 {
		t.Errorf("expected settle time 1, got %f", got)
	}
}
