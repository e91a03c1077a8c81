package phys

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func newFloor() *Body {
	b := NewBody(NewBox(mgl32.Vec3{5, 0.5, 5}), 0, mgl32.Vec3{0, -0.5, 0}, mgl32.QuatIdent())
	b.Margin = 0.05
	return b
}

func newBox(pos mgl32.Vec3) *Body {
	b := NewBody(NewBox(mgl32.Vec3{0.5, 0.5, 0.5}), 7, pos, mgl32.QuatIdent())
	b.Margin = 0.05
	b.Restitution = 0.75
	return b
}

func stepSeconds(w *World, seconds float64) {
	steps := int(seconds * 60)
	for i := 0; i < steps; i++ {
		w.Step(1.0/60.0, 10)
	}
}

func TestStaticBodyNeverMoves(t *testing.T) {
	w := NewWorld(DefaultGravity)
	floor := newFloor()
	w.AddBody(floor)

	box := newBox(mgl32.Vec3{0, 3, 0})
	w.AddBody(box)

	start := floor.Pos
	stepSeconds(w, 3)

	if floor.Pos != start {
		t.Errorf("static body moved from %v to %v", start, floor.Pos)
	}
	if floor.Vel.Len() != 0 {
		t.Errorf("static body gained velocity %v", floor.Vel)
	}
}

func TestBoxDropsToRest(t *testing.T) {
	w := NewWorld(DefaultGravity)
	w.AddBody(newFloor())

	box := newBox(mgl32.Vec3{0, 5, 0})
	w.AddBody(box)

	stepSeconds(w, 10)

	// Resting height: half extent plus both collision margins.
	if y := box.Pos.Y(); y < 0.45 || y > 0.8 {
		t.Errorf("expected box resting near y=0.6, got %f", y)
	}
	if v := box.Vel.Len(); v > 0.5 {
		t.Errorf("expected box at rest, velocity %f", v)
	}
}

func TestBounceLosesEnergy(t *testing.T) {
	w := NewWorld(DefaultGravity)
	w.AddBody(newFloor())

	box := newBox(mgl32.Vec3{0, 8, 0})
	w.AddBody(box)

	// Let it hit the floor once, then track the rebound peak.
	stepSeconds(w, 2)
	peak := box.Pos.Y()
	for i := 0; i < 300; i++ {
		w.Step(1.0/60.0, 10)
		if y := box.Pos.Y(); y > peak {
			peak = y
		}
	}

	if peak >= 8 {
		t.Errorf("rebound peak %f should be below the drop height", peak)
	}
}

func TestRemovedBodyLosesMotionState(t *testing.T) {
	w := NewWorld(DefaultGravity)
	box := newBox(mgl32.Vec3{0, 5, 0})
	w.AddBody(box)

	if _, _, ok := box.MotionState(); !ok {
		t.Fatal("expected motion state while registered")
	}

	w.RemoveBody(box)

	if _, _, ok := box.MotionState(); ok {
		t.Error("expected no motion state after removal")
	}
	if w.Len() != 0 {
		t.Errorf("expected empty world, got %d bodies", w.Len())
	}
}

func TestAddBodyTwiceIsNoop(t *testing.T) {
	w := NewWorld(DefaultGravity)
	box := newBox(mgl32.Vec3{0, 5, 0})
	w.AddBody(box)
	w.AddBody(box)

	if w.Len() != 1 {
		t.Errorf("expected 1 body, got %d", w.Len())
	}
}

func TestImpactsRecordedAndDrained(t *testing.T) {
	w := NewWorld(DefaultGravity)
	w.AddBody(newFloor())
	w.AddBody(newBox(mgl32.Vec3{0, 6, 0}))

	total := 0
	for i := 0; i < 300; i++ {
		w.Step(1.0/60.0, 10)
		total += len(w.DrainImpacts())
	}

	if total == 0 {
		t.Error("expected at least one impact from the drop")
	}
	if len(w.DrainImpacts()) != 0 {
		t.Error("expected impact buffer empty after drain")
	}
}

func TestSpinningBodyStaysNormalized(t *testing.T) {
	w := NewWorld(mgl32.Vec3{})
	box := newBox(mgl32.Vec3{0, 5, 0})
	box.AngVel = mgl32.Vec3{1, 2, 0.5}
	w.AddBody(box)

	stepSeconds(w, 1)

	if n := box.Rot.Norm(); n < 0.99 || n > 1.01 {
		t.Errorf("expected unit quaternion after integration, norm %f", n)
	}
}

func TestPenetrationAxis(t *testing.T) {
	tests := []struct {
		name      string
		a, b      AABB
		wantAxis  int
		wantDepth float32
	}{
		{
			name:      "overlap on y",
			a:         AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}},
			b:         AABB{Min: mgl32.Vec3{-1, 0.8, -1}, Max: mgl32.Vec3{1, 2.8, 1}},
			wantAxis:  1,
			wantDepth: 0.2,
		},
		{
			name:     "apart",
			a:        AABB{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}},
			b:        AABB{Min: mgl32.Vec3{5, 5, 5}, Max: mgl32.Vec3{6, 6, 6}},
			wantAxis: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			depth, axis := penetrationAxis(tt.a, tt.b)
			if axis != tt.wantAxis {
				t.Fatalf("expected axis %d, got %d", tt.wantAxis, axis)
			}
			if tt.wantAxis >= 0 {
				diff := depth - tt.wantDepth
				if diff < -1e-4 || diff > 1e-4 {
					t.Errorf("expected depth %f, got %f", tt.wantDepth, depth)
				}
			}
		})
	}
}
