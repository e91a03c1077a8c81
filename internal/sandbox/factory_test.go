package sandbox

import (
	"errors"
	"testing"
)

func TestSpawnRegistersMeshAndBody(t *testing.T) {
	phys, gfx, reg, factory, _ := newTestRig()

	o, err := factory.Spawn(KindBox, NewParamGen(1).Generate(), false)
	if err != nil {
		t.Fatalf("spawn failed: %v", err)
	}

	if o.Tag != "box" {
		t.Errorf("expected tag box, got %q", o.Tag)
	}
	if len(phys.bodies) != 1 || len(gfx.meshes) != 1 {
		t.Errorf("expected one body and one mesh, got %d/%d", len(phys.bodies), len(gfx.meshes))
	}
	if reg.Len() != 1 {
		t.Errorf("expected registry length 1, got %d", reg.Len())
	}
}

func TestSpawnUnknownKind(t *testing.T) {
	_, _, reg, factory, _ := newTestRig()

	_, err := factory.Spawn(Kind("cone"), SpawnParams{}, false)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if reg.Len() != 0 {
		t.Error("failed spawn must not register anything")
	}
}

func TestSpawnFloorFivePanels(t *testing.T) {
	_, _, reg, factory, _ := newTestRig()

	panels := factory.SpawnFloor()
	if len(panels) != 5 {
		t.Fatalf("expected 5 floor panels, got %d", len(panels))
	}
	if reg.CountTag(TagFloor) != 5 {
		t.Errorf("expected 5 floor-tagged objects, got %d", reg.CountTag(TagFloor))
	}

	// One centered panel, four adjacent, top surfaces at y=0.
	center := 0
	for _, o := range panels {
		tr, ok := o.Body.MotionState()
		if !ok {
			t.Fatal("floor panel without motion state")
		}
		if tr.Position.Y() != -FloorThickness/2 {
			t.Errorf("expected panel center y=%f, got %f", float32(-FloorThickness/2), tr.Position.Y())
		}
		if tr.Position.X() == 0 && tr.Position.Z() == 0 {
			center++
		}
	}
	if center != 1 {
		t.Errorf("expected exactly one centered panel, got %d", center)
	}
}

func TestFloorPanelsAreStatic(t *testing.T) {
	phys := &fakePhys{}
	gfx := &fakeGfx{}
	reg := &Registry{}

	// Wrap CreateBody to capture the static flag.
	rec := &staticRecorder{inner: phys}
	factory := NewFactory(rec, gfx, reg)
	factory.SpawnFloor()

	if len(rec.static) != 5 {
		t.Fatalf("expected 5 bodies, got %d", len(rec.static))
	}
	for i, s := range rec.static {
		if !s {
			t.Errorf("panel %d not static", i)
		}
	}
}

type staticRecorder struct {
	inner  *fakePhys
	static []bool
}

func (r *staticRecorder) CreateBody(kind Kind, p SpawnParams, static bool) BodyHandle {
	r.static = append(r.static, static)
	return r.inner.CreateBody(kind, p, static)
}

func (r *staticRecorder) RemoveBody(h BodyHandle)       { r.inner.RemoveBody(h) }
func (r *staticRecorder) Step(dt float32, substeps int) { r.inner.Step(dt, substeps) }
