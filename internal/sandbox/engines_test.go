package sandbox

// Test fakes for the engine interfaces. The shared event log records the
// order of engine calls within a tick.

type fakeBody struct {
	transform Transform
	ok        bool
}

func (b *fakeBody) MotionState() (Transform, bool) { return b.transform, b.ok }

type fakeMesh struct {
	transform Transform
	tris      int
}

func (m *fakeMesh) SetTransform(t Transform) { m.transform = t }
func (m *fakeMesh) Transform() Transform     { return m.transform }
func (m *fakeMesh) TriangleCount() int       { return m.tris }

type fakePhys struct {
	bodies  []*fakeBody
	removed int
	steps   int
	lastDt  float32
	lastSub int
	events  *[]string
}

func (p *fakePhys) CreateBody(kind Kind, params SpawnParams, static bool) BodyHandle {
	b := &fakeBody{
		transform: Transform{Position: params.Position, Rotation: params.Rotation},
		ok:        true,
	}
	p.bodies = append(p.bodies, b)
	return b
}

func (p *fakePhys) RemoveBody(h BodyHandle) {
	if b, ok := h.(*fakeBody); ok {
		b.ok = false
	}
	p.removed++
}

func (p *fakePhys) Step(dt float32, substeps int) {
	p.steps++
	p.lastDt = dt
	p.lastSub = substeps
	if p.events != nil {
		*p.events = append(*p.events, "step")
	}
}

type fakeGfx struct {
	meshes  []*fakeMesh
	removed int
	renders int
	events  *[]string
}

func (g *fakeGfx) CreateMesh(kind Kind, params SpawnParams) MeshHandle {
	m := &fakeMesh{
		transform: Transform{Position: params.Position, Rotation: params.Rotation},
		tris:      12,
	}
	g.meshes = append(g.meshes, m)
	return m
}

func (g *fakeGfx) RemoveMesh(h MeshHandle) {
	g.removed++
}

func (g *fakeGfx) Render() {
	g.renders++
	if g.events != nil {
		*g.events = append(*g.events, "render")
	}
}

func newTestRig() (*fakePhys, *fakeGfx, *Registry, *Factory, *Loop) {
	phys := &fakePhys{}
	gfx := &fakeGfx{}
	reg := &Registry{}
	factory := NewFactory(phys, gfx, reg)
	loop := NewLoop(phys, gfx, reg)
	return phys, gfx, reg, factory, loop
}
