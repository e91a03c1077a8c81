// Package scene renders the arena with raylib. It implements the sandbox's
// GraphicsEngine interface: meshes are plain records whose transforms the
// simulation loop overwrites every frame; Draw happens inside the GUI's
// BeginDrawing/EndDrawing pair.
package scene

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/michael-hamilton/physbox/internal/sandbox"
)

// Theme colors (monochrome background, per-object tints from spawn params).
var (
	ColBg   = rl.NewColor(10, 10, 10, 255)
	ColGrid = rl.NewColor(34, 34, 34, 255)
	ColWire = rl.NewColor(0, 0, 0, 90)
)

// Tessellation settings for curved primitives.
const (
	sphereRings   = 16
	sphereSlices  = 16
	capsuleSlices = 16
	capsuleRings  = 8
)

// Mesh is one visual primitive. Dimensions and color are fixed at creation;
// only the transform changes afterwards.
type Mesh struct {
	kind      sandbox.Kind
	extents   [3]float32 // box full dimensions
	radius    float32
	length    float32 // capsule segment length
	color     rl.Color
	transform sandbox.Transform
}

func (m *Mesh) SetTransform(t sandbox.Transform) { m.transform = t }

func (m *Mesh) Transform() sandbox.Transform { return m.transform }

// TriangleCount approximates raylib's tessellation for the readout panel.
func (m *Mesh) TriangleCount() int {
	switch m.kind {
	case sandbox.KindSphere:
		return sphereRings * sphereSlices * 2
	case sandbox.KindCapsule:
		// Two hemisphere caps plus the cylinder side.
		return capsuleSlices*capsuleRings*2 + capsuleSlices*2
	default:
		return 12
	}
}

// Scene is the render-side world: an ordered mesh list and a camera.
type Scene struct {
	meshes []*Mesh
	Camera rl.Camera3D
	Grid   bool
}

func New() *Scene {
	return &Scene{
		Camera: rl.NewCamera3D(
			rl.NewVector3(16, 22, 28),
			rl.NewVector3(0, 6, 0),
			rl.NewVector3(0, 1, 0),
			45,
			rl.CameraPerspective,
		),
		Grid: true,
	}
}

func (s *Scene) CreateMesh(kind sandbox.Kind, p sandbox.SpawnParams) sandbox.MeshHandle {
	m := &Mesh{
		kind:   kind,
		radius: p.Radius,
		length: p.Length,
		color:  rl.NewColor(p.Color.R, p.Color.G, p.Color.B, 255),
		transform: sandbox.Transform{
			Position: p.Position,
			Rotation: p.Rotation,
		},
	}
	if p.Extents.LenSqr() > 0 {
		m.extents = [3]float32{p.Extents.X(), p.Extents.Y(), p.Extents.Z()}
	} else {
		m.extents = [3]float32{p.Scale, p.Scale, p.Scale}
	}
	s.meshes = append(s.meshes, m)
	return m
}

func (s *Scene) RemoveMesh(h sandbox.MeshHandle) {
	m, ok := h.(*Mesh)
	if !ok {
		return
	}
	for i, other := range s.meshes {
		if other == m {
			s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
			return
		}
	}
}

func (s *Scene) Len() int { return len(s.meshes) }

// Render draws the 3D view. Must run between BeginDrawing and EndDrawing.
func (s *Scene) Render() {
	rl.BeginMode3D(s.Camera)
	if s.Grid {
		drawGrid(24, 1)
	}
	for _, m := range s.meshes {
		drawMesh(m)
	}
	rl.EndMode3D()
}

func drawGrid(halfLines int, spacing float32) {
	ext := float32(halfLines) * spacing
	for i := -halfLines; i <= halfLines; i++ {
		p := float32(i) * spacing
		rl.DrawLine3D(rl.NewVector3(p, 0, -ext), rl.NewVector3(p, 0, ext), ColGrid)
		rl.DrawLine3D(rl.NewVector3(-ext, 0, p), rl.NewVector3(ext, 0, p), ColGrid)
	}
}

func drawMesh(m *Mesh) {
	pos := m.transform.Position
	angle, ax, ay, az := axisAngle(m.transform.Rotation)

	rl.PushMatrix()
	rl.Translatef(pos.X(), pos.Y(), pos.Z())
	if angle != 0 {
		rl.Rotatef(angle, ax, ay, az)
	}

	origin := rl.NewVector3(0, 0, 0)
	switch m.kind {
	case sandbox.KindSphere:
		rl.DrawSphereEx(origin, m.radius, sphereRings, sphereSlices, m.color)
	case sandbox.KindCapsule:
		hl := m.length / 2
		start := rl.NewVector3(0, -hl, 0)
		end := rl.NewVector3(0, hl, 0)
		rl.DrawCapsule(start, end, m.radius, capsuleSlices, capsuleRings, m.color)
	default:
		rl.DrawCube(origin, m.extents[0], m.extents[1], m.extents[2], m.color)
		rl.DrawCubeWires(origin, m.extents[0], m.extents[1], m.extents[2], ColWire)
	}

	rl.PopMatrix()
}

// axisAngle converts a (possibly unnormalized) quaternion to degrees plus a
// rotation axis for rlgl. Normalization happens on a copy for display only;
// the simulation state keeps the raw quaternion.
func axisAngle(q mgl32.Quat) (angle, x, y, z float32) {
	n := q.Norm()
	if n == 0 {
		return 0, 0, 1, 0
	}
	q = q.Scale(1 / n)
	w := float64(q.W)
	if w > 1 {
		w = 1
	} else if w < -1 {
		w = -1
	}
	angle = float32(2 * math.Acos(w) * 180 / math.Pi)
	s := float32(math.Sqrt(1 - w*w))
	if s < 1e-4 {
		return 0, 0, 1, 0
	}
	v := q.V.Mul(1 / s)
	return angle, v.X(), v.Y(), v.Z()
}
