package arena

import "github.com/michael-hamilton/physbox/internal/sandbox"

// HeadlessScene is a GraphicsEngine that records transforms and draws
// nothing. Used by the TUI, the batch runner, and tests.
type HeadlessScene struct {
	meshes []*headlessMesh
}

type headlessMesh struct {
	kind      sandbox.Kind
	transform sandbox.Transform
}

func NewHeadlessScene() *HeadlessScene {
	return &HeadlessScene{}
}

func (h *headlessMesh) SetTransform(t sandbox.Transform) { h.transform = t }

func (h *headlessMesh) Transform() sandbox.Transform { return h.transform }

func (h *headlessMesh) TriangleCount() int {
	switch h.kind {
	case sandbox.KindSphere:
		return 512
	case sandbox.KindCapsule:
		return 288
	default:
		return 12
	}
}

func (s *HeadlessScene) CreateMesh(kind sandbox.Kind, p sandbox.SpawnParams) sandbox.MeshHandle {
	m := &headlessMesh{
		kind: kind,
		transform: sandbox.Transform{
			Position: p.Position,
			Rotation: p.Rotation,
		},
	}
	s.meshes = append(s.meshes, m)
	return m
}

func (s *HeadlessScene) RemoveMesh(h sandbox.MeshHandle) {
	m, ok := h.(*headlessMesh)
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

func (s *HeadlessScene) Render() {}

func (s *HeadlessScene) Len() int { return len(s.meshes) }
