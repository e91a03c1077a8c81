package sandbox

import "github.com/go-gl/mathgl/mgl32"

// Kind identifies a spawnable shape.
type Kind string

const (
	KindBox     Kind = "box"
	KindSphere  Kind = "sphere"
	KindCapsule Kind = "capsule"
)

// TagFloor marks arena floor panels. Floor objects survive the clear action
// and are the only thing the floor toggle touches.
const TagFloor = "floor"

// Transform is a world-space position and orientation.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// BodyHandle is the sandbox's view of one physics body.
type BodyHandle interface {
	// MotionState returns the body's current world transform. ok is false
	// when the body has no motion state (e.g. already removed from the
	// physics world); the sync pass skips such objects.
	MotionState() (Transform, bool)
}

// MeshHandle is the sandbox's view of one visual mesh.
type MeshHandle interface {
	SetTransform(Transform)
	Transform() Transform
	TriangleCount() int
}

// PhysicsEngine is the narrow slice of the physics collaborator the sandbox
// drives.
type PhysicsEngine interface {
	CreateBody(kind Kind, p SpawnParams, static bool) BodyHandle
	RemoveBody(BodyHandle)
	Step(dt float32, substeps int)
}

// GraphicsEngine is the narrow slice of the rendering collaborator the
// sandbox drives.
type GraphicsEngine interface {
	CreateMesh(kind Kind, p SpawnParams) MeshHandle
	RemoveMesh(MeshHandle)
	Render()
}

// SimObject pairs exactly one mesh with exactly one body. The two are
// created together by the Factory and detached together on removal; partial
// teardown is a bug.
type SimObject struct {
	Tag  string
	Mesh MeshHandle
	Body BodyHandle
}
