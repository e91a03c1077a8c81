// Package arena composes the physics world, a graphics engine, and the
// sandbox orchestration layer into a runnable demo. It owns the adapters that
// map the sandbox's narrow engine interfaces onto the concrete packages.
package arena

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/michael-hamilton/physbox/internal/phys"
	"github.com/michael-hamilton/physbox/internal/sandbox"
)

// physicsEngine adapts *phys.World to sandbox.PhysicsEngine.
type physicsEngine struct {
	world *phys.World
}

type bodyHandle struct {
	body *phys.Body
}

func (h bodyHandle) MotionState() (sandbox.Transform, bool) {
	pos, rot, ok := h.body.MotionState()
	if !ok {
		return sandbox.Transform{}, false
	}
	return sandbox.Transform{Position: pos, Rotation: rot}, true
}

func (e *physicsEngine) CreateBody(kind sandbox.Kind, p sandbox.SpawnParams, static bool) sandbox.BodyHandle {
	var shape phys.Shape
	switch kind {
	case sandbox.KindSphere:
		shape = phys.NewSphere(p.Radius)
	case sandbox.KindCapsule:
		shape = phys.NewCapsule(p.Radius, p.Length)
	default:
		half := mgl32.Vec3{p.Scale / 2, p.Scale / 2, p.Scale / 2}
		if p.Extents.LenSqr() > 0 {
			half = p.Extents.Mul(0.5)
		}
		shape = phys.NewBox(half)
	}

	mass := p.Mass
	if static {
		mass = 0
	}

	b := phys.NewBody(shape, mass, p.Position, p.Rotation)
	b.Margin = sandbox.CollisionMargin
	b.Restitution = sandbox.Restitution
	e.world.AddBody(b)
	return bodyHandle{body: b}
}

func (e *physicsEngine) RemoveBody(h sandbox.BodyHandle) {
	if bh, ok := h.(bodyHandle); ok {
		e.world.RemoveBody(bh.body)
	}
}

func (e *physicsEngine) Step(dt float32, substeps int) {
	e.world.Step(dt, substeps)
}
