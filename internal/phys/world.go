package phys

import "github.com/go-gl/mathgl/mgl32"

// DefaultGravity matches the usual Y-up, Y-down-gravity convention.
var DefaultGravity = mgl32.Vec3{0, -9.8, 0}

// Impact is one resolved collision contact with its approach speed along the
// contact normal. Drained by callers for sonification and metrics.
type Impact struct {
	Speed float32
}

// restSpeed is the approach speed below which restitution is dropped to zero
// so stacked bodies settle instead of micro-bouncing forever.
const restSpeed = 0.5

// World holds an ordered set of bodies and advances them with a fixed
// sub-stepped integrator: gravity, integration, then pairwise AABB contact
// resolution with restitution.
type World struct {
	gravity mgl32.Vec3
	bodies  []*Body
	impacts []Impact
}

func NewWorld(gravity mgl32.Vec3) *World {
	return &World{gravity: gravity}
}

func (w *World) SetGravity(g mgl32.Vec3) { w.gravity = g }

// AddBody registers a body. Adding a body twice, or a body already owned by
// another world, is a no-op.
func (w *World) AddBody(b *Body) {
	if b == nil || b.world != nil {
		return
	}
	b.world = w
	w.bodies = append(w.bodies, b)
}

// RemoveBody unregisters a body; its motion state is gone afterwards.
func (w *World) RemoveBody(b *Body) {
	if b == nil || b.world != w {
		return
	}
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			break
		}
	}
	b.world = nil
}

// Bodies returns the registered bodies in insertion order. The slice is
// shared; callers must not mutate it.
func (w *World) Bodies() []*Body { return w.bodies }

func (w *World) Len() int { return len(w.bodies) }

// DrainImpacts returns contacts recorded since the last drain.
func (w *World) DrainImpacts() []Impact {
	out := w.impacts
	w.impacts = nil
	return out
}

// Step advances the simulation by dt seconds split into substeps equal
// sub-intervals. More substeps buys solver stability for CPU time.
func (w *World) Step(dt float32, substeps int) {
	if dt <= 0 {
		return
	}
	if substeps < 1 {
		substeps = 1
	}
	h := dt / float32(substeps)
	for s := 0; s < substeps; s++ {
		w.integrate(h)
		w.resolveContacts()
	}
}

func (w *World) integrate(h float32) {
	for _, b := range w.bodies {
		if b.Static {
			continue
		}
		b.Vel = b.Vel.Add(w.gravity.Mul(h))
		b.Pos = b.Pos.Add(b.Vel.Mul(h))

		if b.AngVel.LenSqr() > 0 {
			// dq/dt = 0.5 * w * q; renormalize to keep drift bounded.
			wq := mgl32.Quat{W: 0, V: b.AngVel.Mul(0.5 * h)}
			b.Rot = b.Rot.Add(wq.Mul(b.Rot)).Normalize()
		}
	}
}

func (w *World) resolveContacts() {
	for i := 0; i < len(w.bodies); i++ {
		bi := w.bodies[i]
		boxI := bi.bounds()
		for j := i + 1; j < len(w.bodies); j++ {
			bj := w.bodies[j]
			if bi.Static && bj.Static {
				continue
			}
			boxJ := bj.bounds()
			if !boxI.Overlaps(boxJ) {
				continue
			}
			depth, axis := penetrationAxis(boxI, boxJ)
			if axis < 0 {
				continue
			}
			w.resolvePair(bi, bj, depth, axis)
			boxI = bi.bounds()
		}
	}
}
