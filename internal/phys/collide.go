package phys

import "github.com/go-gl/mathgl/mgl32"

// penetrationAxis returns the overlap depth and axis index (0=X, 1=Y, 2=Z)
// of minimum penetration between two AABBs, or (0, -1) when they are apart.
func penetrationAxis(a, b AABB) (depth float32, axis int) {
	overlapX := minf(a.Max.X(), b.Max.X()) - maxf(a.Min.X(), b.Min.X())
	overlapY := minf(a.Max.Y(), b.Max.Y()) - maxf(a.Min.Y(), b.Min.Y())
	overlapZ := minf(a.Max.Z(), b.Max.Z()) - maxf(a.Min.Z(), b.Min.Z())
	if overlapX <= 0 || overlapY <= 0 || overlapZ <= 0 {
		return 0, -1
	}
	depth = overlapX
	axis = 0
	if overlapY < depth {
		depth = overlapY
		axis = 1
	}
	if overlapZ < depth {
		depth = overlapZ
		axis = 2
	}
	return depth, axis
}

// resolvePair separates two overlapping bodies along the minimum penetration
// axis and applies a restitution impulse along the contact normal. Angular
// response is intentionally absent; collisions only change linear velocity.
func (w *World) resolvePair(a, b *Body, depth float32, axis int) {
	// Contact normal points from a to b along the penetration axis.
	var normal mgl32.Vec3
	sign := float32(1)
	if b.Pos[axis] < a.Pos[axis] {
		sign = -1
	}
	normal[axis] = sign

	invSum := a.invMass + b.invMass
	if invSum == 0 {
		return
	}

	// Positional correction: push apart proportionally to inverse mass.
	a.Pos = a.Pos.Sub(normal.Mul(depth * a.invMass / invSum))
	b.Pos = b.Pos.Add(normal.Mul(depth * b.invMass / invSum))

	relVel := b.Vel.Sub(a.Vel)
	velN := relVel.Dot(normal)
	if velN > 0 {
		// Already separating.
		return
	}

	approach := -velN
	e := (a.Restitution + b.Restitution) * 0.5
	if approach < restSpeed {
		e = 0
	}

	j := -(1 + e) * velN / invSum
	impulse := normal.Mul(j)
	a.Vel = a.Vel.Sub(impulse.Mul(a.invMass))
	b.Vel = b.Vel.Add(impulse.Mul(b.invMass))

	if approach > restSpeed {
		w.impacts = append(w.impacts, Impact{Speed: approach})
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
