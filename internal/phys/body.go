package phys

import "github.com/go-gl/mathgl/mgl32"

// Body is a rigid body. Mass 0 marks it static: immovable, unaffected by
// gravity, but still collidable. The orientation quaternion is stored exactly
// as given at creation and only re-normalized when angular velocity is
// integrated, so unnormalized spawn orientations survive until the body spins.
type Body struct {
	Shape       Shape
	Pos         mgl32.Vec3
	Rot         mgl32.Quat
	Vel         mgl32.Vec3
	AngVel      mgl32.Vec3
	Mass        float32
	Restitution float32
	Margin      float32
	Static      bool

	invMass float32
	world   *World
}

// NewBody returns a body at pos with the given orientation. mass <= 0 makes
// the body static.
func NewBody(shape Shape, mass float32, pos mgl32.Vec3, rot mgl32.Quat) *Body {
	b := &Body{
		Shape: shape,
		Pos:   pos,
		Rot:   rot,
		Mass:  mass,
	}
	if mass <= 0 {
		b.Mass = 0
		b.Static = true
	} else {
		b.invMass = 1 / mass
	}
	return b
}

// MotionState reports the body's world transform. ok is false once the body
// has been removed from its world; callers are expected to skip such bodies.
func (b *Body) MotionState() (pos mgl32.Vec3, rot mgl32.Quat, ok bool) {
	if b.world == nil {
		return mgl32.Vec3{}, mgl32.QuatIdent(), false
	}
	return b.Pos, b.Rot, true
}

// bounds returns the body's AABB inflated by its collision margin.
func (b *Body) bounds() AABB {
	h := b.Shape.halfBounds()
	m := mgl32.Vec3{b.Margin, b.Margin, b.Margin}
	h = h.Add(m)
	return AABB{Min: b.Pos.Sub(h), Max: b.Pos.Add(h)}
}
