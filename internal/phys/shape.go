package phys

import "github.com/go-gl/mathgl/mgl32"

type ShapeKind int

const (
	ShapeBox ShapeKind = iota
	ShapeSphere
	ShapeCapsule
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeBox:
		return "box"
	case ShapeSphere:
		return "sphere"
	case ShapeCapsule:
		return "capsule"
	}
	return "unknown"
}

// Shape is a collision shape. Boxes use HalfExtents, spheres use Radius,
// capsules use Radius plus HalfLength (half the cylindrical segment along Y).
type Shape struct {
	Kind        ShapeKind
	HalfExtents mgl32.Vec3
	Radius      float32
	HalfLength  float32
}

func NewBox(halfExtents mgl32.Vec3) Shape {
	return Shape{Kind: ShapeBox, HalfExtents: halfExtents}
}

func NewSphere(radius float32) Shape {
	return Shape{Kind: ShapeSphere, Radius: radius}
}

func NewCapsule(radius, length float32) Shape {
	return Shape{Kind: ShapeCapsule, Radius: radius, HalfLength: length * 0.5}
}

// halfBounds returns the shape's axis-aligned half extents. Orientation is
// ignored, which is conservative for spheres and slightly loose for tilted
// boxes and capsules; the demo trades that for a trivially cheap broad phase.
func (s Shape) halfBounds() mgl32.Vec3 {
	switch s.Kind {
	case ShapeSphere:
		return mgl32.Vec3{s.Radius, s.Radius, s.Radius}
	case ShapeCapsule:
		return mgl32.Vec3{s.Radius, s.HalfLength + s.Radius, s.Radius}
	default:
		return s.HalfExtents
	}
}

// AABB is an axis-aligned bounding box used by the collision pass.
type AABB struct {
	Min, Max mgl32.Vec3
}

func (a AABB) Overlaps(b AABB) bool {
	return a.Min.X() <= b.Max.X() && a.Max.X() >= b.Min.X() &&
		a.Min.Y() <= b.Max.Y() && a.Max.Y() >= b.Min.Y() &&
		a.Min.Z() <= b.Max.Z() && a.Max.Z() >= b.Min.Z()
}
