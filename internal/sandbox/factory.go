package sandbox

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnknownKind rejects spawn requests for a kind the factory does not
// recognize. The source demo silently ignored these; here the caller gets an
// explicit signal.
var ErrUnknownKind = errors.New("unknown spawn kind")

const (
	// CollisionMargin is world-unit padding added to every collision shape
	// to damp jitter.
	CollisionMargin = 0.05
	// Restitution is the bounciness applied to every dynamic body.
	Restitution = 0.75

	// Floor geometry: five static panels, one centered and four adjacent.
	FloorPanelSize = 10.0
	FloorThickness = 1.0
)

var floorColor = Color{R: 90, G: 90, B: 96}

// Factory constructs paired mesh+body objects and registers them with both
// engines and the registry.
type Factory struct {
	phys PhysicsEngine
	gfx  GraphicsEngine
	reg  *Registry
}

func NewFactory(phys PhysicsEngine, gfx GraphicsEngine, reg *Registry) *Factory {
	return &Factory{phys: phys, gfx: gfx, reg: reg}
}

// Spawn creates one object of the given kind, tagged with the kind name.
// static (or params.Mass == 0) marks the body immovable.
func (f *Factory) Spawn(kind Kind, p SpawnParams, static bool) (*SimObject, error) {
	return f.spawnTagged(string(kind), kind, p, static)
}

func (f *Factory) spawnTagged(tag string, kind Kind, p SpawnParams, static bool) (*SimObject, error) {
	switch kind {
	case KindBox, KindSphere, KindCapsule:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	mesh := f.gfx.CreateMesh(kind, p)
	body := f.phys.CreateBody(kind, p, static || p.Mass == 0)
	o := &SimObject{Tag: tag, Mesh: mesh, Body: body}
	f.reg.Append(o)
	return o, nil
}

// SpawnFloor creates the 5-panel static floor: one panel at the origin and
// one on each side of it, top surfaces at y=0.
func (f *Factory) SpawnFloor() []*SimObject {
	offsets := [][2]float32{
		{0, 0},
		{FloorPanelSize, 0},
		{-FloorPanelSize, 0},
		{0, FloorPanelSize},
		{0, -FloorPanelSize},
	}
	panels := make([]*SimObject, 0, len(offsets))
	for _, off := range offsets {
		p := SpawnParams{
			Extents:  mgl32.Vec3{FloorPanelSize, FloorThickness, FloorPanelSize},
			Position: mgl32.Vec3{off[0], -FloorThickness / 2, off[1]},
			Rotation: mgl32.QuatIdent(),
			Mass:     0,
			Color:    floorColor,
		}
		o, err := f.spawnTagged(TagFloor, KindBox, p, true)
		if err != nil {
			// KindBox is always valid; unreachable.
			continue
		}
		panels = append(panels, o)
	}
	return panels
}
