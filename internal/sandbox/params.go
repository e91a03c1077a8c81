package sandbox

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGB mesh tint.
type Color struct {
	R, G, B uint8
}

// SpawnParams is an ephemeral value object consumed by one Spawn call and
// then discarded.
type SpawnParams struct {
	Scale    float32 // cube side length
	Radius   float32 // sphere and capsule radius
	Length   float32 // capsule segment length
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Mass     float32
	Color    Color

	// Extents, when non-zero, overrides Scale with full box dimensions.
	// Used for the flat floor panels.
	Extents mgl32.Vec3
}

// ParamGen produces randomized spawn parameters. Ranges are fixed policy:
//
//	scale    ∈ [0.75, 1.75)
//	radius   = scale × 0.75
//	length   ∈ [1, 3)
//	pos x,z  ∈ [-5, 5)
//	pos y    ∈ [20, 45)
//	mass     = 5 + U[0,1)×(scale+4), i.e. ∈ [5, 10.75)
type ParamGen struct {
	rng *rand.Rand
}

func NewParamGen(seed int64) *ParamGen {
	return &ParamGen{rng: rand.New(rand.NewSource(seed))}
}

func (g *ParamGen) Generate() SpawnParams {
	scale := 0.75 + g.rng.Float32()
	// The rotation components are independent uniform degree draws with w
	// fixed at 1. This is not a unit quaternion; it is kept as-is because
	// normalizing would change the observed rotation distribution.
	rot := mgl32.Quat{
		W: 1,
		V: mgl32.Vec3{
			g.rng.Float32() * 360,
			g.rng.Float32() * 360,
			g.rng.Float32() * 360,
		},
	}
	return SpawnParams{
		Scale:  scale,
		Radius: scale * 0.75,
		Length: 1 + g.rng.Float32()*2,
		Position: mgl32.Vec3{
			-5 + g.rng.Float32()*10,
			20 + g.rng.Float32()*25,
			-5 + g.rng.Float32()*10,
		},
		Rotation: rot,
		Mass:     5 + g.rng.Float32()*(scale+4),
		Color: Color{
			R: uint8(g.rng.Intn(256)),
			G: uint8(g.rng.Intn(256)),
			B: uint8(g.rng.Intn(256)),
		},
	}
}

// RandomKind draws one of the three spawnable kinds uniformly.
func (g *ParamGen) RandomKind() Kind {
	switch g.rng.Intn(3) {
	case 0:
		return KindBox
	case 1:
		return KindCapsule
	default:
		return KindSphere
	}
}
