package sandbox

import "testing"

func TestGenerateRanges(t *testing.T) {
	gen := NewParamGen(42)

	for i := 0; i < 1000; i++ {
		p := gen.Generate()

		if p.Scale < 0.75 || p.Scale >= 1.75 {
			t.Fatalf("scale %f out of [0.75, 1.75)", p.Scale)
		}
		if p.Radius != p.Scale*0.75 {
			t.Fatalf("radius %f is not scale*0.75", p.Radius)
		}
		if p.Length < 1 || p.Length >= 3 {
			t.Fatalf("length %f out of [1, 3)", p.Length)
		}
		if x := p.Position.X(); x < -5 || x >= 5 {
			t.Fatalf("x %f out of [-5, 5)", x)
		}
		if z := p.Position.Z(); z < -5 || z >= 5 {
			t.Fatalf("z %f out of [-5, 5)", z)
		}
		if y := p.Position.Y(); y < 20 || y >= 45 {
			t.Fatalf("y %f out of [20, 45)", y)
		}
		if p.Mass < 5 || p.Mass >= 10.75 {
			t.Fatalf("mass %f out of [5, 10.75)", p.Mass)
		}
		if p.Rotation.W != 1 {
			t.Fatalf("rotation w %f, expected 1", p.Rotation.W)
		}
		for axis := 0; axis < 3; axis++ {
			if v := p.Rotation.V[axis]; v < 0 || v >= 360 {
				t.Fatalf("rotation component %f out of [0, 360)", v)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewParamGen(99)
	b := NewParamGen(99)

	for i := 0; i < 50; i++ {
		pa, pb := a.Generate(), b.Generate()
		if pa != pb {
			t.Fatalf("draw %d differs: %+v vs %+v", i, pa, pb)
		}
		if a.RandomKind() != b.RandomKind() {
			t.Fatalf("kind draw %d differs", i)
		}
	}
}

func TestRandomKindCoversAll(t *testing.T) {
	gen := NewParamGen(7)
	seen := map[Kind]bool{}

	for i := 0; i < 200; i++ {
		seen[gen.RandomKind()] = true
	}

	for _, k := range []Kind{KindBox, KindSphere, KindCapsule} {
		if !seen[k] {
			t.Errorf("kind %s never drawn", k)
		}
	}
}
