package arena

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/michael-hamilton/physbox/internal/config"
	"github.com/michael-hamilton/physbox/internal/phys"
	"github.com/michael-hamilton/physbox/internal/sandbox"
)

// Sandbox bundles one fully wired demo instance.
type Sandbox struct {
	World      *phys.World
	Registry   *sandbox.Registry
	Factory    *sandbox.Factory
	Loop       *sandbox.Loop
	Controller *sandbox.Controller
	Gen        *sandbox.ParamGen
}

// New wires a sandbox around the given graphics engine and applies the
// configured preset.
func New(cfg *config.Config, gfx sandbox.GraphicsEngine) *Sandbox {
	world := phys.NewWorld(mgl32.Vec3{0, float32(cfg.GravityY), 0})
	pe := &physicsEngine{world: world}

	reg := &sandbox.Registry{}
	factory := sandbox.NewFactory(pe, gfx, reg)
	loop := sandbox.NewLoop(pe, gfx, reg)
	loop.SetSubsteps(cfg.Substeps)
	loop.SetAutoSpawnInterval(cfg.AutoSpawnInterval())

	gen := sandbox.NewParamGen(cfg.Seed)
	ctrl := sandbox.NewController(factory, loop, gen)

	sb := &Sandbox{
		World:      world,
		Registry:   reg,
		Factory:    factory,
		Loop:       loop,
		Controller: ctrl,
		Gen:        gen,
	}

	preset, ok := config.GetPreset(cfg.Preset)
	if !ok {
		preset = config.Preset{Floor: cfg.Floor}
	}
	sb.applyPreset(preset, cfg.Floor)
	return sb
}

// NewHeadless wires a sandbox with the recording no-op graphics engine.
func NewHeadless(cfg *config.Config) *Sandbox {
	return New(cfg, NewHeadlessScene())
}

func (sb *Sandbox) applyPreset(p config.Preset, floorOverride bool) {
	if p.Floor || floorOverride {
		sb.Factory.SpawnFloor()
	}

	for i := 0; i < p.Boxes; i++ {
		params := sb.Gen.Generate()
		if p.Stacked {
			// Column on the center panel; identity rotation keeps it standing.
			params.Position = mgl32.Vec3{0, float32(i)*2 + 1, 0}
			params.Rotation = mgl32.QuatIdent()
		}
		_, _ = sb.Factory.Spawn(sandbox.KindBox, params, false)
	}
	for i := 0; i < p.Spheres; i++ {
		_, _ = sb.Factory.Spawn(sandbox.KindSphere, sb.Gen.Generate(), false)
	}
	for i := 0; i < p.Capsules; i++ {
		_, _ = sb.Factory.Spawn(sandbox.KindCapsule, sb.Gen.Generate(), false)
	}

	if p.AutoSpawn && !sb.Loop.AutoSpawnOn() {
		sb.Loop.ToggleAutoSpawn()
	}
}
