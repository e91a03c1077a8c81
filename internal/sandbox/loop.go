package sandbox

import "time"

// DefaultSubsteps is the fixed physics sub-step count per frame. Ten substeps
// trades CPU for solver stability, matching the demo's tuning.
const DefaultSubsteps = 10

// DefaultAutoSpawnInterval is the requested delay between auto-spawned
// objects. The effective rate is clamped to at most one spawn per tick by the
// frame scheduler, so the literal value is a configuration knob rather than a
// timing guarantee.
const DefaultAutoSpawnInterval = time.Millisecond

// Loop drives the simulation one tick per host frame: advance physics with
// fixed substeps, copy body transforms onto meshes in registry order, render,
// then invoke the optional post-frame callback. The sync is one-way and
// physics-authoritative.
type Loop struct {
	phys     PhysicsEngine
	gfx      GraphicsEngine
	reg      *Registry
	substeps int

	onFrame func()

	autoOn       bool
	autoInterval time.Duration
	autoElapsed  time.Duration
	autoSpawn    func()

	fps float64
}

func NewLoop(phys PhysicsEngine, gfx GraphicsEngine, reg *Registry) *Loop {
	return &Loop{
		phys:         phys,
		gfx:          gfx,
		reg:          reg,
		substeps:     DefaultSubsteps,
		autoInterval: DefaultAutoSpawnInterval,
	}
}

// SetSubsteps overrides the per-tick physics sub-step count.
func (l *Loop) SetSubsteps(n int) {
	if n < 1 {
		n = 1
	}
	l.substeps = n
}

// OnFrame registers a callback invoked at the end of every tick, after
// rendering. Used by the readout panel.
func (l *Loop) OnFrame(fn func()) { l.onFrame = fn }

func (l *Loop) Registry() *Registry { return l.reg }

// Tick advances the world by dt seconds and synchronizes the scene.
func (l *Loop) Tick(dt float32) {
	if dt <= 0 {
		return
	}
	l.autoTick(dt)

	l.phys.Step(dt, l.substeps)

	// Registry order; objects without a motion state are skipped, never the
	// whole frame.
	for _, o := range l.reg.objects {
		t, ok := o.Body.MotionState()
		if !ok {
			continue
		}
		o.Mesh.SetTransform(t)
	}

	l.gfx.Render()

	if l.onFrame != nil {
		l.onFrame()
	}

	// Exponentially smoothed frames per second.
	inst := 1 / float64(dt)
	if l.fps == 0 {
		l.fps = inst
	} else {
		l.fps = l.fps*0.9 + inst*0.1
	}
}

// RemoveWhere detaches every matching object from both engines and compacts
// the registry, as one logical operation. Returns the number removed.
func (l *Loop) RemoveWhere(match func(*SimObject) bool) int {
	removed := l.reg.takeWhere(match)
	for _, o := range removed {
		l.gfx.RemoveMesh(o.Mesh)
		l.phys.RemoveBody(o.Body)
	}
	return len(removed)
}

// ClearDynamic removes every object not tagged as floor.
func (l *Loop) ClearDynamic() int {
	return l.RemoveWhere(func(o *SimObject) bool { return o.Tag != TagFloor })
}

// SetAutoSpawnFunc installs the action fired by the auto-spawn timer.
func (l *Loop) SetAutoSpawnFunc(fn func()) { l.autoSpawn = fn }

// SetAutoSpawnInterval overrides the requested auto-spawn delay.
func (l *Loop) SetAutoSpawnInterval(d time.Duration) {
	if d > 0 {
		l.autoInterval = d
	}
}

// ToggleAutoSpawn flips the auto-spawn timer and reports the new state.
// Turning it off halts further spawns immediately.
func (l *Loop) ToggleAutoSpawn() bool {
	l.autoOn = !l.autoOn
	l.autoElapsed = 0
	return l.autoOn
}

func (l *Loop) AutoSpawnOn() bool { return l.autoOn }

// autoTick is polled from Tick rather than run on a goroutine timer so that
// registry mutation stays on the frame loop. At most one spawn fires per
// tick regardless of how short the requested interval is.
func (l *Loop) autoTick(dt float32) {
	if !l.autoOn || l.autoSpawn == nil {
		return
	}
	l.autoElapsed += time.Duration(float64(dt) * float64(time.Second))
	if l.autoElapsed >= l.autoInterval {
		l.autoElapsed = 0
		l.autoSpawn()
	}
}

// FPS returns the smoothed tick rate.
func (l *Loop) FPS() float64 { return l.fps }

// Triangles returns the total triangle count across all live meshes.
func (l *Loop) Triangles() int {
	n := 0
	for _, o := range l.reg.objects {
		n += o.Mesh.TriangleCount()
	}
	return n
}
