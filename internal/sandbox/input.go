package sandbox

// Key is a discrete input identifier, decoupled from any windowing library's
// key codes.
type Key int

const (
	KeyNone Key = iota
	KeySphere
	KeyBox
	KeyCapsule
	KeyRandom // spawn a random kind from one shared params draw
	KeyClear  // remove every non-floor object
	KeyFloor  // toggle the 5-panel floor
	KeyAuto   // toggle the auto-spawn timer
)

// Controller maps key presses to lifecycle actions, synchronously and without
// debouncing.
type Controller struct {
	factory *Factory
	loop    *Loop
	gen     *ParamGen
}

func NewController(factory *Factory, loop *Loop, gen *ParamGen) *Controller {
	c := &Controller{factory: factory, loop: loop, gen: gen}
	loop.SetAutoSpawnFunc(func() { _ = c.SpawnRandom() })
	return c
}

// HandleKey performs the action bound to k. Unmapped keys are ignored.
func (c *Controller) HandleKey(k Key) error {
	switch k {
	case KeySphere:
		_, err := c.factory.Spawn(KindSphere, c.gen.Generate(), false)
		return err
	case KeyBox:
		_, err := c.factory.Spawn(KindBox, c.gen.Generate(), false)
		return err
	case KeyCapsule:
		_, err := c.factory.Spawn(KindCapsule, c.gen.Generate(), false)
		return err
	case KeyRandom:
		return c.SpawnRandom()
	case KeyClear:
		c.loop.ClearDynamic()
	case KeyFloor:
		c.ToggleFloor()
	case KeyAuto:
		c.loop.ToggleAutoSpawn()
	}
	return nil
}

// SpawnRandom spawns one of the three kinds chosen uniformly, reusing a
// single params draw for whichever kind comes up.
func (c *Controller) SpawnRandom() error {
	p := c.gen.Generate()
	_, err := c.factory.Spawn(c.gen.RandomKind(), p, false)
	return err
}

// ToggleFloor recreates the floor when absent and removes every floor panel
// when present. Reports whether the floor exists afterwards.
func (c *Controller) ToggleFloor() bool {
	if c.loop.Registry().CountTag(TagFloor) > 0 {
		c.loop.RemoveWhere(func(o *SimObject) bool { return o.Tag == TagFloor })
		return false
	}
	c.factory.SpawnFloor()
	return true
}

// FloorPresent reports whether any floor panel is live.
func (c *Controller) FloorPresent() bool {
	return c.loop.Registry().CountTag(TagFloor) > 0
}
