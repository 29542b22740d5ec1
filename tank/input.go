package tank

// Controller maps key presses to pose changes and shots.
//
// Key names follow the browser KeyboardEvent.key values ("w", "ArrowUp", " ").
type Controller struct {
	sim *Sim

	// OnFire, if set, is called with every shell spawned by the fire key.
	OnFire func(Projectile)
}

func NewController(sim *Sim) *Controller {
	return &Controller{sim: sim}
}

// KeyDown applies one key press. It reports whether the key is bound.
func (c *Controller) KeyDown(key string) bool {
	p := &c.sim.Pose
	switch key {
	case "w":
		p.Elevate(1)
	case "s":
		p.Elevate(-1)
	case "a":
		p.Turn(1)
	case "d":
		p.Turn(-1)
	case "W":
		p.SetWireframe()
	case "S":
		p.SetFilled()
	case "ArrowUp":
		p.Roll(1)
	case "ArrowDown":
		p.Roll(-1)
	case " ":
		shot := c.sim.Fire()
		if c.OnFire != nil {
			c.OnFire(shot)
		}
	case "1":
		p.SelectView(ViewFront)
	case "2":
		p.SelectView(ViewTop)
	case "3":
		p.SelectView(ViewSide)
	case "4":
		p.SelectView(ViewAxonometric)
	case "+":
		p.ZoomIn()
	case "-":
		p.ZoomOut()
	default:
		return false
	}
	return true
}
