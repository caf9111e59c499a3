package scene

import "log"

// Loader switches to a scene by name. Unknown names are the loader's
// problem; callers never get an error back.
type Loader interface {
	LoadScene(name string)
}

// Host is the process the game runs in.
type Host interface {
	// Interactive reports a development session that can be stopped
	// without killing the process.
	Interactive() bool
	StopSession()
	Terminate()
}

// Overlay is the pause menu.
type Overlay interface {
	Show()
	Hide()
}

// Controller handles scene switching, quitting and pausing.
type Controller struct {
	sim     *SimContext
	loader  Loader
	host    Host
	overlay Overlay
	paused  bool

	onResume []func()
}

// NewController wires a controller. overlay may be nil.
func NewController(sim *SimContext, loader Loader, host Host, overlay Overlay) *Controller {
	if sim == nil {
		sim = NewSimContext()
	}
	return &Controller{sim: sim, loader: loader, host: host, overlay: overlay}
}

// SetOverlay swaps the pause overlay. The overlay is shown straight away
// if the game is already paused.
func (c *Controller) SetOverlay(o Overlay) {
	if c.overlay != nil && c.paused {
		c.overlay.Hide()
	}
	c.overlay = o
	if c.overlay != nil && c.paused {
		c.overlay.Show()
	}
}

func (c *Controller) Sim() *SimContext {
	return c.sim
}

// ChangeScene asks the loader for the named scene, as is.
func (c *Controller) ChangeScene(name string) {
	if c.loader == nil {
		log.Printf("scene: change to %q: no loader", name)
		return
	}
	c.loader.LoadScene(name)
}

// ExitGame stops the session when running interactively and terminates
// the process otherwise.
func (c *Controller) ExitGame() {
	if c.host == nil {
		return
	}
	if c.host.Interactive() {
		c.host.StopSession()
		return
	}
	c.host.Terminate()
}

func (c *Controller) PauseGame() {
	c.sim.TimeScale = 0
	if c.overlay != nil {
		c.overlay.Show()
	}
	c.paused = true
}

// OnResume registers fn to run whenever a paused game resumes.
func (c *Controller) OnResume(fn func()) {
	if fn != nil {
		c.onResume = append(c.onResume, fn)
	}
}

func (c *Controller) ResumeGame() {
	wasPaused := c.paused
	c.sim.TimeScale = 1
	if c.overlay != nil {
		c.overlay.Hide()
	}
	c.paused = false
	if wasPaused {
		for _, fn := range c.onResume {
			fn()
		}
	}
}

func (c *Controller) TogglePause() {
	if c.paused {
		c.ResumeGame()
		return
	}
	c.PauseGame()
}

func (c *Controller) Paused() bool {
	return c.paused
}
