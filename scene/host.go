package scene

import (
	"log"
	"os"
	"sync/atomic"
)

// ProcessHost is the Host for the game binary. In debug mode quitting only
// ends the run loop.
type ProcessHost struct {
	debug   bool
	stopped atomic.Bool
	exit    func(code int)
}

func NewProcessHost(debug bool) *ProcessHost {
	return &ProcessHost{debug: debug, exit: os.Exit}
}

func (h *ProcessHost) Interactive() bool {
	return h.debug
}

func (h *ProcessHost) StopSession() {
	log.Printf("scene: stopping session")
	h.stopped.Store(true)
}

func (h *ProcessHost) Terminate() {
	h.exit(0)
}

// Stopped reports whether StopSession has been called.
func (h *ProcessHost) Stopped() bool {
	return h.stopped.Load()
}
