package scene

import "testing"

type fakeLoader struct {
	requests []string
}

func (l *fakeLoader) LoadScene(name string) {
	l.requests = append(l.requests, name)
}

type fakeHost struct {
	interactive bool
	stopped     int
	terminated  int
}

func (h *fakeHost) Interactive() bool { return h.interactive }
func (h *fakeHost) StopSession() { h.stopped++ }
func (h *fakeHost) Terminate() { h.terminated++ }

type fakeOverlay struct {
	visible bool
	shows   int
	hides   int
}

func (o *fakeOverlay) Show() {
	o.visible = true
	o.shows++
}

func (o *fakeOverlay) Hide() {
	o.visible = false
	o.hides++
}

func TestChangeSceneForwardsName(t *testing.T) {
	loader := &fakeLoader{}
	c := NewController(NewSimContext(), loader, &fakeHost{}, nil)

	for _, name := range []string{"meadow", "", "does-not-exist"} {
		c.ChangeScene(name)
	}

	want := []string{"meadow", "", "does-not-exist"}
	if len(loader.requests) != len(want) {
		t.Fatalf("expected %d requests, got %v", len(want), loader.requests)
	}
	for i := range want {
		if loader.requests[i] != want[i] {
			t.Fatalf("request %d: got %q, want %q", i, loader.requests[i], want[i])
		}
	}
}

func TestChangeSceneWithoutLoader(t *testing.T) {
	c := NewController(nil, nil, nil, nil)
	c.ChangeScene("meadow")
}

func TestExitGame(t *testing.T) {
	tests := []struct {
		name           string
		interactive    bool
		wantStopped    int
		wantTerminated int
	}{
		{name: "interactive", interactive: true, wantStopped: 1},
		{name: "standalone", interactive: false, wantTerminated: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host := &fakeHost{interactive: tt.interactive}
			c := NewController(NewSimContext(), &fakeLoader{}, host, nil)
			c.ExitGame()
			if host.stopped != tt.wantStopped || host.terminated != tt.wantTerminated {
				t.Fatalf("stopped=%d terminated=%d, want %d/%d", host.stopped, host.terminated, tt.wantStopped, tt.wantTerminated)
			}
		})
	}
}

func TestPauseResume(t *testing.T) {
	sim := NewSimContext()
	overlay := &fakeOverlay{}
	c := NewController(sim, &fakeLoader{}, &fakeHost{}, overlay)

	c.PauseGame()
	if sim.TimeScale != 0 || !c.Paused() || !overlay.visible {
		t.Fatalf("after pause: scale=%v paused=%v overlay=%v", sim.TimeScale, c.Paused(), overlay.visible)
	}
	if !sim.Frozen() {
		t.Fatalf("expected frozen sim")
	}

	c.ResumeGame()
	if sim.TimeScale != 1 || c.Paused() || overlay.visible {
		t.Fatalf("after resume: scale=%v paused=%v overlay=%v", sim.TimeScale, c.Paused(), overlay.visible)
	}
}

func TestPauseWithoutOverlay(t *testing.T) {
	sim := NewSimContext()
	c := NewController(sim, &fakeLoader{}, &fakeHost{}, nil)
	c.PauseGame()
	if sim.TimeScale != 0 || !c.Paused() {
		t.Fatalf("expected paused without overlay")
	}
	c.ResumeGame()
	if sim.TimeScale != 1 || c.Paused() {
		t.Fatalf("expected resumed without overlay")
	}
}

func TestTogglePauseTwiceRestores(t *testing.T) {
	for _, startPaused := range []bool{false, true} {
		sim := NewSimContext()
		overlay := &fakeOverlay{}
		c := NewController(sim, &fakeLoader{}, &fakeHost{}, overlay)
		if startPaused {
			c.PauseGame()
		}
		scale, paused, visible := sim.TimeScale, c.Paused(), overlay.visible

		c.TogglePause()
		if c.Paused() == paused {
			t.Fatalf("toggle from paused=%v did not flip", paused)
		}
		c.TogglePause()

		if sim.TimeScale != scale || c.Paused() != paused || overlay.visible != visible {
			t.Fatalf("double toggle from paused=%v changed state: scale=%v paused=%v overlay=%v", startPaused, sim.TimeScale, c.Paused(), overlay.visible)
		}
	}
}

func TestOnResume(t *testing.T) {
	c := NewController(NewSimContext(), nil, nil, nil)
	resumes := 0
	c.OnResume(func() { resumes++ })
	c.OnResume(nil)

	c.ResumeGame()
	if resumes != 0 {
		t.Fatalf("resume without pause ran %d hooks", resumes)
	}

	c.PauseGame()
	c.ResumeGame()
	if resumes != 1 {
		t.Fatalf("expected one hook run after pause/resume, got %d", resumes)
	}

	c.TogglePause()
	c.TogglePause()
	if resumes != 2 {
		t.Fatalf("expected toggle resume to run hooks, got %d", resumes)
	}
}

func TestSetOverlayWhilePaused(t *testing.T) {
	c := NewController(NewSimContext(), &fakeLoader{}, &fakeHost{}, nil)
	c.PauseGame()

	overlay := &fakeOverlay{}
	c.SetOverlay(overlay)
	if !overlay.visible {
		t.Fatalf("expected overlay shown when set while paused")
	}
}

func TestSimContextScale(t *testing.T) {
	sim := NewSimContext()
	if got := sim.Scale(0.5); got != 0.5 {
		t.Fatalf("Scale at 1 = %v", got)
	}
	sim.TimeScale = 0
	if got := sim.Scale(0.5); got != 0 {
		t.Fatalf("Scale at 0 = %v", got)
	}
	var none *SimContext
	if got := none.Scale(0.5); got != 0.5 {
		t.Fatalf("nil Scale = %v", got)
	}
}

func TestProcessHost(t *testing.T) {
	code := -1
	h := NewProcessHost(false)
	h.exit = func(c int) { code = c }

	c := NewController(NewSimContext(), &fakeLoader{}, h, nil)
	c.ExitGame()
	if code != 0 || h.Stopped() {
		t.Fatalf("expected terminate with 0, got code=%d stopped=%v", code, h.Stopped())
	}

	dev := NewProcessHost(true)
	dev.exit = func(int) { t.Fatalf("interactive host must not exit") }
	NewController(NewSimContext(), &fakeLoader{}, dev, nil).ExitGame()
	if !dev.Stopped() {
		t.Fatalf("expected session stopped")
	}
}
