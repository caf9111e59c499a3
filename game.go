package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/entity"
	"github.com/milk9111/sunnyland/ecs/system"
	"github.com/milk9111/sunnyland/input"
	"github.com/milk9111/sunnyland/levels"
	"github.com/milk9111/sunnyland/prefabs"
	"github.com/milk9111/sunnyland/scene"
	"golang.org/x/image/colornames"
)

const reloadPollInterval = time.Second

type Game struct {
	frames int
	debug  bool

	host   *scene.ProcessHost
	sim    *scene.SimContext
	scenes *scene.Controller
	pause  *pauseOverlay

	device     *input.DeviceSource
	binding    *input.Binding
	playerSpec *prefabs.PlayerSpec
	watcher    *prefabs.Watcher

	level        *levels.Level
	pendingLevel string
	hasPending   bool

	world       *ecs.World
	physics     *system.PhysicsSystem
	movement    *system.MovementControllerSystem
	render      *system.RenderSystem
	accumulator float64
}

func NewGame(levelName string, debug bool) (*Game, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}

	device := input.NewDeviceSource(spec.Input.KeyMap())
	g := &Game{
		debug:      debug,
		host:       scene.NewProcessHost(debug),
		sim:        scene.NewSimContext(),
		device:     device,
		binding:    input.NewBinding(device),
		playerSpec: spec,
		render:     system.NewRenderSystem(),
	}
	g.pause = newPauseOverlay(
		func() { g.scenes.ResumeGame() },
		func() {
			g.scenes.ResumeGame()
			g.scenes.ChangeScene(g.level.Name)
		},
		func() { g.scenes.ExitGame() },
	)
	g.scenes = scene.NewController(g.sim, g, g.host, g.pause)
	g.scenes.OnResume(func() {
		if g.movement != nil {
			g.movement.Resync()
		}
	})

	if err := g.loadLevel(levelName); err != nil {
		return nil, err
	}

	if debug {
		watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.PlayerFile)
		if err != nil {
			log.Printf("prefabs: falling back to polling: %v", err)
			watcher = prefabs.NewPollWatcher(prefabs.Dir, reloadPollInterval, prefabs.PlayerFile)
		}
		g.watcher = watcher
	}

	return g, nil
}

// LoadScene queues a scene change for the start of the next frame.
func (g *Game) LoadScene(name string) {
	g.pendingLevel = name
	g.hasPending = true
}

func (g *Game) Update() error {
	if g.host.Stopped() {
		return ebiten.Termination
	}
	g.frames++

	if g.hasPending {
		name := g.pendingLevel
		g.pendingLevel, g.hasPending = "", false
		if err := g.loadLevel(name); err != nil {
			log.Printf("scene: keeping %s: %v", g.level.Name, err)
		}
	}
	g.drainReloads()

	if g.device.PausePressed() {
		g.scenes.TogglePause()
	}
	g.pause.Update()
	if g.host.Stopped() {
		return ebiten.Termination
	}

	g.accumulator = step(g.world, g.sim.Scale(1.0/common.TPS), g.accumulator)
	return nil
}

// step runs one rendered frame of the world: frame systems with dt, then
// as many fixed steps as the accumulated time allows, up to
// common.MaxFixedSteps. A zero dt leaves the world untouched. It returns
// the new accumulator.
func step(w *ecs.World, dt, accumulator float64) float64 {
	if dt <= 0 || w == nil {
		return accumulator
	}

	w.Update(dt)

	accumulator += dt
	for steps := 0; accumulator >= common.FixedStep; steps++ {
		if steps == common.MaxFixedSteps {
			// drop the backlog rather than spiral
			return 0
		}
		w.FixedUpdate(common.FixedStep)
		accumulator -= common.FixedStep
	}
	return accumulator
}

// loadLevel builds a fresh world for the named level and swaps it in. On
// error the current world keeps running.
func (g *Game) loadLevel(name string) error {
	lvl, err := levels.Load(name)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if _, err := entity.LoadLevelToWorld(w, lvl, g.playerSpec); err != nil {
		return err
	}

	physics := system.NewPhysicsSystem(lvl.Gravity)
	movement := system.NewMovementControllerSystem(g.binding, physics)

	w.AddSystem(movement)
	w.AddSystem(system.NewAnimationSystem())
	w.AddSystem(system.NewCameraSystem())
	w.AddFixedSystem(movement)
	w.AddFixedSystem(physics)

	if err := w.Init(); err != nil {
		return fmt.Errorf("scene: init %s: %w", lvl.Name, err)
	}

	if g.world != nil {
		g.world.Deactivate()
	}
	w.Activate()

	g.world = w
	g.physics = physics
	g.movement = movement
	g.level = lvl
	g.accumulator = 0
	log.Printf("scene: loaded %s", lvl.Name)
	return nil
}

// drainReloads applies prefab edits picked up by the watcher.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			switch change.File {
			case prefabs.PlayerFile:
				g.reloadPlayerSpec()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

// reloadPlayerSpec re-reads the player prefab and applies its movement
// tuning and collision layers to the live player. Other fields take effect
// on the next scene load.
func (g *Game) reloadPlayerSpec() {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	g.playerSpec = spec

	player := g.movement.Player()
	if err := entity.ApplyPlayerSpec(g.world, player, spec); err != nil {
		log.Printf("prefabs: reload: %v", err)
		return
	}
	g.physics.RefreshFilter(g.world, player)
	log.Printf("prefabs: reloaded %s", prefabs.PlayerFile)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.level.Background.ColorOr(colornames.Skyblue))

	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.physics, g.render, g.world, screen)
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Level: %s", g.frames, ebiten.ActualFPS(), g.level.Name))
		system.DrawPlayerStateDebug(g.world, screen, 0, 16)
	}

	g.pause.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the prefab watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
