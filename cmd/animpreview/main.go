package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/ecs"
	"github.com/milk9111/sunnyland/ecs/component"
	"github.com/milk9111/sunnyland/ecs/entity"
	"github.com/milk9111/sunnyland/ecs/system"
	"github.com/milk9111/sunnyland/prefabs"
	"golang.org/x/image/colornames"
)

const (
	screenSize = 512
	boxSize    = 192
	pipSize    = 12
	stateCount = int(component.MovementCrouch) + 1
)

// previewGame plays the player's animation clips one state at a time.
// Left/Right step through the movement states.
type previewGame struct {
	world  *ecs.World
	anim   *component.Animator
	system *system.AnimationSystem
	state  component.MovementState
	pixel  *ebiten.Image
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.state = component.MovementState((int(g.state) + 1) % stateCount)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.state = component.MovementState((int(g.state) + stateCount - 1) % stateCount)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		// replay non-looping clips
		g.anim.Current = ""
	}
	g.anim.SetInteger(component.StateParam, int(g.state))
	g.system.Update(g.world, 1.0/common.TPS)
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	def, ok := g.anim.Defs[g.anim.Current]
	fill := color.Color(colornames.Magenta)
	if ok && def.Color != nil {
		fill = def.Color
	}
	origin := float64(screenSize-boxSize) / 2
	g.fillRect(screen, origin, origin, boxSize, boxSize, fill)

	for i := 0; i < def.FrameCount; i++ {
		pip := color.Color(colornames.Dimgray)
		if i == g.anim.Frame {
			pip = colornames.White
		}
		g.fillRect(screen, origin+float64(i)*(pipSize+4), origin+boxSize+12, pipSize, pipSize, pip)
	}

	clip := g.anim.Current
	if _, has := g.anim.Defs[g.state.String()]; !has {
		clip += " (state has no clip)"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("state: %s (%d)\nclip: %s\nframe: %d/%d  loop: %v  playing: %v\n<-/-> state, space replay",
		g.state, int(g.state), clip, g.anim.Frame+1, def.FrameCount, def.Loop, g.anim.Playing))
}

func (g *previewGame) fillRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(g.pixel, op)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenSize, screenSize
}

func main() {
	stateName := flag.String("state", "idle", "movement state to start on")
	flag.Parse()

	start, ok := component.ParseMovementState(*stateName)
	if !ok {
		log.Fatalf("unknown state %q", *stateName)
	}

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}

	w := ecs.NewWorld()
	player, err := entity.NewPlayerAt(w, spec, 0, 0)
	if err != nil {
		log.Fatal(err)
	}
	anim, ok := ecs.Get(w, player, component.AnimatorComponent)
	if !ok {
		log.Fatal("player prefab has no animator")
	}

	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	g := &previewGame{world: w, anim: anim, system: system.NewAnimationSystem(), state: start, pixel: pixel}

	ebiten.SetWindowSize(screenSize, screenSize)
	ebiten.SetWindowTitle("Player Animation Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
