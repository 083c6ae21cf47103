package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/scenes"
	"github.com/automoto/skyhop/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Debug.TuningFile, "tuning", "", "YAML tuning overrides, reloaded on change")
	flag.Uint64Var(&config.Debug.Seed, "seed", 0, "Obstacle spawner seed (0 = random)")
	flag.BoolVar(&config.Debug.Overlay, "debug", false, "Draw collider outlines and actor state")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("skyhop")
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence for the high score
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
