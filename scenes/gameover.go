package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/systems"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the results of the last run
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	results      components.GameOverData
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, results components.GameOverData) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, results: results}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	systems.Step(gs.ecs, 1/float64(ebiten.TPS()))
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	world := donburi.NewWorld()
	gs.ecs = ecs.NewECS(world)

	createPlatformerScene := func() interface{} {
		return NewPlatformerScene(gs.sceneChanger)
	}

	// Minimal systems for game over
	factory.CreateSession(world, 0)
	gs.ecs.AddSystem(systems.NewInputSystem(&systems.KeyboardSource{}))
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createPlatformerScene))

	results := world.Entry(world.Create(components.GameOver))
	components.GameOver.SetValue(results, gs.results)

	// Renderer
	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
}
