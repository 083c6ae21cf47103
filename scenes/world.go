package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/skyhop/assets"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/leveldata"
	"github.com/automoto/skyhop/systems"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	tuning       *cfg.TuningWatcher
	once         sync.Once
}

// NewPlatformerScene creates a new platformer scene
func NewPlatformerScene(sc SceneChanger) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.applyTuningUpdates()

	systems.Step(ps.ecs, 1/float64(ebiten.TPS()))

	if systems.IsPlayerDead(ps.ecs) {
		_ = systems.SaveHighScore(ps.ecs)
		if ps.tuning != nil {
			_ = ps.tuning.Close()
		}
		ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, systems.Results(ps.ecs)))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// applyTuningUpdates drains reloaded tuning files between ticks.
func (ps *PlatformerScene) applyTuningUpdates() {
	if ps.tuning == nil {
		return
	}
	for {
		select {
		case t := <-ps.tuning.Updates:
			t.Apply()
			systems.ApplyTuning(ps.ecs)
			log.Printf("Reloaded tuning from %s", cfg.Debug.TuningFile)
		case err := <-ps.tuning.Errors:
			log.Printf("Warning: Could not reload tuning: %v", err)
		default:
			return
		}
	}
}

func (ps *PlatformerScene) configure() {
	ps.loadTuning()

	world := donburi.NewWorld()
	ps.ecs = systems.NewSimulation(world, &systems.KeyboardSource{})

	// Add renderers
	ps.ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ps.ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ps.ecs.AddRenderer(cfg.HUD, systems.DrawDebug)
	ps.ecs.AddRenderer(cfg.HUD, systems.DrawPause)

	seed := cfg.Debug.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	factory.CreateSession(world, seed)
	systems.RestoreHighScore(ps.ecs)

	// Create the level entity and platforms FIRST.
	_, spawn, err := factory.CreateLevel(world, assets.LevelFS(), cfg.Level.Path)
	if err != nil {
		log.Printf("Warning: Could not load level %s, using built-in layout: %v", cfg.Level.Path, err)
		layout := leveldata.DefaultLayout()
		factory.CreateLevelFromLayout(world, layout)
		spawn = *layout.Spawn
	}

	player := factory.CreatePlayer(world, spawn.X, spawn.Y)

	// Snap camera to the follow position to prevent panning from (0,0)
	camera := factory.CreateCamera(world, spawn.X+cfg.Camera.OffsetX, spawn.Y+cfg.Camera.OffsetY)
	factory.AttachCameraFollow(camera, player.Entity())
}

// loadTuning applies the optional tuning file and starts watching it.
func (ps *PlatformerScene) loadTuning() {
	path := cfg.Debug.TuningFile
	if path == "" {
		return
	}
	t, err := cfg.LoadTuning(path)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
	} else {
		t.Apply()
	}

	w, err := cfg.WatchTuning(path)
	if err != nil {
		log.Printf("Warning: Could not watch tuning file: %v", err)
		return
	}
	ps.tuning = w
}
