package core

import (
	"fmt"
	"io/fs"
	"log"
	"sync"

	"github.com/automoto/skyhop/components"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/shared/leveldata"
	"github.com/automoto/skyhop/systems"
	"github.com/automoto/skyhop/systems/factory"
	"github.com/automoto/skyhop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options configures a headless session.
type Options struct {
	TickRate  int
	Realtime  bool
	MaxTicks  uint64 // 0 runs until the actor dies or Stop is called
	Seed      uint64
	LevelFS   fs.FS
	LevelPath string
}

// Summary is the state reported when a session ends.
type Summary struct {
	Ticks     uint64
	Score     uint32
	HighScore uint32
	Health    float64
	Elapsed   float64
	Obstacles int
}

// Server runs the simulation without a window
type Server struct {
	world     donburi.World
	ecs       *ecs.ECS
	loop      *GameLoop
	autopilot *Autopilot
	maxTicks  uint64

	mu sync.RWMutex
}

// NewServer builds the world for opts and registers the simulation.
func NewServer(opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		return nil, fmt.Errorf("tick rate must be positive, got %d", opts.TickRate)
	}

	world := donburi.NewWorld()
	autopilot := NewAutopilot(opts.TickRate)
	s := &Server{
		world:     world,
		ecs:       systems.NewSimulation(world, autopilot),
		autopilot: autopilot,
		maxTicks:  opts.MaxTicks,
	}
	s.loop = NewGameLoop(s, opts.TickRate, opts.Realtime)

	factory.CreateSession(world, opts.Seed)
	spawn := loadLevel(world, opts.LevelFS, opts.LevelPath)
	player := factory.CreatePlayer(world, spawn.X, spawn.Y)
	camera := factory.CreateCamera(world, spawn.X+cfg.Camera.OffsetX, spawn.Y+cfg.Camera.OffsetY)
	factory.AttachCameraFollow(camera, player.Entity())

	return s, nil
}

// Start runs the loop in the background.
func (s *Server) Start() {
	go s.loop.Run()
}

// Stop gracefully shuts down the loop
func (s *Server) Stop() {
	s.loop.Stop()
}

func (s *Server) Done() <-chan struct{} {
	return s.loop.Done()
}

// Tick advances one step and reports whether the session continues.
func (s *Server) Tick(dt float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.autopilot.Advance()
	systems.Step(s.ecs, dt)

	if systems.IsPlayerDead(s.ecs) {
		return false
	}
	if s.maxTicks > 0 && s.frame() >= s.maxTicks {
		return false
	}
	return true
}

func (s *Server) frame() uint64 {
	session, ok := components.Clock.First(s.world)
	if !ok {
		return 0
	}
	return components.Clock.Get(session).Frame
}

// Summary reports the current session state.
func (s *Server) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := systems.Results(s.ecs)
	sum := Summary{
		Ticks:     s.frame(),
		Score:     res.FinalScore,
		HighScore: res.HighScore,
		Elapsed:   res.SurvivedFor,
	}
	if player, ok := tags.Player.First(s.world); ok {
		sum.Health = components.Health.Get(player).Current
	}
	tags.Obstacle.Each(s.world, func(*donburi.Entry) {
		sum.Obstacles++
	})
	return sum
}

// ECS exposes the simulation for persistence helpers.
func (s *Server) ECS() *ecs.ECS {
	return s.ecs
}

// loadLevel spawns the TMX layout, falling back to the built-in stage.
func loadLevel(world donburi.World, fsys fs.FS, path string) leveldata.SpawnPoint {
	if fsys != nil && path != "" {
		_, spawn, err := factory.CreateLevel(world, fsys, path)
		if err == nil {
			log.Printf("Loaded level %s (spawn %.0f,%.0f)", path, spawn.X, spawn.Y)
			return spawn
		}
		log.Printf("Warning: Could not load level %s, using built-in layout: %v", path, err)
	}
	layout := leveldata.DefaultLayout()
	factory.CreateLevelFromLayout(world, layout)
	return *layout.Spawn
}
