package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/skyhop/assets"
	cfg "github.com/automoto/skyhop/config"
	"github.com/automoto/skyhop/server/core"
	"github.com/automoto/skyhop/systems"
)

func main() {
	tickRate := flag.Int("tickrate", cfg.C.TPS, "Simulation tick rate (updates per second)")
	ticks := flag.Uint64("ticks", 60*60, "Stop after this many ticks (0 = until the actor dies)")
	realtime := flag.Bool("realtime", false, "Pace ticks at wall-clock speed")
	seed := flag.Uint64("seed", 1, "Obstacle spawner seed")
	levelDir := flag.String("levels", "", "Directory holding level files (empty = embedded levels)")
	level := flag.String("level", cfg.Level.Path, "Level path inside the level source")
	tuning := flag.String("tuning", "", "YAML tuning overrides")
	persist := flag.Bool("persist", false, "Load and save the high score")
	flag.Parse()

	if *tuning != "" {
		t, err := cfg.LoadTuning(*tuning)
		if err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
		t.Apply()
	}

	levels := assets.LevelFS()
	if *levelDir != "" {
		levels = os.DirFS(*levelDir)
	}

	server, err := core.NewServer(core.Options{
		TickRate:  *tickRate,
		Realtime:  *realtime,
		MaxTicks:  *ticks,
		Seed:      *seed,
		LevelFS:   levels,
		LevelPath: *level,
	})
	if err != nil {
		log.Fatalf("Failed to create simulation: %v", err)
	}

	if *persist {
		if err := systems.InitPersistence(); err == nil {
			systems.RestoreHighScore(server.ECS())
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		server.Stop()
	}()

	server.Start()
	<-server.Done()

	sum := server.Summary()
	log.Printf("Simulation finished after %d ticks (%.1fs): score %d, best %d, health %.0f, %d obstacles live",
		sum.Ticks, sum.Elapsed, sum.Score, sum.HighScore, sum.Health, sum.Obstacles)

	if *persist {
		_ = systems.SaveHighScore(server.ECS())
	}
}
