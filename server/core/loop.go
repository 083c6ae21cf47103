package core

import (
	"log"
	"time"
)

type GameLoop struct {
	server   *Server
	tickRate int
	realtime bool
	running  bool
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewGameLoop creates a fixed-timestep loop. With realtime false ticks run
// back to back; the simulated delta is 1/tickRate either way.
func NewGameLoop(server *Server, tickRate int, realtime bool) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		realtime: realtime,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	g.running = true
	defer func() {
		g.running = false
		close(g.doneChan)
	}()

	log.Printf("Game loop started at %d ticks/second (realtime: %t)", g.tickRate, g.realtime)

	if !g.realtime {
		for {
			select {
			case <-g.stopChan:
				log.Println("Game loop stopped")
				return
			default:
			}
			if !g.tick() {
				return
			}
		}
	}

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	for {
		select {
		case <-g.stopChan:
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			if !g.tick() {
				return
			}
		}
	}
}

func (g *GameLoop) Stop() {
	select {
	case <-g.stopChan:
	default:
		close(g.stopChan)
	}
}

// Done is closed once Run returns.
func (g *GameLoop) Done() <-chan struct{} {
	return g.doneChan
}

func (g *GameLoop) tick() bool {
	return g.server.Tick(1 / float64(g.tickRate))
}
