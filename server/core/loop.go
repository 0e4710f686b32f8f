package core

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/leap-fish/necs/esync/srvsync"
)

type GameLoop struct {
	server   *Server
	tickRate int
	budget   time.Duration
	overruns int
	stopChan chan struct{}
	doneChan chan struct{}
	logger   *log.Logger
}

func NewGameLoop(server *Server, tickRate int) *GameLoop {
	return &GameLoop{
		server:   server,
		tickRate: tickRate,
		budget:   time.Second / time.Duration(tickRate),
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
		logger:   log.WithPrefix("loop"),
	}
}

// Run ticks until Stop is called.
func (g *GameLoop) Run() {
	defer close(g.doneChan)

	ticker := time.NewTicker(g.budget)
	defer ticker.Stop()

	g.logger.Info("game loop started", "tickrate", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.logger.Info("game loop stopped", "overruns", g.overruns)
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

// Stop ends Run and waits for the tick in progress to finish.
func (g *GameLoop) Stop() {
	close(g.stopChan)
	<-g.doneChan
}

// tick runs one simulation step and sends the snapshot. Ticks that take
// longer than the tick budget are counted; the ticker drops the ticks they
// overlap rather than queueing them.
func (g *GameLoop) tick() {
	start := time.Now()
	g.server.Tick()

	if err := srvsync.DoSync(); err != nil {
		g.logger.Warn("sync error", "err", err)
	}

	if took := time.Since(start); took > g.budget {
		g.overruns++
		g.logger.Debug("tick over budget", "took", took, "budget", g.budget)
	}
}
