// Package core is the headless ambush server: it owns the simulation, maps
// websocket clients to players and mirrors the world into necs-synced
// components every tick.
package core

import (
	"fmt"
	"sync/atomic"

	"github.com/automoto/ambush/components"
	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/automoto/ambush/shared/messages"
	"github.com/automoto/ambush/sim"
	"github.com/automoto/ambush/systems"
	"github.com/charmbracelet/log"
	"github.com/leap-fish/necs/esync/srvsync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
	"github.com/yohamta/donburi"
)

// Seconds a dead player waits before respawning.
const respawnDelay = 3.0

type Options struct {
	TickRate int
	Version  string // required client version, empty accepts any
	Saved    systems.SavedTuning
}

type clientState struct {
	id        string
	name      string
	player    donburi.Entity
	alive     bool
	respawnAt float64 // simulated seconds
	lastSeq   uint32
}

// Server manages the game state and client connections
type Server struct {
	world     donburi.World
	sim       *sim.Simulation
	loop      *GameLoop
	transport *transports.WsServerTransport
	logger    *log.Logger
	version   string
	running   atomic.Bool

	commands commandQueue

	// Owned by the loop goroutine.
	clients map[string]*clientState
}

// NewServer creates a server running level. Network sync is enabled on the
// simulation's world so every entity marked in mirror reaches clients.
func NewServer(level *leveldata.Level, opts Options) (*Server, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = cfg.Sim.TickRate
	}

	world := donburi.NewWorld()
	srvsync.UseEsync(world)

	s := &Server{
		world:   world,
		logger:  log.WithPrefix("server"),
		version: opts.Version,
		clients: make(map[string]*clientState),
	}
	s.sim = sim.New(sim.Options{
		World:    world,
		TickRate: opts.TickRate,
		Saved:    opts.Saved,
		Logger:   log.WithPrefix("sim"),
	})
	if err := s.sim.LoadLevel(level); err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}
	components.PlayerDeathEvent.Subscribe(world, s.onPlayerDeath)

	s.loop = NewGameLoop(s, opts.TickRate)
	s.setupRouterCallbacks()

	return s, nil
}

// Start begins the server on the given port
func (s *Server) Start(port uint) error {
	s.running.Store(true)
	go s.loop.Run()

	s.transport = transports.NewWsServerTransport(port, "", nil)
	return s.transport.Start()
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.running.CompareAndSwap(true, false) {
		s.loop.Stop()
	}
	s.sim.Close()
}

func (s *Server) setupRouterCallbacks() {
	router.OnConnect(func(client *router.NetworkClient) {
		s.logger.Info("client connected", "client", client.Id())
	})

	router.OnDisconnect(func(client *router.NetworkClient, err error) {
		id := client.Id()
		if err != nil {
			s.logger.Info("client disconnected", "client", id, "err", err)
		} else {
			s.logger.Info("client disconnected", "client", id)
		}
		s.commands.Push(func() { s.leave(id) })
	})

	router.On(func(client *router.NetworkClient, req messages.JoinRequest) {
		id := client.Id()
		s.commands.Push(func() { s.join(id, req) })
	})

	router.On(func(client *router.NetworkClient, input messages.PlayerInput) {
		id := client.Id()
		s.commands.Push(func() { s.applyInput(id, input) })
	})

	router.OnError(func(client *router.NetworkClient, err error) {
		s.logger.Warn("client error", "client", client.Id(), "err", err)
	})
}

// Tick runs one server frame on the loop goroutine: queued client commands,
// due respawns, one simulation step, then the network mirror.
func (s *Server) Tick() {
	s.commands.Drain()
	s.respawnDue()
	s.sim.Step()
	s.mirror()
}

func (s *Server) join(id string, req messages.JoinRequest) {
	if s.version != "" && req.Version != s.version {
		s.logger.Warn("join rejected: version mismatch", "client", id, "version", req.Version, "want", s.version)
		return
	}
	if _, ok := s.clients[id]; ok {
		return
	}

	name := req.PlayerName
	if name == "" {
		name = "player-" + id
	}
	c := &clientState{id: id, name: name}
	s.clients[id] = c
	s.spawn(c)
}

func (s *Server) spawn(c *clientState) {
	entry, err := s.sim.SpawnPlayer(c.name)
	if err != nil {
		// Retry with the respawn delay instead of every tick.
		c.alive = false
		c.respawnAt = s.sim.Clock().Elapsed + respawnDelay
		s.logger.Warn("spawn failed", "client", c.id, "err", err, "retry_in", respawnDelay)
		return
	}
	c.player = entry.Entity()
	c.alive = true
	c.lastSeq = 0
}

func (s *Server) leave(id string) {
	c, ok := s.clients[id]
	if !ok {
		return
	}
	delete(s.clients, id)

	if c.alive && s.sim.RemovePlayer(c.player) {
		s.logger.Info("player removed", "client", id)
	}
}

func (s *Server) applyInput(id string, input messages.PlayerInput) {
	c, ok := s.clients[id]
	if !ok || !c.alive {
		return
	}
	if input.Sequence != 0 && input.Sequence <= c.lastSeq {
		return
	}
	c.lastSeq = input.Sequence
	s.sim.SetPlayerInput(c.player, input.MoveX, input.MoveZ)
}

func (s *Server) onPlayerDeath(_ donburi.World, e components.PlayerDeath) {
	for _, c := range s.clients {
		if c.alive && c.player == e.Player {
			c.alive = false
			c.respawnAt = s.sim.Clock().Elapsed + respawnDelay
			s.logger.Info("player died", "client", c.id, "respawn_in", respawnDelay)
		}
	}
}

func (s *Server) respawnDue() {
	now := s.sim.Clock().Elapsed
	for _, c := range s.clients {
		if !c.alive && now >= c.respawnAt {
			s.spawn(c)
		}
	}
}

// World returns the ECS world
func (s *Server) World() donburi.World {
	return s.world
}

func (s *Server) Simulation() *sim.Simulation {
	return s.sim
}

// PlayerCount returns the number of joined clients. Loop goroutine only.
func (s *Server) PlayerCount() int {
	return len(s.clients)
}
