// Package sim runs the ambush world at a fixed tick: one donburi world, the
// system pipeline, the roster of enabled enemies and the clock.
//
// The server and the desktop viewer both drive a Simulation; neither touches
// the systems directly.
package sim

import (
	"errors"
	"fmt"

	"github.com/automoto/ambush/ai"
	"github.com/automoto/ambush/components"
	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/registry"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/automoto/ambush/systems"
	"github.com/automoto/ambush/systems/factory"
	"github.com/automoto/ambush/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

var (
	ErrLevelLoaded = errors.New("sim: level already loaded")
	ErrNoLevel     = errors.New("sim: no level loaded")
	ErrClosed      = errors.New("sim: closed")
)

type Options struct {
	// World to run in. A new world is created when nil; the server passes
	// its own so network sync sees the same entities.
	World donburi.World

	// TickRate in ticks per second, cfg.Sim.TickRate when zero.
	TickRate int

	// Saved per-type tuning applied on top of the type defaults.
	Saved systems.SavedTuning

	Logger *log.Logger
}

type Simulation struct {
	world  donburi.World
	ecs    *ecs.ECS
	level  *leveldata.Level
	saved  systems.SavedTuning
	logger *log.Logger

	spawned int
	closed  bool
}

func New(opts Options) *Simulation {
	world := opts.World
	if world == nil {
		world = donburi.NewWorld()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.WithPrefix("sim")
	}
	saved := opts.Saved
	if saved == nil {
		saved = systems.SavedTuning{}
	}

	s := &Simulation{
		world:  world,
		ecs:    ecs.NewECS(world),
		saved:  saved,
		logger: logger,
	}

	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdatePlayers))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEnemies))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateProjectiles))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDamage))
	s.ecs.AddSystem(systems.WithPauseCheck(systems.UpdateDeaths))

	factory.CreateClock(s.ecs, cfg.TickSeconds(opts.TickRate))
	factory.CreateRoster(s.ecs)
	systems.GetOrCreatePause(s.ecs)

	components.EnemyStateChanged.Subscribe(world, s.onEnemyStateChange)
	components.PlayerDeathEvent.Subscribe(world, s.onPlayerDeath)

	return s
}

func (s *Simulation) onEnemyStateChange(_ donburi.World, e components.EnemyStateChange) {
	s.logger.Debug("enemy state", "entity", e.Enemy, "type", e.TypeName, "from", e.From, "to", e.To)
}

func (s *Simulation) onPlayerDeath(_ donburi.World, e components.PlayerDeath) {
	s.logger.Info("player died", "entity", e.Player, "name", e.Name)
}

// LoadLevel builds the collision space and spawns and enables every enemy of
// the level. A simulation holds one level for its lifetime.
func (s *Simulation) LoadLevel(level *leveldata.Level) error {
	if s.closed {
		return ErrClosed
	}
	if s.level != nil {
		return ErrLevelLoaded
	}
	if level == nil {
		return fmt.Errorf("load level: %w", ErrNoLevel)
	}

	s.level = level
	factory.CreateLevel(s.ecs, level)
	factory.CreateSpace(s.ecs, level.Width, level.Depth, cfg.Sim.CellSize)

	for _, spawn := range level.Enemies {
		e := factory.CreateEnemy(s.ecs, spawn, s.saved)
		systems.ActivateEnemy(s.ecs, e)
	}

	s.logger.Info("level loaded", "name", level.Name, "enemies", len(level.Enemies), "spawns", len(level.PlayerSpawns))
	return nil
}

// SpawnPlayer places a player at the next spawn point in rotation.
func (s *Simulation) SpawnPlayer(name string) (*donburi.Entry, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.level == nil {
		return nil, ErrNoLevel
	}
	pos := s.level.PlayerSpawn(s.spawned)
	s.spawned++

	p := factory.CreatePlayer(s.ecs, name, pos)
	s.logger.Info("player spawned", "name", name, "entity", p.Entity(), "x", pos.X, "z", pos.Z)
	return p, nil
}

// SetPlayerInput sets the movement direction of a player. Unknown or removed
// players are ignored.
func (s *Simulation) SetPlayerInput(player donburi.Entity, moveX, moveZ float64) {
	if !s.world.Valid(player) {
		return
	}
	e := s.world.Entry(player)
	if !e.HasComponent(components.Player) {
		return
	}
	p := components.Player.Get(e)
	p.MoveX = moveX
	p.MoveZ = moveZ
}

// RemovePlayer takes a player out of the world without a death event.
func (s *Simulation) RemovePlayer(player donburi.Entity) bool {
	if !s.world.Valid(player) {
		return false
	}
	e := s.world.Entry(player)
	if !e.HasComponent(tags.Player) {
		return false
	}
	systems.RemoveEntity(s.ecs, e)
	return true
}

// Step runs one fixed tick: every system, then every queued event.
func (s *Simulation) Step() {
	if s.closed {
		return
	}
	s.ecs.Update()
	events.ProcessAllEvents(s.world)
}

// SetEnemyActive enables or disables one enemy.
func (s *Simulation) SetEnemyActive(enemy donburi.Entity, active bool) {
	if !s.world.Valid(enemy) {
		return
	}
	e := s.world.Entry(enemy)
	if active {
		systems.ActivateEnemy(s.ecs, e)
	} else {
		systems.DeactivateEnemy(s.ecs, e)
	}
}

// SetTuning changes the tuning of every enemy of a type and remembers it for
// enemies spawned later. It returns the clamped value in use.
func (s *Simulation) SetTuning(typeName string, t cfg.Tuning) cfg.Tuning {
	t = t.Clamped()
	s.saved[typeName] = t
	systems.ApplySavedTuning(s.ecs, systems.SavedTuning{typeName: t})
	return t
}

// Tuning returns the tuning for a type: saved if any, the type default
// otherwise.
func (s *Simulation) Tuning(typeName string) cfg.Tuning {
	if t, ok := s.saved[typeName]; ok {
		return t
	}
	enemyType, _ := cfg.EnemyType(typeName)
	return enemyType.Tuning
}

// SavedTuning returns the per-type tuning changed through SetTuning or
// passed in Options.
func (s *Simulation) SavedTuning() systems.SavedTuning {
	out := make(systems.SavedTuning, len(s.saved))
	for k, v := range s.saved {
		out[k] = v
	}
	return out
}

func (s *Simulation) TogglePause() bool {
	return systems.TogglePause(s.ecs)
}

func (s *Simulation) Paused() bool {
	return systems.GetOrCreatePause(s.ecs).IsPaused
}

// Enemies returns every enemy entry, enabled or not.
func (s *Simulation) Enemies() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Enemy.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func (s *Simulation) Players() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Player.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func (s *Simulation) Projectiles() []*donburi.Entry {
	var out []*donburi.Entry
	tags.Projectile.Each(s.world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

// Roster is the registry of enabled enemy controllers.
func (s *Simulation) Roster() *registry.Registry[*ai.Controller] {
	return systems.GetRoster(s.ecs)
}

func (s *Simulation) Clock() components.ClockData {
	if c := systems.GetClock(s.ecs); c != nil {
		return *c
	}
	return components.ClockData{}
}

func (s *Simulation) World() donburi.World {
	return s.world
}

func (s *Simulation) Level() *leveldata.Level {
	return s.level
}

// Close disables every enemy and clears the roster. Step is a no-op after.
func (s *Simulation) Close() {
	if s.closed {
		return
	}
	for _, e := range s.Enemies() {
		systems.DeactivateEnemy(s.ecs, e)
	}
	if roster := s.Roster(); roster != nil {
		roster.Clear()
	}
	s.closed = true
	s.logger.Info("simulation closed")
}
