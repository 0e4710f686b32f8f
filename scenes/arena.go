package scenes

import (
	"fmt"

	"github.com/automoto/ambush/shared/leveldata"
	"github.com/automoto/ambush/shared/netcomponents"
	"github.com/automoto/ambush/sim"
	"github.com/automoto/ambush/systems"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
)

var tunableTypes = []string{"Sentry", "Sniper", "Skirmisher"}

// ArenaScene runs the simulation in-process, one tick per ebiten update.
type ArenaScene struct {
	sceneChanger SceneChanger
	level        *leveldata.Level
	saved        systems.SavedTuning
	logger       *log.Logger

	sim      *sim.Simulation
	player   donburi.Entity
	spawnErr error // set after a failed spawn; cleared by restart
	selected int
	status   string
}

func NewArenaScene(sc SceneChanger, level *leveldata.Level, saved systems.SavedTuning) *ArenaScene {
	as := &ArenaScene{
		sceneChanger: sc,
		level:        level,
		saved:        saved,
		logger:       log.WithPrefix("arena"),
	}
	as.restart()
	return as
}

func (as *ArenaScene) restart() {
	if as.sim != nil {
		as.saved = as.sim.SavedTuning()
		as.sim.Close()
	}
	as.spawnErr = nil
	as.sim = sim.New(sim.Options{
		TickRate: ebiten.TPS(),
		Saved:    as.saved,
		Logger:   as.logger,
	})
	if err := as.sim.LoadLevel(as.level); err != nil {
		as.logger.Error("load level", "level", as.level.Name, "err", err)
		return
	}
	as.spawn()
}

func (as *ArenaScene) spawn() {
	player, err := as.sim.SpawnPlayer("local")
	if err != nil {
		as.spawnErr = err
		as.status = "spawn failed, press R to restart: " + err.Error()
		as.logger.Error("spawn player", "err", err)
		return
	}
	as.player = player.Entity()
}

func (as *ArenaScene) Update() {
	as.handleKeys()
	if as.sim.Level() == nil {
		return
	}

	if as.spawnErr == nil && !as.sim.World().Valid(as.player) {
		// Killed: respawn on the next spawn point.
		as.spawn()
	}
	x, z := moveInput()
	as.sim.SetPlayerInput(as.player, x, z)
	as.sim.Step()
}

func (as *ArenaScene) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		as.sim.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		as.restart()
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		if err := systems.SaveTuning(as.sim.SavedTuning()); err != nil {
			as.status = "save failed: " + err.Error()
			as.logger.Warn("save tuning", "err", err)
		} else {
			as.status = "tuning saved"
		}
	}

	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3} {
		if inpututil.IsKeyJustPressed(key) {
			as.selected = i
		}
	}

	t := as.sim.Tuning(tunableTypes[as.selected])
	changed := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		t.ActivationRange--
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		t.ActivationRange++
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		t.AttackDuration -= 0.5
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		t.AttackDuration += 0.5
	case inpututil.IsKeyJustPressed(ebiten.Key9):
		t.HideDuration -= 0.5
	case inpututil.IsKeyJustPressed(ebiten.Key0):
		t.HideDuration += 0.5
	default:
		changed = false
	}
	if changed {
		as.sim.SetTuning(tunableTypes[as.selected], t)
	}
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	v := arenaView{Width: as.level.Width, Depth: as.level.Depth}
	for _, e := range as.sim.Enemies() {
		v.Enemies = append(v.Enemies, sim.NetEnemy(e))
	}
	for _, p := range as.sim.Players() {
		v.Players = append(v.Players, sim.NetPlayer(p))
	}
	for _, p := range as.sim.Projectiles() {
		v.Projectiles = append(v.Projectiles, sim.NetProjectile(p))
	}
	drawArena(screen, v)
	as.drawHUD(screen, v.Players)
}

func (as *ArenaScene) drawHUD(screen *ebiten.Image, players []netcomponents.NetPlayerData) {
	clock := as.sim.Clock()
	name := tunableTypes[as.selected]
	t := as.sim.Tuning(name)

	lines := fmt.Sprintf("%s  t=%.2fs  frame %d  enemies %d\n",
		as.level.Name, clock.Elapsed, clock.Frame, as.sim.Roster().Len())
	lines += fmt.Sprintf("[%s] range %.0f  attack %.1fs  hide %.1fs\n",
		name, t.ActivationRange, t.AttackDuration, t.HideDuration)
	lines += "1-3 type  [ ] range  -/= attack  9/0 hide  F5 save  P pause  R restart\n"
	if as.sim.Paused() {
		lines += "PAUSED\n"
	}
	if as.status != "" {
		lines += as.status + "\n"
	}
	for _, p := range players {
		lines += fmt.Sprintf("%s hp %d\n", p.Name, p.Health)
	}
	ebitenutil.DebugPrintAt(screen, lines, 8, 8)
}
