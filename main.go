package main

import (
	"flag"
	"image"
	"os"

	"github.com/automoto/ambush/assets"
	"github.com/automoto/ambush/config"
	"github.com/automoto/ambush/network"
	"github.com/automoto/ambush/scenes"
	"github.com/automoto/ambush/shared/leveldata"
	"github.com/automoto/ambush/shared/protocol"
	"github.com/automoto/ambush/systems"
	"github.com/charmbracelet/log"
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

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.Viewer.Width, config.Viewer.Height)
	return config.Viewer.Width, config.Viewer.Height
}

func pickLevel(levels map[string]*leveldata.Level, names []string, name string) *leveldata.Level {
	if l, ok := levels[name]; ok {
		return l
	}
	if name != "" {
		log.Warn("unknown level, using first", "level", name, "first", names[0])
	}
	return levels[names[0]]
}

func main() {
	connect := flag.String("connect", "", "server address (host:port or ws://host:port); runs locally when empty")
	levelName := flag.String("level", "", "level name")
	playerName := flag.String("name", "", "player name sent to the server")
	version := flag.String("version", "dev", "protocol version sent to the server")
	persist := flag.Bool("persist", true, "load and save enemy tuning")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatal("failed to register network components", "err", err)
	}

	levels, names, err := assets.LoadLevels()
	if err != nil {
		log.Fatal("failed to load levels", "err", err)
	}
	level := pickLevel(levels, names, *levelName)

	var saved systems.SavedTuning
	if *persist {
		if saved, err = systems.OpenTuning("ambush"); err != nil {
			log.Warn("could not load saved tuning, using type defaults", "err", err)
		}
	}

	ebiten.SetWindowSize(config.Viewer.Width, config.Viewer.Height)
	ebiten.SetWindowTitle("ambush")

	g := &Game{}
	if *connect != "" {
		client := network.NewClient()
		client.Connect(*connect, *version, *playerName)
		defer client.Disconnect()
		g.scene = scenes.NewNetworkedScene(g, client, level)
	} else {
		g.scene = scenes.NewArenaScene(g, level, saved)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
