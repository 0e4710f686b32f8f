package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	cfg "github.com/automoto/ambush/config"
	"github.com/automoto/ambush/server/core"
	"github.com/automoto/ambush/shared/protocol"
	"github.com/automoto/ambush/systems"
	"github.com/charmbracelet/log"
)

func main() {
	port := flag.Uint("port", 7373, "Server port")
	tickRate := flag.Int("tickrate", cfg.Sim.TickRate, "Server tick rate (updates per second)")
	assetsDir := flag.String("assets", "assets", "Directory containing levels/*.tmx")
	levelName := flag.String("level", "", "Level to run (default: first by name)")
	version := flag.String("version", "", "Required client version (empty = accept any)")
	persist := flag.Bool("persist", false, "Load saved enemy tuning")
	debug := flag.Bool("debug", false, "Log enemy state changes")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	if err := protocol.RegisterComponents(); err != nil {
		log.Fatal("failed to register components", "err", err)
	}

	level, names, err := core.LoadServerLevel(*assetsDir, *levelName)
	if err != nil {
		log.Fatal("failed to load level", "err", err)
	}

	var saved systems.SavedTuning
	if *persist {
		if saved, err = systems.OpenTuning("ambush"); err != nil {
			log.Warn("could not load saved tuning, using type defaults", "err", err)
		}
	}

	server, err := core.NewServer(level, core.Options{
		TickRate: *tickRate,
		Version:  *version,
		Saved:    saved,
	})
	if err != nil {
		log.Fatal("failed to create server", "err", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down server")
		server.Stop()
		os.Exit(0)
	}()

	log.Info("starting ambush server",
		"port", *port, "tickrate", *tickRate, "level", level.Name, "levels", names, "version", *version)
	if err := server.Start(*port); err != nil {
		log.Fatal("server error", "err", err)
	}
}
