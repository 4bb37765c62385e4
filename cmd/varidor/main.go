package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/varidor/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "varidor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := session.LoadConfig()
	if err != nil {
		return err
	}
	size := flag.Int("size", cfg.Size, "board size, overrides "+session.ENV_SIZE)
	walls := flag.Int("walls", cfg.Walls, "walls per player, overrides "+session.ENV_WALLS)
	logPath := flag.String("log", "varidor.log", "log file")
	replay := flag.String("replay", "", "opening script to play before handing over")
	flag.Parse()
	cfg.Size, cfg.Walls = *size, *walls
	if err := cfg.Validate(); err != nil {
		return err
	}

	// the terminal belongs to tcell, logs go to a file
	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	log.SetOutput(f)
	log.SetLevel(cfg.LogLevel)

	gs, err := session.NewGameSession(cfg)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go gs.Loop(ctx)

	if *replay != "" {
		if err := replayFile(ctx, gs, *replay); err != nil {
			return err
		}
	}

	game, err := NewGame(ctx, gs)
	if err != nil {
		return err
	}
	defer game.cleanup()

	game.run()
	log.Info("Game closed")
	return nil
}

func replayFile(ctx context.Context, gs *session.GameSession, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	events, err := session.ParseScript(file)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return gs.Replay(ctx, events)
}
