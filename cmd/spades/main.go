package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"spades-game/internal/config"
	"spades-game/internal/console"
	"spades-game/internal/database"
	"spades-game/internal/game"
	"spades-game/internal/server"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run plays one game and returns the process exit code.
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}

	restoreLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "log file: %v\n", err)
		return 1
	}
	defer restoreLog()
	log.Println("Starting Spades...")

	var store *database.Service
	if cfg.Database.DSN != "" {
		store, err = database.New(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			fmt.Fprintf(stderr, "database: %v\n", err)
			return 1
		}
		defer store.Close()
		log.Printf("Recording results in %s (%s).", store.TableName(), cfg.Database.Driver)
	}

	term := console.NewTerminal(stdin, stdout, cfg.Color, true)
	displays := game.MultiDisplay{term}

	if cfg.Spectator.Addr != "" {
		hub := server.NewHub()
		go hub.Run()
		defer hub.Stop()

		var results server.ResultStore
		if store != nil {
			results = store
		}
		srv := &http.Server{Addr: cfg.Spectator.Addr, Handler: server.NewMux(hub, results)}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("Spectator server stopped: %v", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
		log.Printf("Spectators can connect on %s/ws", cfg.Spectator.Addr)
		displays = append(displays, hub)
	}

	term.ShowInstructions()

	limit := cfg.ScoreLimit
	if cfg.PromptScoreLimit {
		raw, err := term.ReadLine(fmt.Sprintf("What score do you want to play to? [%d]  ", cfg.ScoreLimit))
		if err != nil {
			fmt.Fprintf(stderr, "reading score limit: %v\n", err)
			return 1
		}
		limit = config.ParseScoreLimit(raw, cfg.ScoreLimit)
	}
	term.Announce(fmt.Sprintf("Playing to %d. ", limit))
	if _, err := term.ReadLine("Press Enter to get start game. "); err != nil && !cfg.Autoplay {
		fmt.Fprintf(stderr, "waiting for start: %v\n", err)
		return 1
	}

	opts := game.Options{
		ScoreLimit: limit,
		Display:    displays,
		MaxRounds:  cfg.MaxRounds,
	}
	if cfg.Seed != 0 {
		opts.Shuffler = game.NewRand(cfg.Seed)
	}
	if cfg.PauseAfterTrick {
		opts.Pause = term
	}

	g := game.NewGame(game.NewTable(cfg.PlayerName, term, term, cfg.Autoplay), opts)
	res, err := g.Run()
	switch {
	case errors.Is(err, game.ErrRoundLimit):
		log.Printf("Game %s: %v", g.ID, err)
	case err != nil:
		log.Printf("Game %s: aborted: %v", g.ID, err)
		fmt.Fprintf(stderr, "game aborted: %v\n", err)
		return 1
	}

	if store != nil {
		if err := store.Insert(database.FromResult(*res)); err != nil {
			log.Printf("Game %s: %v", g.ID, err)
		}
	}

	term.Announce("GAME OVER")
	return 0
}

// setupLogging sends the standard logger to path, or discards it when path
// is empty. The returned func restores stderr.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}
