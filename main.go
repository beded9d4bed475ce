package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-clone/internal/config"
	"github.com/robalobadob/wordle/apps/go-clone/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-clone/internal/store"
	"github.com/robalobadob/wordle/apps/go-clone/internal/words"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// The game cannot start without answers: an empty or unreadable list is fatal.
	src, err := words.Load(context.Background(), cfg.Words)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	srv, err := httpserver.New(store.NewMemoryStore(), src, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build server")
	}
	log.Info().Str("port", cfg.Port).Msg("starting go-clone")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
