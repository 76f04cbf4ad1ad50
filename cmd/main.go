package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	sessions, err := shared.NewSessionStore(config.Session.Path)
	if err != nil {
		logger.Fatalf("failed to resolve session path: %v", err)
	}

	token := ""
	if session, err := sessions.Load(); err == nil {
		token = session.Token
	}

	client := services.NewClient(services.ClientOpts{
		BaseURL:    config.API.BaseURL,
		Token:      token,
		RatePerSec: config.API.RatePerSec,
		RateBurst:  config.API.RateBurst,
		OnUnauthorized: func() {
			if err := sessions.Clear(); err != nil {
				logger.Warn("failed to clear stale session", "error", err)
			}
		},
	}, logger)

	// Login and register go out without the session token attached.
	authClient := services.NewClient(services.ClientOpts{
		BaseURL:    config.API.BaseURL,
		RatePerSec: config.API.RatePerSec,
		RateBurst:  config.API.RateBurst,
	}, logger)

	runner := NewRunner(RunnerOpts{
		Config:   config,
		Sessions: sessions,
		Account:  services.NewAccountService(authClient),
		Movies:   services.NewMovieService(client),
		Games:    services.NewGameService(client),
		Watch:    services.NewWatchService(client),
		Edits:    services.NewTagEditService(client),
		API:      services.NewAPIService(client),
		Logger:   logger,
	})

	app := &cli.Command{
		Name:     "mvx",
		Usage:    "Track movies, TV shows, and games from the terminal",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
