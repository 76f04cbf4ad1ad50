package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/desertthunder/mvx/internal/repositories"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase creates the local SQLite store, runs migrations, and seeds
// the default tag palette.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if _, err := os.Stat(configPath); err == nil {
		config, err := shared.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		r.config = config
	}

	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repositories.NewPaletteRepository(db).Seed(); err != nil {
		return fmt.Errorf("failed to seed tag palette: %w", err)
	}

	r.logger.Info("database initialized", "path", r.config.Database.Path)
	return r.writePlainln("Database ready at %s", r.config.Database.Path)
}

// SetupPrefs shows the stored UI preferences, setting them first when the
// flags are given. Stored preferences override the config file defaults.
func (r *Runner) SetupPrefs(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	prefs := repositories.NewPrefRepository(db)

	for flag, key := range map[string]string{
		"auto-filter": repositories.PrefAutoFilter,
		"auto-search": repositories.PrefAutoSearch,
	} {
		raw := cmd.String(flag)
		if raw == "" {
			continue
		}

		value, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: --%s must be true or false", shared.ErrInvalidFlag, flag)
		}
		if err := prefs.SetBool(key, value); err != nil {
			return fmt.Errorf("failed to store preference: %w", err)
		}
	}

	autoFilter, err := prefs.GetBool(repositories.PrefAutoFilter, r.config.UI.AutoFilter)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}
	autoSearch, err := prefs.GetBool(repositories.PrefAutoSearch, r.config.UI.AutoSearch)
	if err != nil {
		return fmt.Errorf("failed to read preferences: %w", err)
	}

	r.writePlainln("auto_filter: %t", autoFilter)
	return r.writePlain("auto_search: %t\n", autoSearch)
}

// SetupConfig writes a starter config.toml.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	r.logger.Info("config created", "path", path)
	return r.writePlainln("Wrote starter config to %s", path)
}
