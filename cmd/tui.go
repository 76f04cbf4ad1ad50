package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/mvx/internal/library"
	"github.com/desertthunder/mvx/internal/repositories"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/tags"
	"github.com/desertthunder/mvx/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive library view. Logs are redirected to a file
// so they don't corrupt the alternate screen.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	fileLogger, err := shared.NewFileLogger("./tmp/mvx-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}
	r.SetLogger(fileLogger)

	controller := library.NewController(library.ControllerOpts{
		Watch:    r.watch,
		Edits:    r.edits,
		Logger:   r.logger,
		PageSize: r.config.UI.PageSize,
	})

	// The palette and prefs live in the local store; the TUI still works
	// without it.
	autoFilter := r.config.UI.AutoFilter
	var palettes *repositories.PaletteRepository
	if db, err := r.openDB(); err != nil {
		r.logger.Warn("palette unavailable", "error", err)
	} else {
		defer db.Close()
		palettes = repositories.NewPaletteRepository(db)
		if err := palettes.Seed(); err != nil {
			r.logger.Warn("failed to seed palette", "error", err)
		}
		if value, err := repositories.NewPrefRepository(db).GetBool(repositories.PrefAutoFilter, autoFilter); err == nil {
			autoFilter = value
		}
	}

	model := ui.NewModel(ctx, ui.ModelOpts{
		Controller: controller,
		Editor:     tags.NewEditor(r.edits, r.logger),
		Watch:      r.watch,
		Palette:    palettes,
		Logger:     r.logger,
		AutoFilter: autoFilter,
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
