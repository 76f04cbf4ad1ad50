package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/mvx/internal/filter"
	"github.com/desertthunder/mvx/internal/formatter"
	"github.com/desertthunder/mvx/internal/library"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// criteriaFromFlags assembles filter criteria from the shared criteria flags.
func criteriaFromFlags(cmd *cli.Command) filter.Criteria {
	criteria := filter.DefaultCriteria()
	if v := cmd.String("status"); v != "" {
		criteria.Status = v
	}
	if v := cmd.String("type"); v != "" {
		criteria.MediaType = v
	}
	if v := cmd.String("region"); v != "" {
		criteria.Region = v
	}
	if v := cmd.String("genre"); v != "" {
		criteria.Genre = v
	}
	if v := cmd.String("year"); v != "" {
		criteria.Year = v
	}
	if v := cmd.String("background"); v != "" {
		criteria.BackgroundTime = v
	}
	criteria.Keyword = cmd.String("keyword")
	if v := cmd.String("sort"); v != "" {
		criteria.SortBy = v
	}
	return criteria
}

// criteriaSummary renders the non-default criteria as "field=value" pairs for
// export metadata and headers.
func criteriaSummary(c filter.Criteria) string {
	if c.IsDefault() {
		return ""
	}

	var parts []string
	for _, pair := range []struct{ name, value string }{
		{"status", c.Status},
		{"type", c.MediaType},
		{"region", c.Region},
		{"genre", c.Genre},
		{"year", c.Year},
		{"background", c.BackgroundTime},
	} {
		if pair.value != filter.Any {
			parts = append(parts, fmt.Sprintf("%s=%s", pair.name, pair.value))
		}
	}
	if keyword := strings.TrimSpace(c.Keyword); keyword != "" {
		parts = append(parts, fmt.Sprintf("keyword=%s", keyword))
	}
	parts = append(parts, fmt.Sprintf("sort=%s", c.SortBy))

	return strings.Join(parts, ", ")
}

// loadLibrary builds a controller, loads the full library, and applies the
// criteria from the command's flags.
func (r *Runner) loadLibrary(ctx context.Context, cmd *cli.Command) (*library.Controller, error) {
	controller := library.NewController(library.ControllerOpts{
		Watch:    r.watch,
		Edits:    r.edits,
		Logger:   r.logger,
		PageSize: r.config.UI.PageSize,
	})

	if err := controller.Load(ctx); err != nil {
		return nil, err
	}

	controller.SetCriteria(criteriaFromFlags(cmd))
	return controller, nil
}

// LibraryView prints the filtered, paginated library.
func (r *Runner) LibraryView(ctx context.Context, cmd *cli.Command) error {
	controller, err := r.loadLibrary(ctx, cmd)
	if err != nil {
		return err
	}

	controller.SetPage(cmd.Int("page"))

	if cmd.Bool("json") {
		return r.writeJSON(controller.CurrentPage(), true)
	}

	stats := controller.Stats()
	r.writePlainln("Library: %d titles (%d watched, %d want to watch), %d matching",
		stats.Total, stats.Watched, stats.WantToWatch, stats.Filtered)

	if summary := criteriaSummary(controller.Criteria()); summary != "" {
		r.writePlain("Filters: %s\n", summary)
	}

	records := controller.CurrentPage()
	if len(records) == 0 {
		return r.writePlainln("No titles on this page")
	}

	r.writePlain("Page %d of %d\n\n", controller.Page(), controller.TotalPages())
	for _, record := range records {
		r.writeLibraryLine(controller, &record)
	}
	return nil
}

// LibraryExport writes the filtered library to disk in the chosen format.
func (r *Runner) LibraryExport(ctx context.Context, cmd *cli.Command) error {
	controller, err := r.loadLibrary(ctx, cmd)
	if err != nil {
		return err
	}

	records := controller.Filtered()
	edits := make(map[int]models.TagEdit, len(records))
	for _, record := range records {
		if edit := controller.EditFor(record.MovieID); edit != nil {
			edits[record.MovieID] = *edit
		}
	}

	export := &formatter.LibraryExport{
		Name:     cmd.String("name"),
		Criteria: criteriaSummary(controller.Criteria()),
		Records:  records,
		Edits:    edits,
	}

	output := cmd.String("output")
	format := cmd.String("format")

	switch format {
	case "csv":
		result, err := formatter.WriteCSVExport(export, output)
		if err != nil {
			return fmt.Errorf("csv export failed: %w", err)
		}
		r.logger.Info("library exported", "format", format, "records", len(records))
		return r.writePlainln("Exported %d titles to %s (metadata in %s)",
			len(records), result.TitlesFile, result.MetadataFile)
	case "markdown":
		file, err := formatter.WriteMarkdownExport(export, output)
		if err != nil {
			return fmt.Errorf("markdown export failed: %w", err)
		}
		r.logger.Info("library exported", "format", format, "records", len(records))
		return r.writePlainln("Exported %d titles to %s", len(records), file)
	case "text":
		file, err := formatter.WriteTextExport(export, output)
		if err != nil {
			return fmt.Errorf("text export failed: %w", err)
		}
		r.logger.Info("library exported", "format", format, "records", len(records))
		return r.writePlainln("Exported %d titles to %s", len(records), file)
	default:
		return fmt.Errorf("%w: format must be csv, markdown, or text", shared.ErrInvalidFlag)
	}
}

func (r *Runner) writeLibraryLine(controller *library.Controller, record *models.WatchRecord) {
	line := fmt.Sprintf("%d\t%s\t%s", record.MovieID, record.Status, record.MovieTitle)
	if year := record.Year(); year != "" {
		line += fmt.Sprintf(" (%s)", year)
	}

	if edit := controller.EditFor(record.MovieID); edit != nil {
		var tagParts []string
		if edit.CustomBackgroundTime != "" {
			tagParts = append(tagParts, edit.CustomBackgroundTime)
		}
		if edit.CustomGenre != "" {
			tagParts = append(tagParts, edit.CustomGenre)
		}
		if len(tagParts) > 0 {
			line += fmt.Sprintf("\t[%s]", strings.Join(tagParts, " / "))
		}
	}

	r.writePlain("%s\n", line)
}
