package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// WatchList prints a page of watch records, optionally filtered by status.
func (r *Runner) WatchList(ctx context.Context, cmd *cli.Command) error {
	records, err := r.watch.List(ctx, cmd.String("status"), cmd.Int("page"), cmd.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list watch records: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, true)
	}

	r.writePlainln("%d watch records", len(records))
	for _, record := range records {
		line := fmt.Sprintf("%d\t%s\t%s", record.MovieID, record.Status, record.MovieTitle)
		if year := record.Year(); year != "" {
			line += fmt.Sprintf(" (%s)", year)
		}
		if record.Rating > 0 {
			line += fmt.Sprintf("\t%.1f", record.Rating)
		}
		r.writePlain("%s\n", line)
	}
	return nil
}

// WatchSet creates or updates a watch record for a title. The record is
// enriched from the catalog first: the backend upsert overwrites every
// metadata column, and records posted without genres, countries, or dates
// would never match those filters.
func (r *Runner) WatchSet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Int("id")

	movie, err := r.movies.Detail(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog metadata for title %d: %w", id, err)
	}

	record := movie.WatchRecord(cmd.String("status"))
	record.Notes = cmd.String("notes")
	if title := cmd.String("title"); title != "" {
		record.MovieTitle = title
	}

	if raw := cmd.String("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: rating must be a number", shared.ErrInvalidFlag)
		}
		record.Rating = rating
	}

	resp, err := r.watch.Set(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to set watch status: %w", err)
	}

	r.logger.Info("watch status set", "movie_id", record.MovieID, "status", record.Status)
	return r.writePlainln("%s", resp.Message)
}

// WatchRemove deletes a title's watch record.
func (r *Runner) WatchRemove(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	if err := r.watch.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove watch record %d: %w", id, err)
	}

	r.logger.Info("watch record removed", "movie_id", id)
	return r.writePlainln("Removed watch record for title %d", id)
}

// WatchFix re-resolves one title's metadata and prints the changed fields.
func (r *Runner) WatchFix(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	result, err := r.watch.FixMetadata(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fix metadata for title %d: %w", id, err)
	}

	r.writePlainln("%s", result.Message)
	if result.MovieTitle != "" {
		r.writePlain("Title: %s (%s)\n", result.MovieTitle, result.MediaType)
	}
	r.writePlain("%d fields changed\n", result.ChangesCount)
	for field, value := range result.Changes {
		r.writePlain("  %s: %v\n", field, value)
	}
	return nil
}
