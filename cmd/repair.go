package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mvx/internal/services"
	"github.com/urfave/cli/v3"
)

// RepairCountries backfills production countries across all watch records.
func (r *Runner) RepairCountries(ctx context.Context, cmd *cli.Command) error {
	return r.runRepair(ctx, cmd, "production countries", r.watch.RepairCountries)
}

// RepairOverview backfills overviews across all watch records.
func (r *Runner) RepairOverview(ctx context.Context, cmd *cli.Command) error {
	return r.runRepair(ctx, cmd, "overviews", r.watch.RepairOverview)
}

// RepairDirector backfills directors across all watch records.
func (r *Runner) RepairDirector(ctx context.Context, cmd *cli.Command) error {
	return r.runRepair(ctx, cmd, "directors", r.watch.RepairDirector)
}

// RepairCast backfills cast lists across all watch records.
func (r *Runner) RepairCast(ctx context.Context, cmd *cli.Command) error {
	return r.runRepair(ctx, cmd, "cast lists", r.watch.RepairCast)
}

// runRepair confirms, runs one bulk backfill, and prints the counts. Repairs
// touch every record the signed-in user has, so they never run unprompted.
func (r *Runner) runRepair(ctx context.Context, cmd *cli.Command, label string, fn func(context.Context) (*services.RepairResult, error)) error {
	if !cmd.Bool("yes") {
		if !r.confirm(fmt.Sprintf("Backfill %s across all your records?", label)) {
			return r.writePlainln("Aborted")
		}
	}

	r.logger.Info("running repair", "target", label)
	result, err := fn(ctx)
	if err != nil {
		return fmt.Errorf("repair failed: %w", err)
	}

	r.writePlainln("%s", result.Message)
	return r.writePlain("Processed %d records: %d updated, %d failed\n",
		result.TotalProcessed, result.UpdatedCount, result.FailedCount)
}
