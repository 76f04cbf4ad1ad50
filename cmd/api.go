package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// APIGet performs a direct GET against the backend and prints the response.
func (r *Runner) APIGet(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}

	resp, err := r.api.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	r.logger.Debug("api response", "path", path, "status", resp.StatusCode)

	if resp.IsJSON && cmd.Bool("json") {
		return r.writeJSON(resp.JSONData, true)
	}
	return r.writePlain("%s\n", resp.Body)
}

// APIPost performs a direct POST with a JSON body and prints the response.
func (r *Runner) APIPost(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path", shared.ErrMissingArgument)
	}

	resp, err := r.api.Post(ctx, path, []byte(cmd.String("data")))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	r.logger.Debug("api response", "path", path, "status", resp.StatusCode)

	if resp.IsJSON {
		return r.writeJSON(resp.JSONData, true)
	}
	return r.writePlain("%s\n", resp.Body)
}

// APIDump fetches the signed-in user's watch records and tag edits in one
// snapshot, printed or saved for debugging and backup.
func (r *Runner) APIDump(ctx context.Context, cmd *cli.Command) error {
	records, err := r.watch.List(ctx, "", 1, 1000)
	if err != nil {
		return fmt.Errorf("failed to fetch watch records: %w", err)
	}

	edits, err := r.edits.List(ctx, 1, 1000)
	if err != nil {
		return fmt.Errorf("failed to fetch tag edits: %w", err)
	}

	dump := map[string]any{
		"exported_at":   time.Now().Format(time.RFC3339),
		"watch_records": records,
		"tag_edits":     edits,
	}

	if cmd.Bool("save") {
		data, err := shared.MarshalJSON(dump, true)
		if err != nil {
			return fmt.Errorf("failed to marshal dump: %w", err)
		}
		if err := os.WriteFile("api_dump.json", data, 0644); err != nil {
			return fmt.Errorf("failed to write dump: %w", err)
		}
		r.logger.Info("dump saved", "records", len(records), "edits", len(edits))
		return r.writePlainln("Saved %d records and %d edits to api_dump.json", len(records), len(edits))
	}

	return r.writeJSON(dump, cmd.Bool("pretty"))
}
