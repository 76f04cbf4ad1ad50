package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// GamesSearch queries the game catalog and prints matching games.
func (r *Runner) GamesSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	params := services.GameSearchParams{
		Search:    query,
		Genres:    cmd.String("genres"),
		Platforms: cmd.String("platforms"),
		Ordering:  cmd.String("ordering"),
		Page:      cmd.Int("page"),
	}

	page, err := r.games.Search(ctx, params)
	if err != nil {
		return fmt.Errorf("game search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, true)
	}

	r.writePlainln("Found %d games", page.Count)
	for _, game := range page.Results {
		r.writeGameLine(&game)
	}
	return nil
}

// GamesPopular prints the current popular games.
func (r *Runner) GamesPopular(ctx context.Context, cmd *cli.Command) error {
	page, err := r.games.Popular(ctx, cmd.Int("page"))
	if err != nil {
		return fmt.Errorf("failed to fetch popular games: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, true)
	}

	r.writePlainln("Popular games")
	for _, game := range page.Results {
		r.writeGameLine(&game)
	}
	return nil
}

// GamesDetail prints one game's full metadata.
func (r *Runner) GamesDetail(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	game, err := r.games.Detail(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch game %d: %w", id, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(game, true)
	}

	r.writePlainln("%s", game.Name)
	if game.Released != "" {
		r.writePlain("Released: %s\n", game.Released)
	}
	if len(game.Genres) > 0 {
		names := make([]string, 0, len(game.Genres))
		for _, genre := range game.Genres {
			names = append(names, genre.Name)
		}
		r.writePlain("Genres: %s\n", strings.Join(names, ", "))
	}
	if len(game.Platforms) > 0 {
		names := make([]string, 0, len(game.Platforms))
		for _, platform := range game.Platforms {
			names = append(names, platform.Platform.Name)
		}
		r.writePlain("Platforms: %s\n", strings.Join(names, ", "))
	}
	if len(game.Developers) > 0 {
		names := make([]string, 0, len(game.Developers))
		for _, dev := range game.Developers {
			names = append(names, dev.Name)
		}
		r.writePlain("Developers: %s\n", strings.Join(names, ", "))
	}
	if game.Rating > 0 {
		r.writePlain("Rating: %.2f (%d ratings)\n", game.Rating, game.RatingsCount)
	}
	if game.Metacritic > 0 {
		r.writePlain("Metacritic: %d\n", game.Metacritic)
	}
	if desc := game.DescriptionRaw; desc != "" {
		r.writePlain("\n%s\n", desc)
	}
	return nil
}

// GamesGenres prints the game genre taxonomy.
func (r *Runner) GamesGenres(ctx context.Context, cmd *cli.Command) error {
	genres, err := r.games.Genres(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch game genres: %w", err)
	}

	r.writePlainln("%d genres", len(genres))
	for _, genre := range genres {
		r.writePlain("%d\t%s\t%s\n", genre.ID, genre.Name, genre.Slug)
	}
	return nil
}

func (r *Runner) writeGameLine(game *models.Game) {
	line := fmt.Sprintf("%d\t%s", game.ID, game.Name)
	if game.Released != "" {
		line += fmt.Sprintf(" (%s)", game.Released)
	}
	if game.Rating > 0 {
		line += fmt.Sprintf("\t%.2f", game.Rating)
	}
	r.writePlain("%s\n", line)
}
