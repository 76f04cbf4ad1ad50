package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/mvx/internal/formatter"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
	"github.com/urfave/cli/v3"
)

// parseIDArg reads a positional id argument as an integer.
func parseIDArg(cmd *cli.Command, name string) (int, error) {
	raw := cmd.StringArg(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", shared.ErrMissingArgument, name)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number", shared.ErrInvalidArgument, name)
	}
	return id, nil
}

// MoviesSearch queries the catalog and prints matching titles.
func (r *Runner) MoviesSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	if query == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}

	params := services.SearchParams{
		Query:         query,
		MediaType:     cmd.String("type"),
		Genre:         cmd.String("genre"),
		Year:          cmd.String("year"),
		Region:        cmd.String("region"),
		SortBy:        cmd.String("sort"),
		Page:          cmd.Int("page"),
		ExcludeMarked: cmd.Bool("exclude-marked"),
	}

	page, err := r.movies.Search(ctx, params)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, cmd.Bool("pretty"))
	}

	r.writePlainln("Found %d titles (page %d of %d)", page.TotalResults, page.Page, page.TotalPages)
	for _, movie := range page.Results {
		r.writeMovieLine(&movie)
	}
	return nil
}

// MoviesPopular prints the current popular titles.
func (r *Runner) MoviesPopular(ctx context.Context, cmd *cli.Command) error {
	page, err := r.movies.Popular(ctx, cmd.Int("page"))
	if err != nil {
		return fmt.Errorf("failed to fetch popular titles: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(page, true)
	}

	r.writePlainln("Popular titles (page %d of %d)", page.Page, page.TotalPages)
	for _, movie := range page.Results {
		r.writeMovieLine(&movie)
	}
	return nil
}

// MoviesDetail prints one title's full metadata.
func (r *Runner) MoviesDetail(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	movie, err := r.movies.Detail(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch title %d: %w", id, err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(movie, true)
	}

	r.writePlainln("%s (%s)", movie.DisplayTitle(), movie.Year())
	if movie.Genres.Joined() != "" {
		r.writePlain("Genres: %s\n", movie.Genres.Joined())
	}
	if len(movie.ProductionCountries) > 0 {
		names := make([]string, 0, len(movie.ProductionCountries))
		for _, c := range movie.ProductionCountries {
			names = append(names, c.Name)
		}
		r.writePlain("Countries: %s\n", strings.Join(names, ", "))
	}
	if movie.Director != "" {
		r.writePlain("Director: %s\n", movie.Director)
	}
	if movie.Cast != "" {
		r.writePlain("Cast: %s\n", movie.Cast)
	}
	if movie.VoteAverage > 0 {
		r.writePlain("Rating: %.1f (%d votes)\n", movie.VoteAverage, movie.VoteCount)
	}
	if movie.Overview != "" {
		r.writePlain("\n%s\n", movie.Overview)
	}
	return nil
}

// MoviesGenres prints the catalog's genre taxonomy.
func (r *Runner) MoviesGenres(ctx context.Context, cmd *cli.Command) error {
	genres, err := r.movies.Genres(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch genres: %w", err)
	}

	r.writePlainln("%d genres", len(genres))
	for _, genre := range genres {
		r.writePlain("%d\t%s\n", genre.ID, genre.Name)
	}
	return nil
}

// MoviesOpen opens a title's TMDB page in the default browser.
func (r *Runner) MoviesOpen(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	mediaType := cmd.String("type")
	if mediaType != "movie" && mediaType != "tv" {
		return fmt.Errorf("%w: type must be movie or tv", shared.ErrInvalidFlag)
	}

	pageURL := fmt.Sprintf("%s/%s/%d", r.config.API.TMDBTitleURL, mediaType, id)
	if err := shared.OpenBrowser(pageURL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return r.writePlainln("Opened %s", pageURL)
}

// MoviesPoster downloads a title's poster image to disk.
func (r *Runner) MoviesPoster(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	movie, err := r.movies.Detail(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch title %d: %w", id, err)
	}

	if movie.PosterPath == "" {
		return fmt.Errorf("%w: title %d has no poster", shared.ErrNotFound, id)
	}

	data, err := formatter.DownloadImage(r.config.API.TMDBImageURL + movie.PosterPath)
	if err != nil {
		return fmt.Errorf("failed to download poster: %w", err)
	}

	output := cmd.String("output")
	if output == "" {
		output = fmt.Sprintf("poster_%d.jpg", id)
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write poster: %w", err)
	}

	r.logger.Info("poster saved", "title", movie.DisplayTitle(), "path", output)
	return r.writePlainln("Saved poster for %s to %s", movie.DisplayTitle(), output)
}

func (r *Runner) writeMovieLine(movie *models.Movie) {
	line := fmt.Sprintf("%d\t%s", movie.ID, movie.DisplayTitle())
	if year := movie.Year(); year != "" {
		line += fmt.Sprintf(" (%s)", year)
	}
	if movie.VoteAverage > 0 {
		line += fmt.Sprintf("\t%.1f", movie.VoteAverage)
	}
	r.writePlain("%s\n", line)
}
