// Movie catalog endpoints.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/desertthunder/mvx/internal/models"
)

// MovieService wraps the movie catalog endpoints.
type MovieService struct {
	client *Client
}

// NewMovieService creates a movie service on the given client.
func NewMovieService(client *Client) *MovieService {
	return &MovieService{client: client}
}

// SearchParams narrows a catalog search. Zero values are omitted from the
// request so the backend applies its own defaults.
type SearchParams struct {
	Query         string
	MediaType     string
	Genre         string
	Year          string
	Region        string
	SortBy        string
	Page          int
	ExcludeMarked bool
}

func (p SearchParams) values() url.Values {
	q := url.Values{}
	if p.Query != "" {
		q.Set("query", p.Query)
	}
	if p.MediaType != "" {
		q.Set("mediaType", p.MediaType)
	}
	if p.Genre != "" {
		q.Set("genre", p.Genre)
	}
	if p.Year != "" {
		q.Set("year", p.Year)
	}
	if p.Region != "" {
		q.Set("region", p.Region)
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.ExcludeMarked {
		q.Set("excludeMarked", "true")
	}
	return q
}

// Search queries the catalog.
func (s *MovieService) Search(ctx context.Context, params SearchParams) (*models.Page[models.Movie], error) {
	var page models.Page[models.Movie]
	if err := s.client.Get(ctx, "/api/movies/search", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Popular returns the current popular titles.
func (s *MovieService) Popular(ctx context.Context, page int) (*models.Page[models.Movie], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var result models.Page[models.Movie]
	if err := s.client.Get(ctx, "/api/movies/popular", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Genres lists the catalog's genre taxonomy.
func (s *MovieService) Genres(ctx context.Context) ([]models.Genre, error) {
	var genres []models.Genre
	if err := s.client.Get(ctx, "/api/movies/genres", nil, &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

// Detail fetches one title with full metadata.
func (s *MovieService) Detail(ctx context.Context, movieID int) (*models.Movie, error) {
	var movie models.Movie
	if err := s.client.Get(ctx, fmt.Sprintf("/api/movies/%d", movieID), nil, &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}
