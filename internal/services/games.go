// Game catalog endpoints, proxied by the backend.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/desertthunder/mvx/internal/models"
)

// GameService wraps the game catalog endpoints.
type GameService struct {
	client *Client
}

// NewGameService creates a game service on the given client.
func NewGameService(client *Client) *GameService {
	return &GameService{client: client}
}

// GameSearchParams narrows a game search. Zero values are omitted.
type GameSearchParams struct {
	Search     string
	Genres     string
	Platforms  string
	Ordering   string
	Dates      string
	Metacritic string
	Page       int
	PageSize   int
}

func (p GameSearchParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Genres != "" {
		q.Set("genres", p.Genres)
	}
	if p.Platforms != "" {
		q.Set("platforms", p.Platforms)
	}
	if p.Ordering != "" {
		q.Set("ordering", p.Ordering)
	}
	if p.Dates != "" {
		q.Set("dates", p.Dates)
	}
	if p.Metacritic != "" {
		q.Set("metacritic", p.Metacritic)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PageSize > 0 {
		q.Set("page_size", strconv.Itoa(p.PageSize))
	}
	return q
}

// Search queries the game catalog.
func (s *GameService) Search(ctx context.Context, params GameSearchParams) (*models.GamePage[models.Game], error) {
	var page models.GamePage[models.Game]
	if err := s.client.Get(ctx, "/api/games/search", params.values(), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Popular returns the current popular games.
func (s *GameService) Popular(ctx context.Context, page int) (*models.GamePage[models.Game], error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	var result models.GamePage[models.Game]
	if err := s.client.Get(ctx, "/api/games/popular", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Genres lists the game genre taxonomy.
func (s *GameService) Genres(ctx context.Context) ([]models.GameGenre, error) {
	var result struct {
		Results []models.GameGenre `json:"results"`
	}
	if err := s.client.Get(ctx, "/api/games/genres", nil, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// Detail fetches one game with full metadata.
func (s *GameService) Detail(ctx context.Context, gameID int) (*models.Game, error) {
	var game models.Game
	if err := s.client.Get(ctx, fmt.Sprintf("/api/games/%d", gameID), nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}
