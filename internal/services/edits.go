// Tag edit endpoints.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// TagEditService wraps the per-user tag edit endpoints. It satisfies
// tags.Persister so the editor can save through it directly.
type TagEditService struct {
	client *Client
}

// NewTagEditService creates a tag edit service on the given client.
func NewTagEditService(client *Client) *TagEditService {
	return &TagEditService{client: client}
}

// Get fetches the tag edit for one title. Returns nil without error when the
// title has no edit record.
func (s *TagEditService) Get(ctx context.Context, movieID int) (*models.TagEdit, error) {
	var edit *models.TagEdit
	if err := s.client.Get(ctx, fmt.Sprintf("/api/movie-edits/%d", movieID), nil, &edit); err != nil {
		return nil, err
	}
	return edit, nil
}

// List fetches a page of tag edits.
func (s *TagEditService) List(ctx context.Context, page, limit int) ([]models.TagEdit, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var edits []models.TagEdit
	if err := s.client.Get(ctx, "/api/movie-edits", q, &edits); err != nil {
		return nil, err
	}
	return edits, nil
}

// UpsertEdit creates or replaces the tag edit for a title. The backend
// treats create as an upsert keyed on movie id.
func (s *TagEditService) UpsertEdit(ctx context.Context, edit models.TagEdit) (*models.TagEdit, error) {
	if edit.MovieID == 0 {
		return nil, fmt.Errorf("%w: movie id is required", shared.ErrMissingArgument)
	}

	var resp ActionResponse
	if err := s.client.Post(ctx, "/api/movie-edits", edit, &resp); err != nil {
		return nil, err
	}

	edit.ID = resp.ID
	return &edit, nil
}

// Delete removes the tag edit for a title.
func (s *TagEditService) Delete(ctx context.Context, movieID int) error {
	var resp ActionResponse
	return s.client.Delete(ctx, fmt.Sprintf("/api/movie-edits/%d", movieID), &resp)
}
