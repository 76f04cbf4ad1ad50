// Watch status endpoints, including the bulk metadata repairs.
package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// WatchService wraps the per-user watch status endpoints.
type WatchService struct {
	client *Client
}

// NewWatchService creates a watch service on the given client.
func NewWatchService(client *Client) *WatchService {
	return &WatchService{client: client}
}

// Get fetches the watch record for one title. Returns nil without error when
// the title has no record; the backend answers those with a JSON null.
func (s *WatchService) Get(ctx context.Context, movieID int) (*models.WatchRecord, error) {
	var record *models.WatchRecord
	if err := s.client.Get(ctx, fmt.Sprintf("/api/watch-status/%d", movieID), nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// List fetches a page of watch records, optionally filtered by status.
func (s *WatchService) List(ctx context.Context, status string, page, limit int) ([]models.WatchRecord, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var records []models.WatchRecord
	if err := s.client.Get(ctx, "/api/watch-status", q, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Set creates or updates a watch record. The backend upserts on movie id.
func (s *WatchService) Set(ctx context.Context, record models.WatchRecord) (*ActionResponse, error) {
	if record.MovieID == 0 {
		return nil, fmt.Errorf("%w: movie id is required", shared.ErrMissingArgument)
	}
	if record.Status != models.StatusWatched && record.Status != models.StatusWantToWatch {
		return nil, fmt.Errorf("%w: status must be %s or %s",
			shared.ErrInvalidArgument, models.StatusWatched, models.StatusWantToWatch)
	}

	var resp ActionResponse
	if err := s.client.Post(ctx, "/api/watch-status", record, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Remove deletes the watch record for a title.
func (s *WatchService) Remove(ctx context.Context, movieID int) error {
	var resp ActionResponse
	return s.client.Delete(ctx, fmt.Sprintf("/api/watch-status/%d", movieID), &resp)
}

// RepairCountries backfills production countries across all records missing them.
func (s *WatchService) RepairCountries(ctx context.Context) (*RepairResult, error) {
	return s.repair(ctx, "/api/watch-status/update-production-countries")
}

// RepairOverview backfills overviews across all records missing them.
func (s *WatchService) RepairOverview(ctx context.Context) (*RepairResult, error) {
	return s.repair(ctx, "/api/watch-status/update-overview")
}

// RepairDirector backfills directors across all records missing them.
func (s *WatchService) RepairDirector(ctx context.Context) (*RepairResult, error) {
	return s.repair(ctx, "/api/watch-status/update-director")
}

// RepairCast backfills cast lists across all records missing them.
func (s *WatchService) RepairCast(ctx context.Context) (*RepairResult, error) {
	return s.repair(ctx, "/api/watch-status/update-cast")
}

func (s *WatchService) repair(ctx context.Context, path string) (*RepairResult, error) {
	var result RepairResult
	if err := s.client.Post(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FixMetadata re-resolves one title's metadata against the catalog and
// reports what changed.
func (s *WatchService) FixMetadata(ctx context.Context, movieID int) (*FixResult, error) {
	var result FixResult
	path := fmt.Sprintf("/api/watch-status/%d/fix-metadata", movieID)
	if err := s.client.Post(ctx, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
