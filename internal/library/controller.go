// package library assembles the user's tracked titles into a filterable,
// paginated view.
//
// The controller fetches everything up front (watch records plus tag edits)
// and serves filtering, sorting, and pagination from memory. Mutations go
// through the backend and are followed by a full reload so the local view
// never drifts from the server.
package library

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/filter"
	"github.com/desertthunder/mvx/internal/models"
)

// fetchLimit caps each list fetch. The backend pages at this size; a library
// larger than this per status is out of scope for a single user.
const fetchLimit = 1000

// DefaultPageSize is the view's page length.
const DefaultPageSize = 50

// WatchLister fetches watch records, satisfied by services.WatchService.
type WatchLister interface {
	List(ctx context.Context, status string, page, limit int) ([]models.WatchRecord, error)
}

// EditLister fetches tag edits, satisfied by services.TagEditService.
type EditLister interface {
	List(ctx context.Context, page, limit int) ([]models.TagEdit, error)
}

// Stats summarizes the loaded library.
type Stats struct {
	Total       int
	Watched     int
	WantToWatch int
	Filtered    int
}

// Controller holds the loaded library and the current view state. It is not
// safe for concurrent use; the TUI drives it from its update loop and the
// CLI from a single goroutine.
type Controller struct {
	watch    WatchLister
	edits    EditLister
	logger   *log.Logger
	pageSize int

	records  []models.WatchRecord
	editList []models.TagEdit
	editIdx  map[int]models.TagEdit
	criteria filter.Criteria
	filtered []models.WatchRecord
	page     int
}

// ControllerOpts configures a [Controller].
type ControllerOpts struct {
	Watch    WatchLister
	Edits    EditLister
	Logger   *log.Logger
	PageSize int
}

// NewController creates a controller with default criteria and an empty view.
func NewController(opts ControllerOpts) *Controller {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Controller{
		watch:    opts.Watch,
		edits:    opts.Edits,
		logger:   opts.Logger,
		pageSize: pageSize,
		editIdx:  map[int]models.TagEdit{},
		criteria: filter.DefaultCriteria(),
		page:     1,
	}
}

// Load fetches watched records, want-to-watch records, and tag edits in
// parallel, then rebuilds the filtered view. The current criteria survive a
// reload; the page resets to 1.
func (c *Controller) Load(ctx context.Context) error {
	var (
		wg          sync.WaitGroup
		watched     []models.WatchRecord
		wantToWatch []models.WatchRecord
		edits       []models.TagEdit
		errs        = make([]error, 3)
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		watched, errs[0] = c.watch.List(ctx, models.StatusWatched, 1, fetchLimit)
	}()
	go func() {
		defer wg.Done()
		wantToWatch, errs[1] = c.watch.List(ctx, models.StatusWantToWatch, 1, fetchLimit)
	}()
	go func() {
		defer wg.Done()
		edits, errs[2] = c.edits.List(ctx, 1, fetchLimit)
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return fmt.Errorf("failed to load library: %w", err)
		}
	}

	c.records = append(append([]models.WatchRecord{}, watched...), wantToWatch...)
	c.editList = edits
	c.editIdx = filter.IndexEdits(edits)
	c.page = 1
	c.refilter()

	c.logger.Debug("library loaded",
		"watched", len(watched), "want_to_watch", len(wantToWatch), "edits", len(edits))
	return nil
}

// SetCriteria replaces the filter criteria, rebuilds the view, and resets to
// the first page.
func (c *Controller) SetCriteria(criteria filter.Criteria) {
	c.criteria = criteria
	c.page = 1
	c.refilter()
}

// Criteria returns the active filter criteria.
func (c *Controller) Criteria() filter.Criteria {
	return c.criteria
}

// ApplyEdit folds an updated tag edit into the local view without a reload,
// mirroring the optimistic update the editor already showed the user. The
// view is refiltered since a background time change can move a record in or
// out of the current criteria.
func (c *Controller) ApplyEdit(edit models.TagEdit) {
	c.editIdx[edit.MovieID] = edit

	replaced := false
	for i, e := range c.editList {
		if e.MovieID == edit.MovieID {
			c.editList[i] = edit
			replaced = true
			break
		}
	}
	if !replaced {
		c.editList = append(c.editList, edit)
	}

	c.refilter()
}

// EditFor returns the tag edit for a title, or nil when it has none.
func (c *Controller) EditFor(movieID int) *models.TagEdit {
	if edit, ok := c.editIdx[movieID]; ok {
		return &edit
	}
	return nil
}

// Filtered returns the records matching the active criteria, sorted.
func (c *Controller) Filtered() []models.WatchRecord {
	return c.filtered
}

// CurrentPage returns the records on the active page.
func (c *Controller) CurrentPage() []models.WatchRecord {
	start := (c.page - 1) * c.pageSize
	if start >= len(c.filtered) {
		return nil
	}

	end := start + c.pageSize
	if end > len(c.filtered) {
		end = len(c.filtered)
	}
	return c.filtered[start:end]
}

// Page returns the active page number, 1-based.
func (c *Controller) Page() int {
	return c.page
}

// TotalPages returns the page count for the filtered view.
func (c *Controller) TotalPages() int {
	if len(c.filtered) == 0 {
		return 0
	}
	return (len(c.filtered) + c.pageSize - 1) / c.pageSize
}

// SetPage jumps to a page, clamping into the valid range.
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	if total := c.TotalPages(); total > 0 && page > total {
		page = total
	}
	c.page = page
}

// NextPage advances one page if one exists.
func (c *Controller) NextPage() {
	c.SetPage(c.page + 1)
}

// PrevPage goes back one page if one exists.
func (c *Controller) PrevPage() {
	c.SetPage(c.page - 1)
}

// BackgroundTimeOptions returns the distinct background time values across
// the loaded tag edits.
func (c *Controller) BackgroundTimeOptions() []string {
	return filter.BackgroundTimeOptions(c.editList)
}

// Stats summarizes the loaded library and the current view.
func (c *Controller) Stats() Stats {
	stats := Stats{Total: len(c.records), Filtered: len(c.filtered)}
	for _, r := range c.records {
		switch r.Status {
		case models.StatusWatched:
			stats.Watched++
		case models.StatusWantToWatch:
			stats.WantToWatch++
		}
	}
	return stats
}

func (c *Controller) refilter() {
	c.filtered = filter.Apply(c.records, c.editIdx, c.criteria)
	if total := c.TotalPages(); total > 0 && c.page > total {
		c.page = total
	}
}
