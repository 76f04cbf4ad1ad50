package tags

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// DropPayload is the wire form of a tag being dropped onto a title.
type DropPayload struct {
	CategoryID string `json:"categoryId"`
	Tag        string `json:"tag"`
}

// DecodeDropPayload parses and validates a drop payload. Malformed JSON,
// missing fields, and unknown categories are all rejected before any edit
// state is touched.
func DecodeDropPayload(data []byte) (DropPayload, error) {
	var payload DropPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return DropPayload{}, fmt.Errorf("%w: %v", shared.ErrInvalidDropData, err)
	}

	payload.Tag = strings.TrimSpace(payload.Tag)
	if payload.CategoryID == "" || payload.Tag == "" {
		return DropPayload{}, fmt.Errorf("%w: missing category or tag", shared.ErrInvalidDropData)
	}

	if _, err := ParseCategory(payload.CategoryID); err != nil {
		return DropPayload{}, err
	}

	return payload, nil
}

// Persister saves tag edits to the backend. The backend treats create as an
// upsert keyed on movie id, so one call covers both new and existing edits.
type Persister interface {
	UpsertEdit(ctx context.Context, edit models.TagEdit) (*models.TagEdit, error)
}

// Editor applies tag operations to a title's edit record.
//
// Updates are optimistic: the returned edit reflects the change immediately
// and persistence failures are logged, not rolled back, so a flaky backend
// never loses a tag the user can see.
type Editor struct {
	persister Persister
	logger    *log.Logger
}

// NewEditor creates an Editor backed by the given persister.
func NewEditor(p Persister, logger *log.Logger) *Editor {
	return &Editor{persister: p, logger: logger}
}

// Add appends a tag to the category field of a title's edit. A nil current
// edit means the title has no edit record yet and one is created. Returns
// the updated edit and whether anything changed; adding a tag that is
// already present changes nothing and skips persistence.
func (e *Editor) Add(ctx context.Context, current *models.TagEdit, movieID int, title string, category Category, tag string) (models.TagEdit, bool) {
	edit := baseEdit(current, movieID, title)

	field := fieldFor(edit, category)
	updated, changed := Add(*field, tag)
	if !changed {
		return *edit, false
	}
	*field = updated

	e.persist(ctx, *edit, "add", tag)
	return *edit, true
}

// Remove deletes a tag from the category field of a title's edit. Removing
// a tag that is not present changes nothing and skips persistence.
func (e *Editor) Remove(ctx context.Context, current *models.TagEdit, movieID int, title string, category Category, tag string) (models.TagEdit, bool) {
	edit := baseEdit(current, movieID, title)

	field := fieldFor(edit, category)
	updated, changed := Remove(*field, tag)
	if !changed {
		return *edit, false
	}
	*field = updated

	e.persist(ctx, *edit, "remove", tag)
	return *edit, true
}

// baseEdit copies the current edit, keeping both tag fields so an operation
// on one category never clobbers the other.
func baseEdit(current *models.TagEdit, movieID int, title string) *models.TagEdit {
	edit := &models.TagEdit{MovieID: movieID, MovieTitle: title}
	if current != nil {
		edit.CustomBackgroundTime = current.CustomBackgroundTime
		edit.CustomGenre = current.CustomGenre
		edit.Notes = current.Notes
	}
	return edit
}

func fieldFor(edit *models.TagEdit, category Category) *string {
	if category == CategoryGenre {
		return &edit.CustomGenre
	}
	return &edit.CustomBackgroundTime
}

func (e *Editor) persist(ctx context.Context, edit models.TagEdit, op, tag string) {
	if e.persister == nil {
		return
	}
	if _, err := e.persister.UpsertEdit(ctx, edit); err != nil {
		e.logger.Warn("failed to persist tag edit", "op", op, "movie_id", edit.MovieID, "tag", tag, "error", err)
	}
}
