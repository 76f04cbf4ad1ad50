package library

import (
	"github.com/desertthunder/mvx/internal/models"
)

// CardState tracks what a library card is currently doing. Transitions are
// guarded; an invalid transition leaves the state unchanged.
type CardState int

const (
	// CardIdle is the resting state.
	CardIdle CardState = iota
	// CardDragOver means a palette tag is hovering over the card.
	CardDragOver
	// CardLoading means a tag drop is being applied.
	CardLoading
	// CardFixLoading means a metadata fix is in flight.
	CardFixLoading
)

func (s CardState) String() string {
	switch s {
	case CardIdle:
		return "idle"
	case CardDragOver:
		return "drag_over"
	case CardLoading:
		return "loading"
	case CardFixLoading:
		return "fix_loading"
	default:
		return "unknown"
	}
}

// Card pairs a watch record with its tag edit and interaction state.
type Card struct {
	Record models.WatchRecord
	Edit   *models.TagEdit

	state CardState
}

// NewCard creates an idle card.
func NewCard(record models.WatchRecord, edit *models.TagEdit) *Card {
	return &Card{Record: record, Edit: edit}
}

// State returns the card's current state.
func (c *Card) State() CardState {
	return c.state
}

// DragEnter moves an idle card to drag-over. Cards mid-operation ignore drags.
func (c *Card) DragEnter() bool {
	if c.state != CardIdle {
		return false
	}
	c.state = CardDragOver
	return true
}

// DragLeave returns a drag-over card to idle.
func (c *Card) DragLeave() bool {
	if c.state != CardDragOver {
		return false
	}
	c.state = CardIdle
	return true
}

// BeginDrop starts applying a dropped tag. Valid from idle or drag-over.
func (c *Card) BeginDrop() bool {
	if c.state != CardIdle && c.state != CardDragOver {
		return false
	}
	c.state = CardLoading
	return true
}

// FinishDrop completes a tag drop, successful or not.
func (c *Card) FinishDrop() bool {
	if c.state != CardLoading {
		return false
	}
	c.state = CardIdle
	return true
}

// BeginFix starts a metadata fix. Only an idle card can be fixed.
func (c *Card) BeginFix() bool {
	if c.state != CardIdle {
		return false
	}
	c.state = CardFixLoading
	return true
}

// FinishFix completes a metadata fix.
func (c *Card) FinishFix() bool {
	if c.state != CardFixLoading {
		return false
	}
	c.state = CardIdle
	return true
}

// Busy reports whether an operation is in flight.
func (c *Card) Busy() bool {
	return c.state == CardLoading || c.state == CardFixLoading
}

// DisplayTime returns the custom background time when set, else the title's
// release year.
func (c *Card) DisplayTime() string {
	if c.Edit != nil && c.Edit.CustomBackgroundTime != "" {
		return c.Edit.CustomBackgroundTime
	}
	return c.Record.Year()
}

// GenreText returns the custom genre tags when set, else the catalog genres.
func (c *Card) GenreText() string {
	if c.Edit != nil && c.Edit.CustomGenre != "" {
		return c.Edit.CustomGenre
	}
	return c.Record.Genres
}
