package ui

import (
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/repositories"
	"github.com/desertthunder/mvx/internal/services"
)

// libraryLoadedMsg reports the outcome of a full library reload.
type libraryLoadedMsg struct {
	err error
}

// paletteLoadedMsg carries the tag palette from local storage.
type paletteLoadedMsg struct {
	categories []repositories.PaletteCategory
	err        error
}

// tagAppliedMsg reports a tag toggle on one title. changed is false when the
// toggle was a no-op; err is set when the drop payload failed validation.
type tagAppliedMsg struct {
	movieID int
	tag     string
	edit    models.TagEdit
	changed bool
	added   bool
	err     error
}

// fixDoneMsg reports a single-title metadata fix.
type fixDoneMsg struct {
	movieID int
	result  *services.FixResult
	err     error
}

// statusChangedMsg reports a watch status mutation.
type statusChangedMsg struct {
	movieID int
	err     error
}

// repairDoneMsg reports a bulk metadata backfill.
type repairDoneMsg struct {
	result *services.RepairResult
	err    error
}
