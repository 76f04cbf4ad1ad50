package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/mvx/internal/library"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/tags"
)

var (
	_ list.Item = recordItem{}
	_ list.Item = tagItem{}
)

// recordItem wraps a [library.Card] to implement [list.Item].
type recordItem struct {
	card *library.Card
}

func (i recordItem) FilterValue() string { return i.card.Record.MovieTitle }

func (i recordItem) Title() string {
	if i.card.Busy() {
		return fmt.Sprintf("%s …", i.card.Record.MovieTitle)
	}
	return i.card.Record.MovieTitle
}

func (i recordItem) Description() string {
	parts := []string{statusLabel(i.card.Record.Status)}
	if t := i.card.DisplayTime(); t != "" {
		parts = append(parts, t)
	}
	if g := i.card.GenreText(); g != "" {
		parts = append(parts, g)
	}
	if i.card.Record.VoteAverage > 0 {
		parts = append(parts, fmt.Sprintf("%.1f", i.card.Record.VoteAverage))
	}
	return strings.Join(parts, " • ")
}

func statusLabel(status string) string {
	if status == models.StatusWantToWatch {
		return "want to watch"
	}
	return status
}

// tagItem is one palette token to implement [list.Item].
type tagItem struct {
	category     tags.Category
	categoryName string
	tag          string
}

func (i tagItem) FilterValue() string { return i.tag }
func (i tagItem) Title() string       { return i.tag }
func (i tagItem) Description() string { return i.categoryName }
