// package tags implements the canonical tag string format and the edit
// operations on per-title tag sets.
//
// Tags are stored as a single comma-joined string ("唐, 战争"). Parse and
// Stringify are the only functions that should touch that format; everything
// else works on string slices.
package tags

import (
	"fmt"
	"strings"

	"github.com/desertthunder/mvx/internal/shared"
)

// Category identifies which tag field of an edit an operation targets.
type Category string

// The two tag categories a title can carry. Operations on any other
// category are rejected.
const (
	CategoryBackgroundTime Category = "background_time"
	CategoryGenre          Category = "genre"
)

// ParseCategory validates a raw category id.
func ParseCategory(raw string) (Category, error) {
	switch Category(raw) {
	case CategoryBackgroundTime, CategoryGenre:
		return Category(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrUnknownCategory, raw)
	}
}

// Parse splits a canonical tag string into individual tags. Whitespace
// around each tag is trimmed and empty entries are dropped, so malformed
// input like "唐,, 宋 ," still parses cleanly.
func Parse(tagString string) []string {
	if strings.TrimSpace(tagString) == "" {
		return []string{}
	}

	parts := strings.Split(tagString, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Stringify joins tags into the canonical comma-joined form.
func Stringify(tags []string) string {
	return strings.Join(tags, ", ")
}

// Contains reports whether the canonical tag string includes the exact tag.
func Contains(tagString, tag string) bool {
	for _, t := range Parse(tagString) {
		if t == tag {
			return true
		}
	}
	return false
}

// Add appends a tag to the tag string, returning the updated string and
// whether anything changed. Adding a tag already present is a no-op.
func Add(tagString, tag string) (string, bool) {
	current := Parse(tagString)
	for _, t := range current {
		if t == tag {
			return tagString, false
		}
	}
	return Stringify(append(current, tag)), true
}

// Remove deletes a tag from the tag string, returning the updated string and
// whether anything changed.
func Remove(tagString, tag string) (string, bool) {
	current := Parse(tagString)
	out := make([]string, 0, len(current))
	removed := false
	for _, t := range current {
		if t == tag {
			removed = true
			continue
		}
		out = append(out, t)
	}
	if !removed {
		return tagString, false
	}
	return Stringify(out), true
}
