package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GenreList is the list of genre names for a title.
//
// The backend is inconsistent about how it serializes genres: movie detail
// endpoints return [{"id": 18, "name": "剧情"}] objects, search results carry
// bare TMDB genre ids, and denormalized rows flatten everything to a single
// comma-joined string. UnmarshalJSON accepts all three shapes and resolves
// them to canonical names.
type GenreList []string

// tmdbGenreNames maps TMDB genre ids to the Chinese names the catalog uses.
var tmdbGenreNames = map[int]string{
	28:    "动作",
	12:    "冒险",
	16:    "动画",
	35:    "喜剧",
	80:    "犯罪",
	99:    "纪录片",
	18:    "剧情",
	10751: "家庭",
	14:    "奇幻",
	36:    "历史",
	27:    "恐怖",
	10402: "音乐",
	9648:  "悬疑",
	10749: "爱情",
	878:   "科幻",
	10770: "电视电影",
	53:    "惊悚",
	10752: "战争",
	37:    "西部",
}

// GenreNameForID resolves a TMDB genre id to its catalog name. Unknown ids
// resolve to the id rendered as a string so nothing is silently dropped.
func GenreNameForID(id int) string {
	if name, ok := tmdbGenreNames[id]; ok {
		return name
	}
	return fmt.Sprintf("%d", id)
}

// UnmarshalJSON decodes any of the genre wire shapes into a name list.
func (g *GenreList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*g = nil
		return nil
	}

	// Flattened comma-joined string
	if trimmed[0] == '"' {
		var joined string
		if err := json.Unmarshal(data, &joined); err != nil {
			return fmt.Errorf("failed to decode genre string: %w", err)
		}
		*g = splitNames(joined)
		return nil
	}

	if trimmed[0] != '[' {
		return fmt.Errorf("unexpected genre payload: %s", trimmed)
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode genre list: %w", err)
	}

	names := make([]string, 0, len(raw))
	for _, item := range raw {
		elem := strings.TrimSpace(string(item))
		if elem == "" {
			continue
		}

		switch elem[0] {
		case '{':
			var obj Genre
			if err := json.Unmarshal(item, &obj); err != nil {
				return fmt.Errorf("failed to decode genre object: %w", err)
			}
			if obj.Name != "" {
				names = append(names, obj.Name)
			} else {
				names = append(names, GenreNameForID(obj.ID))
			}
		case '"':
			var name string
			if err := json.Unmarshal(item, &name); err != nil {
				return fmt.Errorf("failed to decode genre name: %w", err)
			}
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		default:
			var id int
			if err := json.Unmarshal(item, &id); err != nil {
				return fmt.Errorf("failed to decode genre id: %w", err)
			}
			names = append(names, GenreNameForID(id))
		}
	}

	*g = names
	return nil
}

// MarshalJSON always emits the object form the detail endpoints use. Names
// without a known id are emitted with id 0.
func (g GenreList) MarshalJSON() ([]byte, error) {
	objs := make([]Genre, 0, len(g))
	for _, name := range g {
		objs = append(objs, Genre{ID: genreIDForName(name), Name: name})
	}
	return json.Marshal(objs)
}

// Joined returns the comma-joined canonical form ("剧情, 战争").
func (g GenreList) Joined() string {
	return strings.Join(g, ", ")
}

// Contains reports whether the list includes the given name, case-insensitively.
func (g GenreList) Contains(name string) bool {
	for _, n := range g {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}

func genreIDForName(name string) int {
	for id, n := range tmdbGenreNames {
		if n == name {
			return id
		}
	}
	return 0
}

func splitNames(joined string) []string {
	parts := strings.Split(joined, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
