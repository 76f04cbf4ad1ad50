// package filter implements client-side multi-criteria filtering and sorting
// of watch records.
//
// All predicates are conjunctive: a record must satisfy every active
// criterion to survive. Filtering happens entirely on data already fetched
// from the backend, so criteria changes never trigger network calls.
package filter

import (
	"sort"
	"strconv"
	"strings"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/tags"
)

// Any disables a criterion.
const Any = "all"

// Media type criteria. The derived categories are computed from the base
// media type plus the record's genre string.
const (
	MediaMovie           = "movie"
	MediaTV              = "tv"
	MediaDocumentary     = "documentary"
	MediaAnimation       = "animation"
	MediaAnimationMovie  = "animation_movie"
	MediaLiveActionMovie = "live_action_movie"
)

// Sort orders.
const (
	SortTitle     = "title"
	SortUpdatedAt = "updated_at"
	SortRating    = "rating"
	SortYear      = "year"
)

// NoBackgroundTime selects records whose tag edit has no background time set.
const NoBackgroundTime = "无背景时间"

// noCountryInfo is the placeholder the backend stores when a title has no
// production country data.
const noCountryInfo = "暂无出品信息"

// mainlandChina matches several spellings the backend mixes for the same region.
const mainlandChina = "中国大陆"

var mainlandAliases = []string{"中国大陆", "中国", "CN", "China"}

// genreTerms maps genre criteria to the bilingual substrings they match
// against the record's genre string.
var genreTerms = map[string][]string{
	"action":          {"动作", "action"},
	"comedy":          {"喜剧", "comedy"},
	"drama":           {"剧情", "drama"},
	"thriller":        {"惊悚", "thriller"},
	"horror":          {"恐怖", "horror"},
	"romance":         {"爱情", "romance"},
	"science_fiction": {"科幻", "science fiction"},
	"fantasy":         {"奇幻", "fantasy"},
	"crime":           {"犯罪", "crime"},
	"war":             {"战争", "war"},
}

// decades maps year criteria to inclusive year ranges. The "other" bucket
// catches everything before 1960.
var decades = map[string][2]int{
	"2020s": {2020, 2029},
	"2010s": {2010, 2019},
	"2000s": {2000, 2009},
	"1990s": {1990, 1999},
	"1980s": {1980, 1989},
	"1970s": {1970, 1979},
	"1960s": {1960, 1969},
}

// Criteria is one complete filter and sort configuration. The zero value is
// not useful; use [DefaultCriteria] so every field starts at [Any].
type Criteria struct {
	Status         string
	MediaType      string
	Region         string
	Genre          string
	Year           string
	BackgroundTime string
	Keyword        string
	SortBy         string
}

// DefaultCriteria returns criteria matching everything, sorted by last update.
func DefaultCriteria() Criteria {
	return Criteria{
		Status:         Any,
		MediaType:      Any,
		Region:         Any,
		Genre:          Any,
		Year:           Any,
		BackgroundTime: Any,
		SortBy:         SortUpdatedAt,
	}
}

// IsDefault reports whether no criterion narrows the result set.
func (c Criteria) IsDefault() bool {
	return c.Status == Any && c.MediaType == Any && c.Region == Any &&
		c.Genre == Any && c.Year == Any && c.BackgroundTime == Any &&
		strings.TrimSpace(c.Keyword) == ""
}

// IndexEdits builds a movie id lookup for tag edits, used by the background
// time predicate.
func IndexEdits(edits []models.TagEdit) map[int]models.TagEdit {
	index := make(map[int]models.TagEdit, len(edits))
	for _, e := range edits {
		index[e.MovieID] = e
	}
	return index
}

// Apply filters and sorts records according to the criteria. The input slice
// is not modified.
func Apply(records []models.WatchRecord, edits map[int]models.TagEdit, c Criteria) []models.WatchRecord {
	out := make([]models.WatchRecord, 0, len(records))
	for _, r := range records {
		if matches(r, edits, c) {
			out = append(out, r)
		}
	}

	sortRecords(out, c.SortBy)
	return out
}

func matches(r models.WatchRecord, edits map[int]models.TagEdit, c Criteria) bool {
	if c.Status != Any && r.Status != c.Status {
		return false
	}
	if c.MediaType != Any && !matchesMediaType(r, c.MediaType) {
		return false
	}
	if c.Region != Any && !matchesRegion(r, c.Region) {
		return false
	}
	if c.Genre != Any && !matchesGenre(r, c.Genre) {
		return false
	}
	if c.Year != Any && !matchesYear(r, c.Year) {
		return false
	}
	if c.BackgroundTime != Any && !matchesBackgroundTime(r, edits, c.BackgroundTime) {
		return false
	}
	if keyword := strings.TrimSpace(c.Keyword); keyword != "" && !matchesKeyword(r, keyword) {
		return false
	}
	return true
}

func matchesMediaType(r models.WatchRecord, mediaType string) bool {
	genres := strings.ToLower(r.Genres)
	animated := strings.Contains(genres, "动画") || strings.Contains(genres, "animation")

	switch mediaType {
	case MediaMovie, MediaTV:
		return r.MediaType == mediaType
	case MediaDocumentary:
		return strings.Contains(genres, "纪录") || strings.Contains(genres, "documentary")
	case MediaAnimation:
		return r.MediaType == models.MediaTV && animated
	case MediaAnimationMovie:
		return r.MediaType == models.MediaMovie && animated
	case MediaLiveActionMovie:
		return r.MediaType == models.MediaMovie && !animated
	default:
		return r.MediaType == mediaType
	}
}

func matchesRegion(r models.WatchRecord, region string) bool {
	// Records without country data are excluded from every region filter.
	if r.ProductionCountries == "" || r.ProductionCountries == noCountryInfo {
		return false
	}

	if region == mainlandChina {
		for _, alias := range mainlandAliases {
			if strings.Contains(r.ProductionCountries, alias) {
				return true
			}
		}
		return false
	}

	return strings.Contains(r.ProductionCountries, region)
}

func matchesGenre(r models.WatchRecord, genre string) bool {
	if r.Genres == "" {
		return false
	}

	terms, ok := genreTerms[genre]
	if !ok {
		// Unknown genre criteria don't narrow the result set.
		return true
	}

	genres := strings.ToLower(r.Genres)
	for _, term := range terms {
		if strings.Contains(genres, term) {
			return true
		}
	}
	return false
}

func matchesYear(r models.WatchRecord, bucket string) bool {
	year, err := strconv.Atoi(r.Year())
	if err != nil {
		// Records without a parseable date are excluded from year filters.
		return false
	}

	if bucket == "other" {
		return year < 1960
	}

	span, ok := decades[bucket]
	if !ok {
		return true
	}
	return year >= span[0] && year <= span[1]
}

func matchesBackgroundTime(r models.WatchRecord, edits map[int]models.TagEdit, value string) bool {
	edit, ok := edits[r.MovieID]

	if value == NoBackgroundTime {
		return !ok || strings.TrimSpace(edit.CustomBackgroundTime) == ""
	}

	if !ok || edit.CustomBackgroundTime == "" {
		return false
	}

	for _, t := range tags.Parse(edit.CustomBackgroundTime) {
		if t == value {
			return true
		}
	}
	return false
}

func matchesKeyword(r models.WatchRecord, keyword string) bool {
	keyword = strings.ToLower(keyword)
	for _, field := range []string{
		r.MovieTitle, r.Overview, r.Genres, r.ProductionCountries, r.Director, r.Cast,
	} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

func sortRecords(records []models.WatchRecord, sortBy string) {
	switch sortBy {
	case SortTitle:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].MovieTitle < records[j].MovieTitle
		})
	case SortUpdatedAt:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].UpdatedTime().After(records[j].UpdatedTime())
		})
	case SortRating:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].VoteAverage > records[j].VoteAverage
		})
	case SortYear:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].AirDate() > records[j].AirDate()
		})
	}
}

// BackgroundTimeOptions returns the distinct non-empty background time values
// across all tag edits, in first-seen order. These populate the background
// time criterion choices.
func BackgroundTimeOptions(edits []models.TagEdit) []string {
	seen := make(map[string]bool)
	var options []string
	for _, e := range edits {
		value := strings.TrimSpace(e.CustomBackgroundTime)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		options = append(options, value)
	}
	return options
}
