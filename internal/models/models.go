package models

import (
	"strings"
	"time"
)

// Watch status values accepted by the backend.
const (
	StatusWatched     = "watched"
	StatusWantToWatch = "want_to_watch"
)

// Media type values used by the catalog.
const (
	MediaMovie = "movie"
	MediaTV    = "tv"
)

// Genre is a catalog genre as returned by movie detail endpoints.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ProductionCountry identifies where a title was produced.
type ProductionCountry struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

// Movie is a catalog entry for a film or TV show.
//
// Search results populate Title for films and Name for TV shows, so use
// [Movie.DisplayTitle] rather than reading either field directly. The same
// split applies to ReleaseDate and FirstAirDate.
type Movie struct {
	ID                  int                 `json:"id"`
	Title               string              `json:"title,omitempty"`
	Name                string              `json:"name,omitempty"`
	OriginalTitle       string              `json:"original_title,omitempty"`
	PosterPath          string              `json:"poster_path,omitempty"`
	BackdropPath        string              `json:"backdrop_path,omitempty"`
	Overview            string              `json:"overview,omitempty"`
	ReleaseDate         string              `json:"release_date,omitempty"`
	FirstAirDate        string              `json:"first_air_date,omitempty"`
	VoteAverage         float64             `json:"vote_average,omitempty"`
	VoteCount           int                 `json:"vote_count,omitempty"`
	Genres              GenreList           `json:"genres,omitempty"`
	MediaType           string              `json:"media_type,omitempty"`
	ProductionCountries []ProductionCountry `json:"production_countries,omitempty"`
	OriginCountry       []string            `json:"origin_country,omitempty"`
	Director            string              `json:"director,omitempty"`
	Cast                string              `json:"cast,omitempty"`
}

// DisplayTitle returns the film title, falling back to the TV show name.
func (m *Movie) DisplayTitle() string {
	if m.Title != "" {
		return m.Title
	}
	return m.Name
}

// AirDate returns the release date, falling back to the first air date.
func (m *Movie) AirDate() string {
	if m.ReleaseDate != "" {
		return m.ReleaseDate
	}
	return m.FirstAirDate
}

// Year returns the four-digit year of the air date, or "" when unknown.
func (m *Movie) Year() string {
	return yearOf(m.AirDate())
}

// WatchRecord builds the denormalized record the backend stores for this
// title. The upsert overwrites every metadata column from the posted payload,
// so all catalog fields ride along, with the stored placeholders standing in
// for missing data.
func (m *Movie) WatchRecord(status string) WatchRecord {
	genres := m.Genres.Joined()
	if genres == "" {
		genres = "暂无分类"
	}

	names := make([]string, 0, len(m.ProductionCountries))
	for _, c := range m.ProductionCountries {
		names = append(names, c.Name)
	}
	countries := strings.Join(names, ", ")
	if countries == "" {
		countries = "暂无出品信息"
	}

	overview := m.Overview
	if overview == "" {
		overview = "暂无简介"
	}

	mediaType := m.MediaType
	if mediaType == "" {
		if m.Title != "" {
			mediaType = MediaMovie
		} else {
			mediaType = MediaTV
		}
	}

	return WatchRecord{
		MovieID:             m.ID,
		MovieTitle:          m.DisplayTitle(),
		PosterPath:          m.PosterPath,
		Status:              status,
		MediaType:           mediaType,
		ReleaseDate:         m.ReleaseDate,
		FirstAirDate:        m.FirstAirDate,
		Genres:              genres,
		ProductionCountries: countries,
		VoteAverage:         m.VoteAverage,
		Overview:            overview,
		Director:            m.Director,
		Cast:                m.Cast,
	}
}

// WatchRecord is a per-user watch status row.
//
// The backend denormalizes catalog fields onto the row so lists can be
// filtered without extra lookups. Genres is a comma-joined string of genre
// names and ProductionCountries a comma-joined string of country names, both
// as stored by the backend.
type WatchRecord struct {
	ID                  int     `json:"id,omitempty"`
	UserID              int     `json:"user_id,omitempty"`
	MovieID             int     `json:"movie_id"`
	MovieTitle          string  `json:"movie_title"`
	PosterPath          string  `json:"poster_path,omitempty"`
	Status              string  `json:"status"`
	Rating              float64 `json:"rating,omitempty"`
	Notes               string  `json:"notes,omitempty"`
	WatchedDate         string  `json:"watched_date,omitempty"`
	CreatedAt           string  `json:"created_at,omitempty"`
	UpdatedAt           string  `json:"updated_at,omitempty"`
	MediaType           string  `json:"media_type,omitempty"`
	ReleaseDate         string  `json:"release_date,omitempty"`
	FirstAirDate        string  `json:"first_air_date,omitempty"`
	Genres              string  `json:"genres,omitempty"`
	ProductionCountries string  `json:"production_countries,omitempty"`
	VoteAverage         float64 `json:"vote_average,omitempty"`
	Overview            string  `json:"overview,omitempty"`
	Director            string  `json:"director,omitempty"`
	Cast                string  `json:"cast,omitempty"`
}

// AirDate returns the release date, falling back to the first air date.
func (w *WatchRecord) AirDate() string {
	if w.ReleaseDate != "" {
		return w.ReleaseDate
	}
	return w.FirstAirDate
}

// Year returns the four-digit year of the air date, or "" when unknown.
func (w *WatchRecord) Year() string {
	return yearOf(w.AirDate())
}

// UpdatedTime parses the updated_at timestamp. Records without one sort to
// the zero time.
func (w *WatchRecord) UpdatedTime() time.Time {
	if w.UpdatedAt == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, w.UpdatedAt); err == nil {
			return t
		}
	}
	return time.Time{}
}

// TagEdit holds per-user custom tags for one title. Both tag fields are
// comma-joined canonical strings ("唐, 战争").
type TagEdit struct {
	ID                   int    `json:"id,omitempty"`
	UserID               int    `json:"user_id,omitempty"`
	MovieID              int    `json:"movie_id"`
	MovieTitle           string `json:"movie_title"`
	CustomBackgroundTime string `json:"custom_background_time,omitempty"`
	CustomGenre          string `json:"custom_genre,omitempty"`
	Notes                string `json:"notes,omitempty"`
	CreatedAt            string `json:"created_at,omitempty"`
	UpdatedAt            string `json:"updated_at,omitempty"`
}

// User is a backend account.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
}

// Page is the paginated envelope returned by movie catalog endpoints.
type Page[T any] struct {
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Page         int `json:"page"`
}

// Game is a catalog entry from the game database.
type Game struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	BackgroundImg  string         `json:"background_image,omitempty"`
	Rating         float64        `json:"rating"`
	RatingTop      int            `json:"rating_top,omitempty"`
	RatingsCount   int            `json:"ratings_count,omitempty"`
	Released       string         `json:"released,omitempty"`
	Genres         []GameGenre    `json:"genres,omitempty"`
	Platforms      []GamePlatform `json:"platforms,omitempty"`
	Developers     []GameCompany  `json:"developers,omitempty"`
	Publishers     []GameCompany  `json:"publishers,omitempty"`
	DescriptionRaw string         `json:"description_raw,omitempty"`
	Description    string         `json:"description,omitempty"`
	Metacritic     int            `json:"metacritic,omitempty"`
	ESRBRating     *GameRef       `json:"esrb_rating,omitempty"`
}

// GameGenre is a genre attached to a game.
type GameGenre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GamePlatform wraps the nested platform object used by the game API.
type GamePlatform struct {
	Platform GameRef `json:"platform"`
}

// GameCompany is a developer or publisher.
type GameCompany struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GameRef is a generic id/name/slug reference.
type GameRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// GamePage is the count/next/previous envelope returned by game endpoints.
type GamePage[T any] struct {
	Count    int    `json:"count"`
	Next     string `json:"next,omitempty"`
	Previous string `json:"previous,omitempty"`
	Results  []T    `json:"results"`
}

// TagCategory is a palette category stored locally ("background_time", "genre").
type TagCategory struct {
	ID       string
	Name     string
	Color    string
	Position int
}

// PaletteTag is one reusable tag inside a palette category.
type PaletteTag struct {
	ID         string
	Sequence   int
	CategoryID string
	Tag        string
	Position   int
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	year := date[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return year
}
