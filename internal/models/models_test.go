package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMovie(t *testing.T) {
	t.Run("DisplayTitle prefers film title", func(t *testing.T) {
		m := &Movie{Title: "泰坦尼克号", Name: "ignored"}
		if got := m.DisplayTitle(); got != "泰坦尼克号" {
			t.Errorf("expected 泰坦尼克号, got %s", got)
		}
	})

	t.Run("DisplayTitle falls back to TV name", func(t *testing.T) {
		m := &Movie{Name: "琅琊榜"}
		if got := m.DisplayTitle(); got != "琅琊榜" {
			t.Errorf("expected 琅琊榜, got %s", got)
		}
	})

	t.Run("WatchRecord carries the catalog metadata", func(t *testing.T) {
		m := &Movie{
			ID:          42,
			Title:       "长安三万里",
			PosterPath:  "/poster.jpg",
			Overview:    "盛唐往事",
			ReleaseDate: "2023-07-08",
			VoteAverage: 8.3,
			Genres:      GenreList{"动画", "历史"},
			MediaType:   MediaMovie,
			ProductionCountries: []ProductionCountry{
				{ISO31661: "CN", Name: "中国"},
				{ISO31661: "US", Name: "美国"},
			},
			Director: "谢君伟",
			Cast:     "杨天翔",
		}

		record := m.WatchRecord(StatusWatched)
		if record.MovieID != 42 || record.Status != StatusWatched {
			t.Errorf("unexpected record identity: %+v", record)
		}
		if record.MovieTitle != "长安三万里" {
			t.Errorf("expected display title, got %q", record.MovieTitle)
		}
		if record.Genres != "动画, 历史" {
			t.Errorf("expected joined genres, got %q", record.Genres)
		}
		if record.ProductionCountries != "中国, 美国" {
			t.Errorf("expected joined countries, got %q", record.ProductionCountries)
		}
		if record.ReleaseDate != "2023-07-08" || record.VoteAverage != 8.3 {
			t.Errorf("expected catalog fields carried over: %+v", record)
		}
		if record.Overview != "盛唐往事" || record.Director != "谢君伟" || record.Cast != "杨天翔" {
			t.Errorf("expected overview and credits carried over: %+v", record)
		}
	})

	t.Run("WatchRecord stores placeholders for missing metadata", func(t *testing.T) {
		m := &Movie{ID: 7, Title: "无信息电影"}

		record := m.WatchRecord(StatusWantToWatch)
		if record.Genres != "暂无分类" {
			t.Errorf("expected genre placeholder, got %q", record.Genres)
		}
		if record.ProductionCountries != "暂无出品信息" {
			t.Errorf("expected country placeholder, got %q", record.ProductionCountries)
		}
		if record.Overview != "暂无简介" {
			t.Errorf("expected overview placeholder, got %q", record.Overview)
		}
	})

	t.Run("WatchRecord infers the media type from the title fields", func(t *testing.T) {
		film := &Movie{ID: 1, Title: "罗马假日"}
		if got := film.WatchRecord(StatusWatched).MediaType; got != MediaMovie {
			t.Errorf("expected movie, got %q", got)
		}

		show := &Movie{ID: 2, Name: "琅琊榜"}
		if got := show.WatchRecord(StatusWatched).MediaType; got != MediaTV {
			t.Errorf("expected tv, got %q", got)
		}

		explicit := &Movie{ID: 3, Title: "地球脉动", MediaType: MediaTV}
		if got := explicit.WatchRecord(StatusWatched).MediaType; got != MediaTV {
			t.Errorf("expected explicit media type kept, got %q", got)
		}
	})

	t.Run("Year", func(t *testing.T) {
		tt := []struct {
			name  string
			movie Movie
			want  string
		}{
			{"release date", Movie{ReleaseDate: "1997-12-19"}, "1997"},
			{"first air date fallback", Movie{FirstAirDate: "2015-09-19"}, "2015"},
			{"no date", Movie{}, ""},
			{"malformed date", Movie{ReleaseDate: "n/a"}, ""},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				if got := tc.movie.Year(); got != tc.want {
					t.Errorf("expected %q, got %q", tc.want, got)
				}
			})
		}
	})
}

func TestWatchRecord(t *testing.T) {
	t.Run("UpdatedTime parses RFC3339", func(t *testing.T) {
		w := &WatchRecord{UpdatedAt: "2024-03-01T10:30:00Z"}
		want := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
		if got := w.UpdatedTime(); !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("UpdatedTime parses bare timestamp", func(t *testing.T) {
		w := &WatchRecord{UpdatedAt: "2024-03-01 10:30:00"}
		if w.UpdatedTime().IsZero() {
			t.Error("expected non-zero time")
		}
	})

	t.Run("UpdatedTime of missing timestamp is zero", func(t *testing.T) {
		w := &WatchRecord{}
		if !w.UpdatedTime().IsZero() {
			t.Error("expected zero time for missing updated_at")
		}
	})
}

func TestGenreList(t *testing.T) {
	t.Run("UnmarshalJSON", func(t *testing.T) {
		tt := []struct {
			name    string
			payload string
			want    []string
			wantErr bool
		}{
			{
				name:    "object list",
				payload: `[{"id": 18, "name": "剧情"}, {"id": 10752, "name": "战争"}]`,
				want:    []string{"剧情", "战争"},
			},
			{
				name:    "id list resolves TMDB ids",
				payload: `[28, 878]`,
				want:    []string{"动作", "科幻"},
			},
			{
				name:    "unknown id kept as number",
				payload: `[4242]`,
				want:    []string{"4242"},
			},
			{
				name:    "object without name resolves id",
				payload: `[{"id": 99}]`,
				want:    []string{"纪录片"},
			},
			{
				name:    "flattened string",
				payload: `"剧情, 战争, 历史"`,
				want:    []string{"剧情", "战争", "历史"},
			},
			{
				name:    "string list",
				payload: `["喜剧", " 爱情 "]`,
				want:    []string{"喜剧", "爱情"},
			},
			{
				name:    "null",
				payload: `null`,
				want:    nil,
			},
			{
				name:    "empty string yields empty list",
				payload: `""`,
				want:    []string{},
			},
			{
				name:    "unexpected payload",
				payload: `42`,
				wantErr: true,
			},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				var got GenreList
				err := json.Unmarshal([]byte(tc.payload), &got)

				if tc.wantErr {
					if err == nil {
						t.Error("expected error, got nil")
					}
					return
				}
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}

				if len(got) != len(tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
				for i := range tc.want {
					if got[i] != tc.want[i] {
						t.Errorf("index %d: expected %q, got %q", i, tc.want[i], got[i])
					}
				}
			})
		}
	})

	t.Run("MarshalJSON emits object form", func(t *testing.T) {
		data, err := json.Marshal(GenreList{"剧情", "自创题材"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var objs []Genre
		if err := json.Unmarshal(data, &objs); err != nil {
			t.Fatalf("failed to decode output: %v", err)
		}

		if len(objs) != 2 {
			t.Fatalf("expected 2 objects, got %d", len(objs))
		}
		if objs[0].ID != 18 || objs[0].Name != "剧情" {
			t.Errorf("expected known genre to carry its TMDB id, got %+v", objs[0])
		}
		if objs[1].ID != 0 {
			t.Errorf("expected unknown genre to carry id 0, got %+v", objs[1])
		}
	})

	t.Run("Joined", func(t *testing.T) {
		g := GenreList{"剧情", "战争"}
		if got := g.Joined(); got != "剧情, 战争" {
			t.Errorf("expected %q, got %q", "剧情, 战争", got)
		}
	})

	t.Run("Contains is case insensitive", func(t *testing.T) {
		g := GenreList{"Drama", "科幻"}
		if !g.Contains("drama") {
			t.Error("expected Contains to match case-insensitively")
		}
		if g.Contains("喜剧") {
			t.Error("expected Contains to reject absent genre")
		}
	})
}
