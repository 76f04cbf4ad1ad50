package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/desertthunder/mvx/internal/filter"
	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/services"
	"github.com/desertthunder/mvx/internal/shared"
	tu "github.com/desertthunder/mvx/internal/testing"
	"github.com/urfave/cli/v3"
)

func TestNewRunner(t *testing.T) {
	t.Run("applies defaults for nil options", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})

		if runner.config == nil {
			t.Error("Expected default config")
		}
		if runner.logger == nil {
			t.Error("Expected default logger")
		}
		if runner.output != os.Stdout {
			t.Error("Expected stdout as default output")
		}
		if runner.input != os.Stdin {
			t.Error("Expected stdin as default input")
		}
	})

	t.Run("keeps provided options", func(t *testing.T) {
		var out bytes.Buffer
		config := shared.DefaultConfig()
		config.UI.PageSize = 7

		runner := NewRunner(RunnerOpts{Config: config, Output: &out})

		if runner.config.UI.PageSize != 7 {
			t.Errorf("Expected page size 7, got %d", runner.config.UI.PageSize)
		}
		if runner.output != &out {
			t.Error("Expected provided output writer")
		}
	})
}

func TestRegister(t *testing.T) {
	runner := NewRunner(RunnerOpts{})
	commands := runner.register()

	want := []string{"auth", "movies", "games", "watch", "tags", "library", "repair", "api", "setup", "tui"}
	if len(commands) != len(want) {
		t.Fatalf("Expected %d commands, got %d", len(want), len(commands))
	}

	for i, name := range want {
		if commands[i].Name != name {
			t.Errorf("Expected command %q at position %d, got %q", name, i, commands[i].Name)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	t.Run("pretty output", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewRunner(RunnerOpts{Output: &out})

		if err := runner.writeJSON(map[string]string{"key": "value"}, true); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}

		got := out.String()
		if !strings.Contains(got, "  \"key\": \"value\"") {
			t.Errorf("Expected indented JSON, got %q", got)
		}
		if !strings.HasSuffix(got, "\n") {
			t.Error("Expected trailing newline")
		}
	})

	t.Run("compact output", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewRunner(RunnerOpts{Output: &out})

		if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
			t.Fatalf("writeJSON failed: %v", err)
		}

		if got := out.String(); got != "{\"key\":\"value\"}\n" {
			t.Errorf("Expected compact JSON, got %q", got)
		}
	})

	t.Run("unmarshalable data", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewRunner(RunnerOpts{Output: &out})

		if err := runner.writeJSON(make(chan int), false); err == nil {
			t.Error("Expected error for unmarshalable data")
		}
	})

	t.Run("write failure", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		if err := runner.writeJSON("data", false); err == nil {
			t.Error("Expected error from failing writer")
		}
	})
}

func TestWritePlain(t *testing.T) {
	t.Run("formats output", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewRunner(RunnerOpts{Output: &out})

		if err := runner.writePlain("count: %d", 3); err != nil {
			t.Fatalf("writePlain failed: %v", err)
		}
		if got := out.String(); got != "count: 3" {
			t.Errorf("Expected 'count: 3', got %q", got)
		}
	})

	t.Run("writePlainln pads with newlines", func(t *testing.T) {
		var out bytes.Buffer
		runner := NewRunner(RunnerOpts{Output: &out})

		if err := runner.writePlainln("done"); err != nil {
			t.Fatalf("writePlainln failed: %v", err)
		}
		if got := out.String(); got != "\ndone\n" {
			t.Errorf("Expected padded line, got %q", got)
		}
	})

	t.Run("write failure", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

		if err := runner.writePlain("data"); err == nil {
			t.Error("Expected error from failing writer")
		}
	})
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"accepts y", "y\n", true},
		{"accepts yes", "yes\n", true},
		{"accepts uppercase", "YES\n", true},
		{"rejects n", "n\n", false},
		{"rejects empty", "\n", false},
		{"rejects garbage", "maybe\n", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			runner := NewRunner(RunnerOpts{Output: &out, Input: strings.NewReader(tc.input)})

			if got := runner.confirm("proceed?"); got != tc.want {
				t.Errorf("confirm(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if !strings.Contains(out.String(), "proceed? [y/N]:") {
				t.Errorf("Expected prompt in output, got %q", out.String())
			}
		})
	}
}

func TestWatchSet(t *testing.T) {
	run := func(t *testing.T, detail http.HandlerFunc, args ...string) (models.WatchRecord, error) {
		t.Helper()

		var posted models.WatchRecord
		mux := http.NewServeMux()
		mux.HandleFunc("/api/movies/", detail)
		mux.HandleFunc("/api/watch-status", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("unexpected method: %s", r.Method)
			}
			if err := json.NewDecoder(r.Body).Decode(&posted); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			json.NewEncoder(w).Encode(services.ActionResponse{Message: "Watch status updated"})
		})
		srv := httptest.NewServer(mux)
		t.Cleanup(srv.Close)

		client := services.NewClient(services.ClientOpts{BaseURL: srv.URL}, shared.NewLogger(io.Discard))
		runner := NewRunner(RunnerOpts{
			Movies: services.NewMovieService(client),
			Watch:  services.NewWatchService(client),
			Logger: shared.NewLogger(io.Discard),
			Output: &bytes.Buffer{},
		})

		err := watchCommand(runner).Run(context.Background(), append([]string{"watch", "set"}, args...))
		return posted, err
	}

	t.Run("enriches the record from the catalog", func(t *testing.T) {
		posted, err := run(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/movies/42" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(models.Movie{
				ID: 42, Title: "罗马假日", PosterPath: "/holiday.jpg",
				ReleaseDate: "1953-08-26", VoteAverage: 8.0, Overview: "公主出逃罗马",
				Genres:    models.GenreList{"爱情", "喜剧"},
				MediaType: models.MediaMovie,
				ProductionCountries: []models.ProductionCountry{
					{ISO31661: "US", Name: "美国"},
				},
			})
		}, "--id", "42", "--status", "watched", "--rating", "8.5")
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if posted.MovieID != 42 || posted.Status != "watched" {
			t.Errorf("unexpected record identity: %+v", posted)
		}
		if posted.MovieTitle != "罗马假日" {
			t.Errorf("expected catalog title, got %q", posted.MovieTitle)
		}
		if posted.Genres != "爱情, 喜剧" {
			t.Errorf("expected joined genres, got %q", posted.Genres)
		}
		if posted.ProductionCountries != "美国" {
			t.Errorf("expected countries, got %q", posted.ProductionCountries)
		}
		if posted.ReleaseDate != "1953-08-26" || posted.MediaType != models.MediaMovie {
			t.Errorf("expected catalog dates and type carried over: %+v", posted)
		}
		if posted.VoteAverage != 8.0 || posted.Overview != "公主出逃罗马" {
			t.Errorf("expected vote average and overview carried over: %+v", posted)
		}
		if posted.Rating != 8.5 {
			t.Errorf("expected personal rating, got %v", posted.Rating)
		}
	})

	t.Run("stores placeholders for missing catalog metadata", func(t *testing.T) {
		posted, err := run(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.Movie{ID: 7, Title: "无信息电影"})
		}, "--id", "7", "--status", "want_to_watch")
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if posted.Genres != "暂无分类" {
			t.Errorf("expected genre placeholder, got %q", posted.Genres)
		}
		if posted.ProductionCountries != "暂无出品信息" {
			t.Errorf("expected country placeholder, got %q", posted.ProductionCountries)
		}
		if posted.Overview != "暂无简介" {
			t.Errorf("expected overview placeholder, got %q", posted.Overview)
		}
	})

	t.Run("title flag overrides the catalog title", func(t *testing.T) {
		posted, err := run(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.Movie{ID: 7, Title: "original"})
		}, "--id", "7", "--status", "watched", "--title", "改名")
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if posted.MovieTitle != "改名" {
			t.Errorf("expected overridden title, got %q", posted.MovieTitle)
		}
	})

	t.Run("fails when the catalog lookup fails", func(t *testing.T) {
		posted, err := run(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail": "not found"}`, http.StatusNotFound)
		}, "--id", "999", "--status", "watched")
		if err == nil {
			t.Fatal("expected error for missing catalog entry")
		}
		if posted.MovieID != 0 {
			t.Errorf("expected no record posted, got %+v", posted)
		}
	})
}

func TestCriteriaFromFlags(t *testing.T) {
	run := func(t *testing.T, args []string) filter.Criteria {
		t.Helper()
		var criteria filter.Criteria
		cmd := &cli.Command{
			Name:  "view",
			Flags: criteriaFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				criteria = criteriaFromFlags(cmd)
				return nil
			},
		}
		if err := cmd.Run(context.Background(), append([]string{"view"}, args...)); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		return criteria
	}

	t.Run("defaults when flags unset", func(t *testing.T) {
		criteria := run(t, nil)
		if !criteria.IsDefault() {
			t.Errorf("Expected default criteria, got %+v", criteria)
		}
		if criteria.SortBy != filter.SortUpdatedAt {
			t.Errorf("Expected updated_at sort, got %q", criteria.SortBy)
		}
	})

	t.Run("reads provided flags", func(t *testing.T) {
		criteria := run(t, []string{
			"--status", "watched", "--type", "tv", "--year", "2010s",
			"--keyword", "战争", "--sort", "rating",
		})

		if criteria.Status != "watched" {
			t.Errorf("Expected watched status, got %q", criteria.Status)
		}
		if criteria.MediaType != "tv" {
			t.Errorf("Expected tv media type, got %q", criteria.MediaType)
		}
		if criteria.Year != "2010s" {
			t.Errorf("Expected 2010s year, got %q", criteria.Year)
		}
		if criteria.Keyword != "战争" {
			t.Errorf("Expected keyword, got %q", criteria.Keyword)
		}
		if criteria.SortBy != filter.SortRating {
			t.Errorf("Expected rating sort, got %q", criteria.SortBy)
		}
	})
}

func TestCriteriaSummary(t *testing.T) {
	t.Run("empty for defaults", func(t *testing.T) {
		if got := criteriaSummary(filter.DefaultCriteria()); got != "" {
			t.Errorf("Expected empty summary, got %q", got)
		}
	})

	t.Run("lists active criteria", func(t *testing.T) {
		criteria := filter.DefaultCriteria()
		criteria.Status = "watched"
		criteria.Year = "1990s"
		criteria.Keyword = "战争"

		got := criteriaSummary(criteria)
		for _, want := range []string{"status=watched", "year=1990s", "keyword=战争", "sort=updated_at"} {
			if !strings.Contains(got, want) {
				t.Errorf("Expected %q in summary, got %q", want, got)
			}
		}
	})
}
