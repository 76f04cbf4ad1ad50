package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
)

func TestGameService(t *testing.T) {
	t.Run("Search", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/games/search" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}

			q := r.URL.Query()
			if q.Get("search") != "zelda" || q.Get("page_size") != "20" {
				t.Errorf("unexpected query: %s", r.URL.RawQuery)
			}

			json.NewEncoder(w).Encode(models.GamePage[models.Game]{
				Count:   1,
				Results: []models.Game{{ID: 1, Name: "The Legend of Zelda", Rating: 4.6}},
			})
		}))

		page, err := NewGameService(client).Search(context.Background(), GameSearchParams{
			Search: "zelda", PageSize: 20,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Count != 1 || page.Results[0].Name != "The Legend of Zelda" {
			t.Errorf("unexpected page: %+v", page)
		}
	})

	t.Run("Popular", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/games/popular" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(models.GamePage[models.Game]{Count: 100})
		}))

		page, err := NewGameService(client).Popular(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.Count != 100 {
			t.Errorf("expected count 100, got %d", page.Count)
		}
	})

	t.Run("Genres unwraps results envelope", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"results": []models.GameGenre{{ID: 4, Name: "Action", Slug: "action"}},
			})
		}))

		genres, err := NewGameService(client).Genres(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(genres) != 1 || genres[0].Slug != "action" {
			t.Errorf("unexpected genres: %+v", genres)
		}
	})

	t.Run("Detail", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/games/3498" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			json.NewEncoder(w).Encode(models.Game{
				ID: 3498, Name: "Grand Theft Auto V", Metacritic: 92,
				Platforms: []models.GamePlatform{{Platform: models.GameRef{ID: 4, Name: "PC", Slug: "pc"}}},
			})
		}))

		game, err := NewGameService(client).Detail(context.Background(), 3498)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if game.Metacritic != 92 || game.Platforms[0].Platform.Name != "PC" {
			t.Errorf("unexpected game: %+v", game)
		}
	})
}
