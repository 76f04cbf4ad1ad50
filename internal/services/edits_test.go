package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

func TestTagEditService(t *testing.T) {
	t.Run("Get returns nil for untagged title", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/movie-edits/42" {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			w.Write([]byte("null"))
		}))

		edit, err := NewTagEditService(client).Get(context.Background(), 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if edit != nil {
			t.Errorf("expected nil edit, got %+v", edit)
		}
	})

	t.Run("Get returns edit", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.TagEdit{
				MovieID: 42, MovieTitle: "长安三万里",
				CustomBackgroundTime: "唐", CustomGenre: "历史, 动画",
			})
		}))

		edit, err := NewTagEditService(client).Get(context.Background(), 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if edit.CustomBackgroundTime != "唐" {
			t.Errorf("expected background time 唐, got %q", edit.CustomBackgroundTime)
		}
	})

	t.Run("List passes pagination", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("limit") != "1000" {
				t.Errorf("unexpected query: %s", r.URL.RawQuery)
			}
			json.NewEncoder(w).Encode([]models.TagEdit{{MovieID: 1}})
		}))

		edits, err := NewTagEditService(client).List(context.Background(), 1, 1000)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(edits) != 1 {
			t.Errorf("expected 1 edit, got %d", len(edits))
		}
	})

	t.Run("UpsertEdit posts full edit", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/api/movie-edits" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}

			var edit models.TagEdit
			json.NewDecoder(r.Body).Decode(&edit)
			if edit.CustomBackgroundTime != "唐, 宋" || edit.CustomGenre != "古装" {
				t.Errorf("expected both tag fields in payload, got %+v", edit)
			}

			json.NewEncoder(w).Encode(ActionResponse{Message: "saved", ID: 9})
		}))

		saved, err := NewTagEditService(client).UpsertEdit(context.Background(), models.TagEdit{
			MovieID: 42, MovieTitle: "t", CustomBackgroundTime: "唐, 宋", CustomGenre: "古装",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.ID != 9 {
			t.Errorf("expected id 9, got %d", saved.ID)
		}
	})

	t.Run("UpsertEdit rejects missing movie id", func(t *testing.T) {
		client := NewClient(ClientOpts{}, shared.NewLogger(nil))
		_, err := NewTagEditService(client).UpsertEdit(context.Background(), models.TagEdit{})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete || r.URL.Path != "/api/movie-edits/42" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			json.NewEncoder(w).Encode(ActionResponse{Message: "deleted"})
		}))

		if err := NewTagEditService(client).Delete(context.Background(), 42); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
