package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestAPIService(t *testing.T) {
	t.Run("Get returns raw response", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || r.URL.Path != "/api/health" {
				t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			}
			if r.Header.Get("Authorization") != "Bearer test-token" {
				t.Errorf("expected session token on raw requests, got %q", r.Header.Get("Authorization"))
			}

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		}))

		resp, err := NewAPIService(client).Get(context.Background(), "/api/health")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
		if !resp.IsJSON {
			t.Error("expected JSON response to be detected")
		}
		if data, ok := resp.JSONData.(map[string]any); !ok || data["status"] != "ok" {
			t.Errorf("unexpected JSON data: %v", resp.JSONData)
		}
	})

	t.Run("Get preserves non-JSON body", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("plain text"))
		}))

		resp, err := NewAPIService(client).Get(context.Background(), "/raw")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.IsJSON {
			t.Error("expected non-JSON response")
		}
		if string(resp.Body) != "plain text" {
			t.Errorf("unexpected body: %q", resp.Body)
		}
	})

	t.Run("Post sends body and surfaces error statuses", func(t *testing.T) {
		client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Type") != "application/json" {
				t.Errorf("expected JSON content type, got %q", r.Header.Get("Content-Type"))
			}

			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if body["movie_id"] != float64(42) {
				t.Errorf("unexpected body: %v", body)
			}

			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": "bad payload"}`))
		}))

		resp, err := NewAPIService(client).Post(context.Background(), "/api/watch-status", []byte(`{"movie_id": 42}`))
		if err != nil {
			t.Fatalf("raw responses should not map error statuses: %v", err)
		}
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", resp.StatusCode)
		}
	})
}
