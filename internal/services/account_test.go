package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/desertthunder/mvx/internal/shared"
)

func TestAccountService(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		t.Run("returns token and user", func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != "/api/users/login" {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}

				var body map[string]string
				json.NewDecoder(r.Body).Decode(&body)
				if body["username"] != "alice" || body["password"] != "secret" {
					t.Errorf("unexpected credentials: %v", body)
				}

				json.NewEncoder(w).Encode(map[string]any{
					"user":  map[string]any{"id": 1, "username": "alice", "email": "alice@example.com"},
					"token": "jwt-token",
				})
			}))

			result, err := NewAccountService(client).Login(context.Background(), "alice", "secret")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result.Token != "jwt-token" {
				t.Errorf("expected token jwt-token, got %s", result.Token)
			}
			if result.User.Username != "alice" {
				t.Errorf("expected username alice, got %s", result.User.Username)
			}
		})

		t.Run("bad credentials map to ErrAuthFailed", func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			}))

			_, err := NewAccountService(client).Login(context.Background(), "alice", "wrong")
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed, got %v", err)
			}
		})

		t.Run("missing credentials rejected locally", func(t *testing.T) {
			client := NewClient(ClientOpts{}, shared.NewLogger(nil))
			_, err := NewAccountService(client).Login(context.Background(), "", "")
			if !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})

		t.Run("empty token rejected", func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]any{"user": map[string]any{"id": 1}})
			}))

			_, err := NewAccountService(client).Login(context.Background(), "alice", "secret")
			if !errors.Is(err, shared.ErrAuthFailed) {
				t.Errorf("expected ErrAuthFailed for missing token, got %v", err)
			}
		})
	})

	t.Run("Register", func(t *testing.T) {
		t.Run("creates account", func(t *testing.T) {
			client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/users/register" {
					t.Errorf("unexpected path: %s", r.URL.Path)
				}
				json.NewEncoder(w).Encode(map[string]any{
					"user":  map[string]any{"id": 2, "username": "bob"},
					"token": "new-token",
				})
			}))

			result, err := NewAccountService(client).Register(context.Background(), "bob", "bob@example.com", "secret")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Token != "new-token" {
				t.Errorf("expected new-token, got %s", result.Token)
			}
		})

		t.Run("missing fields rejected locally", func(t *testing.T) {
			client := NewClient(ClientOpts{}, shared.NewLogger(nil))
			_, err := NewAccountService(client).Register(context.Background(), "bob", "", "secret")
			if !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})
	})
}
