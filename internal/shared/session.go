package shared

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Session holds the persisted login state for the tracking backend.
//
// The token is a bearer JWT issued by the login endpoint. Username and
// UserID mirror the profile returned alongside the token so commands can
// display the signed-in user without a round trip.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultSessionPath returns the session file location under the user's
// home directory (~/.mvx/session.json).
func DefaultSessionPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".mvx", "session.json"), nil
}

// SessionStore reads and writes a Session at a fixed path.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store at the given path. An empty path falls
// back to [DefaultSessionPath].
func NewSessionStore(path string) (*SessionStore, error) {
	if path == "" {
		p, err := DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &SessionStore{path: path}, nil
}

// Path returns the file location backing the store.
func (s *SessionStore) Path() string {
	return s.path
}

// Load reads the persisted session. Returns [ErrNoSession] when no session
// file exists or the stored token is empty.
func (s *SessionStore) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to parse session file: %w", err)
	}

	if session.Token == "" {
		return nil, ErrNoSession
	}

	return &session, nil
}

// Save persists the session, creating parent directories as needed.
// The file is written with 0600 permissions since it holds a credential.
func (s *SessionStore) Save(session *Session) error {
	if session == nil || session.Token == "" {
		return fmt.Errorf("%w: session token is empty", ErrInvalidInput)
	}

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	data, err := MarshalJSON(session, true)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Clear removes the session file. Clearing an absent session is not an error.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
