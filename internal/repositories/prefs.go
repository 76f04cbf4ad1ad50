package repositories

import (
	"database/sql"
	"fmt"
	"time"
)

// Preference keys. These live locally with a lifecycle independent of the
// session: logging out does not reset them.
const (
	PrefAutoFilter = "auto_filter"
	PrefAutoSearch = "auto_search"
)

// PrefRepository stores UI preferences as key-value pairs.
type PrefRepository struct {
	db *sql.DB
}

// NewPrefRepository creates a PrefRepository with the given database connection.
func NewPrefRepository(db *sql.DB) *PrefRepository {
	return &PrefRepository{db: db}
}

// Get returns a preference value and whether it was set.
func (r *PrefRepository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow("SELECT value FROM preferences WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return value, true, nil
}

// Set stores a preference value, replacing any existing one.
func (r *PrefRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		"INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		key, value, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to write preference %s: %w", key, err)
	}
	return nil
}

// GetBool returns a boolean preference, or the fallback when unset.
func (r *PrefRepository) GetBool(key string, fallback bool) (bool, error) {
	value, ok, err := r.Get(key)
	if err != nil {
		return fallback, err
	}
	if !ok {
		return fallback, nil
	}
	return value == "true", nil
}

// SetBool stores a boolean preference.
func (r *PrefRepository) SetBool(key string, value bool) error {
	str := "false"
	if value {
		str = "true"
	}
	return r.Set(key, str)
}
