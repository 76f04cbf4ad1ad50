package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// Default palette contents, seeded on first run. Categories mirror the two
// tag fields a title can carry.
var defaultPalette = []struct {
	category models.TagCategory
	tags     []string
}{
	{
		category: models.TagCategory{ID: "background_time", Name: "背景时间", Color: "blue", Position: 0},
		tags: []string{
			"唐", "宋", "明", "清", "18世纪", "1900s", "1920s", "1930s",
			"1940s", "1960s", "1970s", "1980s", "1990s", "2000s",
			"2010s", "2020s", "近未来",
		},
	},
	{
		category: models.TagCategory{ID: "genre", Name: "题材", Color: "purple", Position: 1},
		tags: []string{
			"古装", "仙侠", "武侠", "现代都市", "历史", "战争", "悬疑",
			"爱情", "喜剧", "家庭", "校园", "职场", "医疗", "律政",
			"犯罪", "科幻", "奇幻", "恐怖", "动作", "冒险",
		},
	},
}

// PaletteCategory is a category with its tags resolved, ready for display.
type PaletteCategory struct {
	models.TagCategory
	Tags []string
}

// PaletteRepository stores the reusable tag palette.
type PaletteRepository struct {
	db *sql.DB
}

// NewPaletteRepository creates a PaletteRepository with the given database connection.
func NewPaletteRepository(db *sql.DB) *PaletteRepository {
	return &PaletteRepository{db: db}
}

// Seed inserts the default categories and tags when the palette is empty.
// Safe to call on every startup.
func (r *PaletteRepository) Seed() error {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM tag_categories").Scan(&count); err != nil {
		return fmt.Errorf("failed to check palette state: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, entry := range defaultPalette {
		_, err := r.db.Exec(
			"INSERT INTO tag_categories (id, name, color, position) VALUES (?, ?, ?, ?)",
			entry.category.ID, entry.category.Name, entry.category.Color, entry.category.Position,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", entry.category.ID, err)
		}

		for i, tag := range entry.tags {
			if _, err := r.insertTag(entry.category.ID, tag, i); err != nil {
				return fmt.Errorf("failed to seed tag %s: %w", tag, err)
			}
		}
	}

	return nil
}

// Categories lists the palette categories in display order.
func (r *PaletteRepository) Categories() ([]models.TagCategory, error) {
	rows, err := r.db.Query("SELECT id, name, color, position FROM tag_categories ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.TagCategory
	for rows.Next() {
		var c models.TagCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Position); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return categories, nil
}

// TagsFor lists a category's tags in display order, excluding soft-deleted tags.
func (r *PaletteRepository) TagsFor(categoryID string) ([]string, error) {
	rows, err := r.db.Query(
		"SELECT tag FROM palette_tags WHERE category_id = ? AND deleted_at IS NULL ORDER BY position, sequence",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return tags, nil
}

// Palette returns all categories with their tags resolved.
func (r *PaletteRepository) Palette() ([]PaletteCategory, error) {
	categories, err := r.Categories()
	if err != nil {
		return nil, err
	}

	palette := make([]PaletteCategory, 0, len(categories))
	for _, c := range categories {
		tags, err := r.TagsFor(c.ID)
		if err != nil {
			return nil, err
		}
		palette = append(palette, PaletteCategory{TagCategory: c, Tags: tags})
	}
	return palette, nil
}

// AddTag appends a custom tag to a category. Adding an existing tag is a
// no-op; a soft-deleted tag is restored in place.
func (r *PaletteRepository) AddTag(categoryID, tag string) error {
	if tag == "" {
		return fmt.Errorf("%w: tag is empty", shared.ErrInvalidInput)
	}

	var exists bool
	err := r.db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM tag_categories WHERE id = ?)", categoryID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: %q", shared.ErrUnknownCategory, categoryID)
	}

	var deletedAt sql.NullTime
	err = r.db.QueryRow(
		"SELECT deleted_at FROM palette_tags WHERE category_id = ? AND tag = ? ORDER BY sequence DESC LIMIT 1",
		categoryID, tag,
	).Scan(&deletedAt)

	switch {
	case err == sql.ErrNoRows:
		var position int
		if err := r.db.QueryRow(
			"SELECT COALESCE(MAX(position), -1) + 1 FROM palette_tags WHERE category_id = ? AND deleted_at IS NULL",
			categoryID,
		).Scan(&position); err != nil {
			return fmt.Errorf("failed to compute tag position: %w", err)
		}

		if _, err := r.insertTag(categoryID, tag, position); err != nil {
			return fmt.Errorf("failed to insert tag: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("failed to check existing tag: %w", err)
	case deletedAt.Valid:
		_, err := r.db.Exec(
			"UPDATE palette_tags SET deleted_at = NULL, updated_at = ? WHERE category_id = ? AND tag = ?",
			time.Now(), categoryID, tag,
		)
		if err != nil {
			return fmt.Errorf("failed to restore tag: %w", err)
		}
		return nil
	default:
		// Already present and live
		return nil
	}
}

// RemoveTag soft-deletes a tag from a category.
func (r *PaletteRepository) RemoveTag(categoryID, tag string) error {
	result, err := r.db.Exec(
		"UPDATE palette_tags SET deleted_at = ? WHERE category_id = ? AND tag = ? AND deleted_at IS NULL",
		time.Now(), categoryID, tag,
	)
	if err != nil {
		return fmt.Errorf("failed to remove tag: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: tag %q in category %q", shared.ErrNotFound, tag, categoryID)
	}
	return nil
}

func (r *PaletteRepository) insertTag(categoryID, tag string, position int) (string, error) {
	sequence, err := NextSequence(r.db, "palette_tags")
	if err != nil {
		return "", fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	_, err = r.db.Exec(
		"INSERT INTO palette_tags (id, sequence, category_id, tag, position) VALUES (?, ?, ?, ?, ?)",
		id, sequence, categoryID, tag, position,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}
