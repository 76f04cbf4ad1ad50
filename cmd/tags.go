package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/repositories"
	"github.com/desertthunder/mvx/internal/tags"
	"github.com/urfave/cli/v3"
)

// TagsAdd appends a tag to a title's edit record.
func (r *Runner) TagsAdd(ctx context.Context, cmd *cli.Command) error {
	movieID := cmd.Int("id")
	tag := cmd.String("tag")

	category, err := tags.ParseCategory(cmd.String("category"))
	if err != nil {
		return err
	}

	current, err := r.edits.Get(ctx, movieID)
	if err != nil {
		return fmt.Errorf("failed to load current edit: %w", err)
	}

	title := cmd.String("title")
	if title == "" && current != nil {
		title = current.MovieTitle
	}

	editor := tags.NewEditor(r.edits, r.logger)
	edit, changed := editor.Add(ctx, current, movieID, title, category, tag)
	if !changed {
		return r.writePlainln("Tag %q already present on title %d", tag, movieID)
	}

	r.writePlainln("Added %q to title %d", tag, movieID)
	return r.writeEditSummary(&edit)
}

// TagsRemove deletes a tag from a title's edit record.
func (r *Runner) TagsRemove(ctx context.Context, cmd *cli.Command) error {
	movieID := cmd.Int("id")
	tag := cmd.String("tag")

	category, err := tags.ParseCategory(cmd.String("category"))
	if err != nil {
		return err
	}

	current, err := r.edits.Get(ctx, movieID)
	if err != nil {
		return fmt.Errorf("failed to load current edit: %w", err)
	}

	title := ""
	if current != nil {
		title = current.MovieTitle
	}

	editor := tags.NewEditor(r.edits, r.logger)
	edit, changed := editor.Remove(ctx, current, movieID, title, category, tag)
	if !changed {
		return r.writePlainln("Tag %q not present on title %d", tag, movieID)
	}

	r.writePlainln("Removed %q from title %d", tag, movieID)
	return r.writeEditSummary(&edit)
}

// TagsShow prints a title's tag edit.
func (r *Runner) TagsShow(ctx context.Context, cmd *cli.Command) error {
	id, err := parseIDArg(cmd, "id")
	if err != nil {
		return err
	}

	edit, err := r.edits.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch edit for title %d: %w", id, err)
	}

	if edit == nil {
		return r.writePlainln("No tag edit for title %d", id)
	}

	if cmd.Bool("json") {
		return r.writeJSON(edit, true)
	}

	r.writePlainln("%s (title %d)", edit.MovieTitle, edit.MovieID)
	return r.writeEditSummary(edit)
}

// TagsPalette shows the local tag palette, or edits it when --add/--remove
// is given.
func (r *Runner) TagsPalette(ctx context.Context, cmd *cli.Command) error {
	db, err := r.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	palettes := repositories.NewPaletteRepository(db)
	if err := palettes.Seed(); err != nil {
		return fmt.Errorf("failed to seed palette: %w", err)
	}

	add := cmd.String("add")
	remove := cmd.String("remove")

	if add != "" || remove != "" {
		category, err := tags.ParseCategory(cmd.String("category"))
		if err != nil {
			return fmt.Errorf("--category is required with --add/--remove: %w", err)
		}

		if add != "" {
			if err := palettes.AddTag(string(category), add); err != nil {
				return fmt.Errorf("failed to add palette tag: %w", err)
			}
			r.writePlainln("Added %q to %s", add, category)
		}
		if remove != "" {
			if err := palettes.RemoveTag(string(category), remove); err != nil {
				return fmt.Errorf("failed to remove palette tag: %w", err)
			}
			r.writePlainln("Removed %q from %s", remove, category)
		}
	}

	palette, err := palettes.Palette()
	if err != nil {
		return fmt.Errorf("failed to load palette: %w", err)
	}

	for _, category := range palette {
		r.writePlainln("%s (%s, %d tags)", category.Name, category.ID, len(category.Tags))
		for _, tag := range category.Tags {
			r.writePlain("  %s\n", tag)
		}
	}
	return nil
}

func (r *Runner) writeEditSummary(edit *models.TagEdit) error {
	if edit.CustomBackgroundTime != "" {
		r.writePlain("Background time: %s\n", edit.CustomBackgroundTime)
	}
	if edit.CustomGenre != "" {
		r.writePlain("Genres: %s\n", edit.CustomGenre)
	}
	if edit.Notes != "" {
		r.writePlain("Notes: %s\n", edit.Notes)
	}
	return nil
}
