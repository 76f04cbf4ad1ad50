package tags

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

type fakePersister struct {
	edits []models.TagEdit
	err   error
}

func (f *fakePersister) UpsertEdit(_ context.Context, edit models.TagEdit) (*models.TagEdit, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.edits = append(f.edits, edit)
	return &edit, nil
}

func TestDecodeDropPayload(t *testing.T) {
	tt := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"valid background time", `{"categoryId": "background_time", "tag": "唐"}`, nil},
		{"valid genre", `{"categoryId": "genre", "tag": "古装"}`, nil},
		{"malformed json", `{categoryId`, shared.ErrInvalidDropData},
		{"missing tag", `{"categoryId": "genre"}`, shared.ErrInvalidDropData},
		{"whitespace tag", `{"categoryId": "genre", "tag": "  "}`, shared.ErrInvalidDropData},
		{"missing category", `{"tag": "唐"}`, shared.ErrInvalidDropData},
		{"unknown category", `{"categoryId": "mood", "tag": "唐"}`, shared.ErrUnknownCategory},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			payload, err := DecodeDropPayload([]byte(tc.data))

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if payload.Tag == "" || payload.CategoryID == "" {
				t.Errorf("expected populated payload, got %+v", payload)
			}
		})
	}
}

func TestEditor(t *testing.T) {
	ctx := context.Background()

	t.Run("Add creates edit for untagged title", func(t *testing.T) {
		persister := &fakePersister{}
		editor := NewEditor(persister, shared.NewLogger(nil))

		edit, changed := editor.Add(ctx, nil, 42, "长安三万里", CategoryBackgroundTime, "唐")
		if !changed {
			t.Error("expected change")
		}
		if edit.MovieID != 42 || edit.MovieTitle != "长安三万里" {
			t.Errorf("expected identity fields set, got %+v", edit)
		}
		if edit.CustomBackgroundTime != "唐" {
			t.Errorf("expected background time 唐, got %q", edit.CustomBackgroundTime)
		}

		if len(persister.edits) != 1 {
			t.Fatalf("expected 1 persisted edit, got %d", len(persister.edits))
		}
	})

	t.Run("Add preserves the other category field", func(t *testing.T) {
		persister := &fakePersister{}
		editor := NewEditor(persister, shared.NewLogger(nil))
		current := &models.TagEdit{MovieID: 42, MovieTitle: "长安三万里", CustomGenre: "古装, 历史"}

		edit, changed := editor.Add(ctx, current, 42, "长安三万里", CategoryBackgroundTime, "唐")
		if !changed {
			t.Error("expected change")
		}
		if edit.CustomGenre != "古装, 历史" {
			t.Errorf("expected genre field preserved, got %q", edit.CustomGenre)
		}
		if edit.CustomBackgroundTime != "唐" {
			t.Errorf("expected background time 唐, got %q", edit.CustomBackgroundTime)
		}
	})

	t.Run("Add duplicate skips persistence", func(t *testing.T) {
		persister := &fakePersister{}
		editor := NewEditor(persister, shared.NewLogger(nil))
		current := &models.TagEdit{MovieID: 42, CustomBackgroundTime: "唐, 宋"}

		_, changed := editor.Add(ctx, current, 42, "t", CategoryBackgroundTime, "宋")
		if changed {
			t.Error("expected no change for duplicate tag")
		}
		if len(persister.edits) != 0 {
			t.Errorf("expected no persistence, got %d edits", len(persister.edits))
		}
	})

	t.Run("Remove deletes tag and persists", func(t *testing.T) {
		persister := &fakePersister{}
		editor := NewEditor(persister, shared.NewLogger(nil))
		current := &models.TagEdit{MovieID: 42, CustomGenre: "古装, 仙侠"}

		edit, changed := editor.Remove(ctx, current, 42, "t", CategoryGenre, "仙侠")
		if !changed {
			t.Error("expected change")
		}
		if edit.CustomGenre != "古装" {
			t.Errorf("expected 古装, got %q", edit.CustomGenre)
		}
		if len(persister.edits) != 1 {
			t.Fatalf("expected 1 persisted edit, got %d", len(persister.edits))
		}
	})

	t.Run("Remove absent tag skips persistence", func(t *testing.T) {
		persister := &fakePersister{}
		editor := NewEditor(persister, shared.NewLogger(nil))
		current := &models.TagEdit{MovieID: 42, CustomGenre: "古装"}

		_, changed := editor.Remove(ctx, current, 42, "t", CategoryGenre, "武侠")
		if changed {
			t.Error("expected no change for absent tag")
		}
		if len(persister.edits) != 0 {
			t.Errorf("expected no persistence, got %d edits", len(persister.edits))
		}
	})

	t.Run("persist failure keeps local update", func(t *testing.T) {
		var buf bytes.Buffer
		persister := &fakePersister{err: errors.New("backend down")}
		editor := NewEditor(persister, shared.NewLogger(&buf))

		edit, changed := editor.Add(ctx, nil, 42, "t", CategoryGenre, "古装")
		if !changed {
			t.Error("expected local change despite persist failure")
		}
		if edit.CustomGenre != "古装" {
			t.Errorf("expected local update kept, got %q", edit.CustomGenre)
		}
		if !strings.Contains(buf.String(), "failed to persist tag edit") {
			t.Errorf("expected persist failure to be logged, got %q", buf.String())
		}
	})
}
