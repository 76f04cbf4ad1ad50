package formatter

import (
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/mvx/internal/models"
	th "github.com/desertthunder/mvx/internal/testing"
)

func sampleExport() *LibraryExport {
	return &LibraryExport{
		Name:     "watched",
		Criteria: "status=watched",
		Records: []models.WatchRecord{
			{
				MovieID:             1,
				MovieTitle:          "长安三万里",
				Status:              models.StatusWatched,
				MediaType:           models.MediaMovie,
				ReleaseDate:         "2023-07-08",
				VoteAverage:         8.3,
				Genres:              "动画, 历史",
				ProductionCountries: "中国",
				UpdatedAt:           "2024-03-01T10:00:00Z",
			},
			{
				MovieID:    2,
				MovieTitle: "Band of Brothers",
				Status:     models.StatusWatched,
				MediaType:  models.MediaTV,
				Genres:     "战争, 剧情",
			},
		},
		Edits: map[int]models.TagEdit{
			1: {MovieID: 1, CustomBackgroundTime: "唐", CustomGenre: "历史, 动画电影"},
		},
	}
}

func TestExporters(t *testing.T) {
	t.Run("ExportToCSV", func(t *testing.T) {
		data, err := ExportToCSV(sampleExport())
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "MovieID,Title,Status,MediaType,Year,Rating") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "长安三万里") {
			t.Error("CSV missing title")
		}
		if !strings.Contains(output, "唐") {
			t.Error("CSV missing custom background time")
		}

		rows, err := csv.NewReader(strings.NewReader(output)).ReadAll()
		if err != nil {
			t.Fatalf("output is not valid CSV: %v", err)
		}
		if len(rows) != 3 {
			t.Errorf("expected header plus 2 rows, got %d", len(rows))
		}
		if rows[1][4] != "2023" {
			t.Errorf("expected year column 2023, got %q", rows[1][4])
		}
		if rows[2][8] != "" {
			t.Errorf("expected empty background time for untagged title, got %q", rows[2][8])
		}
	})

	t.Run("ExportToMarkdown", func(t *testing.T) {
		data, err := ExportToMarkdown(sampleExport())
		if err != nil {
			t.Fatalf("ExportToMarkdown failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "# watched") {
			t.Error("Markdown missing title heading")
		}
		if !strings.Contains(output, "**Filters**: status=watched") {
			t.Error("Markdown missing criteria line")
		}
		if !strings.Contains(output, "**Titles**: 2") {
			t.Error("Markdown missing count")
		}
		if !strings.Contains(output, "1. 长安三万里 (2023) [watched]") {
			t.Errorf("Markdown missing numbered entry, got: %s", output)
		}
		if !strings.Contains(output, "Background: 唐") {
			t.Error("Markdown missing background time")
		}
		if !strings.Contains(output, "Genres: 历史, 动画电影") {
			t.Error("expected custom genres to override catalog genres")
		}
		if !strings.Contains(output, "2. Band of Brothers [watched]") {
			t.Error("expected entry without year to omit parentheses")
		}
	})

	t.Run("ExportToText", func(t *testing.T) {
		data, err := ExportToText(sampleExport())
		if err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Library: watched") {
			t.Error("text missing header")
		}
		if !strings.Contains(output, "Titles: 2") {
			t.Error("text missing count")
		}
		if !strings.Contains(output, "2. Band of Brothers [watched]") {
			t.Error("text missing entry")
		}
	})

	t.Run("empty export", func(t *testing.T) {
		export := &LibraryExport{Name: "empty"}

		data, err := ExportToCSV(export)
		if err != nil {
			t.Fatalf("ExportToCSV failed: %v", err)
		}
		if lines := strings.Count(strings.TrimSpace(string(data)), "\n"); lines != 0 {
			t.Errorf("expected header only, got %d extra lines", lines)
		}

		if _, err := ExportToText(export); err != nil {
			t.Fatalf("ExportToText failed: %v", err)
		}
	})
}

func TestFileExports(t *testing.T) {
	t.Run("WriteCSVExport", func(t *testing.T) {
		tmpDir := t.TempDir()
		base := filepath.Join(tmpDir, "watched")

		result, err := WriteCSVExport(sampleExport(), base)
		if err != nil {
			t.Fatalf("WriteCSVExport failed: %v", err)
		}

		th.AssertFileExists(t, result.TitlesFile)
		th.AssertFileExists(t, result.MetadataFile)

		metadata := th.MustReadFile(t, result.MetadataFile)
		if !strings.Contains(metadata, `"count": 2`) {
			t.Errorf("metadata missing count, got: %s", metadata)
		}
	})

	t.Run("WriteMarkdownExport", func(t *testing.T) {
		tmpDir := t.TempDir()
		outputDir := filepath.Join(tmpDir, "export")

		mdFile, err := WriteMarkdownExport(sampleExport(), outputDir)
		if err != nil {
			t.Fatalf("WriteMarkdownExport failed: %v", err)
		}

		th.AssertDirExists(t, outputDir)
		th.AssertFileExists(t, mdFile)

		content := th.MustReadFile(t, mdFile)
		if !strings.Contains(content, "# watched") {
			t.Error("markdown file missing heading")
		}
	})

	t.Run("WriteTextExport", func(t *testing.T) {
		tmpDir := t.TempDir()
		path := filepath.Join(tmpDir, "out.txt")

		written, err := WriteTextExport(sampleExport(), path)
		if err != nil {
			t.Fatalf("WriteTextExport failed: %v", err)
		}
		if written != path {
			t.Errorf("expected path %s, got %s", path, written)
		}
		th.AssertFileExists(t, written)
	})
}
