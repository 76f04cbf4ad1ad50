// package formatter exports library views to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/desertthunder/mvx/internal/models"
	"github.com/desertthunder/mvx/internal/shared"
)

// LibraryExport is a filtered library view ready for export.
type LibraryExport struct {
	// Name labels the export and seeds default filenames.
	Name string
	// Criteria is a human-readable summary of the filters that produced
	// this view, empty when unfiltered.
	Criteria string
	Records  []models.WatchRecord
	Edits    map[int]models.TagEdit
}

func (e *LibraryExport) editFor(movieID int) models.TagEdit {
	if e.Edits == nil {
		return models.TagEdit{}
	}
	return e.Edits[movieID]
}

// ExportToCSV converts a library view to CSV with one row per title.
func ExportToCSV(export *LibraryExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{
		"MovieID", "Title", "Status", "MediaType", "Year", "Rating",
		"Genres", "Countries", "BackgroundTime", "CustomGenre", "UpdatedAt",
	}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, r := range export.Records {
		edit := export.editFor(r.MovieID)
		record := []string{
			strconv.Itoa(r.MovieID),
			r.MovieTitle,
			r.Status,
			r.MediaType,
			r.Year(),
			strconv.FormatFloat(r.VoteAverage, 'f', 1, 64),
			r.Genres,
			r.ProductionCountries,
			edit.CustomBackgroundTime,
			edit.CustomGenre,
			r.UpdatedAt,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a library view to Markdown.
func ExportToMarkdown(export *LibraryExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.Name))

	if export.Criteria != "" {
		buf.WriteString(fmt.Sprintf("**Filters**: %s\n\n", export.Criteria))
	}

	buf.WriteString(fmt.Sprintf("**Titles**: %d\n\n", len(export.Records)))

	buf.WriteString("## Titles\n\n")
	for i, r := range export.Records {
		edit := export.editFor(r.MovieID)

		yearPart := ""
		if year := r.Year(); year != "" {
			yearPart = fmt.Sprintf(" (%s)", year)
		}

		buf.WriteString(fmt.Sprintf("%d. %s%s [%s]\n", i+1, r.MovieTitle, yearPart, r.Status))

		genres := r.Genres
		if edit.CustomGenre != "" {
			genres = edit.CustomGenre
		}
		if genres != "" {
			buf.WriteString(fmt.Sprintf("   - Genres: %s\n", genres))
		}
		if edit.CustomBackgroundTime != "" {
			buf.WriteString(fmt.Sprintf("   - Background: %s\n", edit.CustomBackgroundTime))
		}
		if r.VoteAverage > 0 {
			buf.WriteString(fmt.Sprintf("   - Rating: %.1f\n", r.VoteAverage))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a library view to plain text.
func ExportToText(export *LibraryExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Library: %s\n", export.Name))
	if export.Criteria != "" {
		buf.WriteString(fmt.Sprintf("Filters: %s\n", export.Criteria))
	}
	buf.WriteString(fmt.Sprintf("Titles: %d\n\n", len(export.Records)))

	for i, r := range export.Records {
		yearPart := ""
		if year := r.Year(); year != "" {
			yearPart = fmt.Sprintf(" (%s)", year)
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s [%s]\n", i+1, r.MovieTitle, yearPart, r.Status))
	}

	return buf.Bytes(), nil
}

// DownloadImage downloads an image from the given URL and returns the raw bytes
func DownloadImage(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("empty URL provided")
	}

	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return imageData, nil
}

// ToMetadataJSON generates a JSON summary of the export (without titles).
func ToMetadataJSON(export *LibraryExport) ([]byte, error) {
	meta := map[string]any{
		"name":     export.Name,
		"criteria": export.Criteria,
		"count":    len(export.Records),
	}
	return shared.MarshalJSON(meta, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	TitlesFile   string
	MetadataFile string
}

// WriteCSVExport writes a library view to CSV with an accompanying metadata JSON file.
//
// Defaults to the export name as the base filename & creates {base}_titles.csv and {base}_metadata.json
func WriteCSVExport(export *LibraryExport, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = export.Name
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	titlesFile := baseFilepath + "_titles.csv"
	if err := os.WriteFile(titlesFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		TitlesFile:   titlesFile,
		MetadataFile: metadataFile,
	}, nil
}

// WriteMarkdownExport writes a library view to {dir}/README.md.
//
// Directory name defaults to the export name.
func WriteMarkdownExport(export *LibraryExport, outputDir string) (string, error) {
	if outputDir == "" {
		outputDir = export.Name
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	mdData, err := ExportToMarkdown(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	mdFile := fmt.Sprintf("%s/README.md", outputDir)
	if err := os.WriteFile(mdFile, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return mdFile, nil
}

// WriteTextExport writes a library view to plain text.
//
// Defaults to {name}_titles.txt as the filename.
func WriteTextExport(export *LibraryExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_titles.txt", export.Name)
	}

	textData, err := ExportToText(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
