// package formatter provides functions to export recommendations to various formats (CSV, Markdown, plain text, JSON)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/desertthunder/songbubbles/internal/models"
	"github.com/desertthunder/songbubbles/internal/shared"
	"github.com/goccy/go-json"
)

// Format names an export format.
type Format string

const (
	Text     Format = "text"
	CSV      Format = "csv"
	Markdown Format = "markdown"
	JSON     Format = "json"
)

// Formats lists the supported formats in display order.
var Formats = []Format{Text, CSV, Markdown, JSON}

// ParseFormat maps a flag value (case-insensitive, "md" accepted for markdown) to a [Format].
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return Text, nil
	case "csv":
		return CSV, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, s)
	}
}

// Export renders recs in format f.
func Export(f Format, recs []models.Recommendation) ([]byte, error) {
	switch f {
	case Text:
		return ExportToText(recs)
	case CSV:
		return ExportToCSV(recs)
	case Markdown:
		return ExportToMarkdown(recs)
	case JSON:
		return ExportToJSON(recs, true)
	default:
		return nil, fmt.Errorf("%w: %q", shared.ErrUnsupportedFormat, f)
	}
}

// ExportToCSV converts recommendations to CSV format with columns: Name, Album, Similarity
func ExportToCSV(recs []models.Recommendation) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Album", "Similarity"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, rec := range recs {
		record := []string{rec.Name, rec.Album, strconv.Itoa(rec.Similarity)}
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

// ExportToMarkdown converts recommendations to a Markdown table
func ExportToMarkdown(recs []models.Recommendation) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Recommendations\n\n")
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", len(recs)))

	if len(recs) == 0 {
		buf.WriteString("_No songs added._\n")
		return buf.Bytes(), nil
	}

	buf.WriteString("| # | Song | Album | Similarity |\n")
	buf.WriteString("|---|------|-------|------------|\n")
	for i, rec := range recs {
		buf.WriteString(fmt.Sprintf("| %d | %s | %s | %s |\n", i+1, escapeCell(rec.Name), escapeCell(rec.Album), rec.SimilarityLabel()))
	}

	return buf.Bytes(), nil
}

// ExportToText converts recommendations to plain text format, mirroring the card layout
func ExportToText(recs []models.Recommendation) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Recommendations: %d\n", len(recs)))

	for i, rec := range recs {
		buf.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, rec.Name))
		buf.WriteString(fmt.Sprintf("   Album: %s\n", rec.Album))
		buf.WriteString(fmt.Sprintf("   Similarity: %s\n", rec.SimilarityLabel()))
	}

	return buf.Bytes(), nil
}

// ExportToJSON marshals recommendations, optionally indented. An empty input yields [].
func ExportToJSON(recs []models.Recommendation, pretty bool) ([]byte, error) {
	if recs == nil {
		recs = []models.Recommendation{}
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(recs, "", "  ")
	} else {
		data, err = json.Marshal(recs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return append(data, '\n'), nil
}

// WriteExport renders recs in format f and writes them to path.
func WriteExport(path string, f Format, recs []models.Recommendation) error {
	data, err := Export(f, recs)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	return nil
}

// escapeCell keeps a value inside one table cell: pipes are escaped and line breaks become spaces.
func escapeCell(s string) string {
	return cellEscaper.Replace(s)
}

var cellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ", "\r", " ")
