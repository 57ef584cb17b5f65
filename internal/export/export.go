// Package export runs the enrichment pipeline over a CSV of entities and
// writes a flattened output CSV, one row per input entity. Nested dining
// groups are expanded into individual columns with spreadsheet-friendly
// headers.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phuslu/log"

	"github.com/ameya/tripmeta/internal/schema"
)

// cityColumn is the required city header in batch input CSVs.
const cityColumn = "city"

// Enricher runs the full stage chain for one entity.
type Enricher interface {
	Enrich(ctx context.Context, category schema.Category, name, city string) (map[string]any, error)
}

// RowResult reports the outcome of one processed input row.
type RowResult struct {
	Row   int
	Total int
	Name  string
	City  string
	Err   error
}

// ProgressFunc is called after each row completes, success or failure.
type ProgressFunc func(result RowResult)

// Run reads entities from in, enriches each row strictly in order, and
// writes the flattened results to out. A failed row is written as empty
// values carrying only the input name and city, and the batch continues.
// The input must have the category's name column and a "city" column.
func Run(ctx context.Context, enricher Enricher, category schema.Category, in io.Reader, out io.Writer, onProgress ProgressFunc) error {
	table := schema.For(category)
	columns := columnsFor(category)

	reader := csv.NewReader(in)
	rows, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read input CSV: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("input CSV is empty")
	}

	nameIdx, cityIdx := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case table.InputNameColumn:
			nameIdx = i
		case cityColumn:
			cityIdx = i
		}
	}
	if nameIdx < 0 || cityIdx < 0 {
		return fmt.Errorf("input CSV must contain %q and %q columns", table.InputNameColumn, cityColumn)
	}

	logger := log.Logger{Level: log.InfoLevel, Context: log.NewContext(nil).Str("component", "batch").Value()}

	writer := csv.NewWriter(out)
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.header
	}
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	entities := rows[1:]
	for i, row := range entities {
		name := strings.TrimSpace(row[nameIdx])
		city := strings.TrimSpace(row[cityIdx])

		record, enrichErr := enricher.Enrich(ctx, category, name, city)
		if enrichErr != nil {
			logger.Warn().Err(enrichErr).Str("name", name).Str("city", city).Msg("row failed, writing empty values")
			if err := writer.Write(emptyRow(columns, name, city)); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		} else {
			if err := writer.Write(renderRow(columns, record)); err != nil {
				return fmt.Errorf("failed to write output row: %w", err)
			}
		}

		if onProgress != nil {
			onProgress(RowResult{Row: i + 1, Total: len(entities), Name: name, City: city, Err: enrichErr})
		}
	}

	writer.Flush()
	return writer.Error()
}

// renderRow flattens a record into one CSV row in column order.
func renderRow(columns []column, record map[string]any) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = formatValue(col.value(record))
	}
	return row
}

// emptyRow carries only the input identity of a failed row.
func emptyRow(columns []column, name, city string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		switch col.header {
		case "Name":
			row[i] = name
		case "Destination L2 (City)":
			row[i] = city
		}
	}
	return row
}

// formatValue renders a record value as a CSV cell.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case []string:
		return strings.Join(val, " | ")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, " | ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
