// Package formatter converts raw place and research data into a strict,
// schema-conformant record via a formatting model, then repairs common
// LLM output drift locally so the result always validates.
package formatter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/phuslu/log"

	"github.com/ameya/tripmeta/internal/llm"
	"github.com/ameya/tripmeta/internal/places"
	"github.com/ameya/tripmeta/internal/prompts"
	"github.com/ameya/tripmeta/internal/schema"
)

// Formatter merges place and research inputs into typed records.
type Formatter struct {
	client llm.Completer
	logger log.Logger
}

// New creates a Formatter backed by the given completion client.
func New(client llm.Completer) *Formatter {
	return &Formatter{
		client: client,
		logger: log.Logger{Level: log.InfoLevel, Context: log.NewContext(nil).Str("stage", "formatter").Value()},
	}
}

// Format asks the model to restructure the research text into the category's
// record shape, then coerces stray types and backfills any omitted fields so
// every schema key is present with the right type.
func (f *Formatter) Format(ctx context.Context, category schema.Category, name string, place *places.PlaceRecord, researchRaw string) (map[string]any, error) {
	table := schema.For(category)

	placeJSON, err := json.MarshalIndent(place.AsMap(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal place data: %w", err)
	}

	vars := map[string]string{
		"PlaceName":    name,
		"PlaceData":    string(placeJSON),
		"ResearchData": researchRaw,
	}

	var template string
	switch category {
	case schema.CategoryDining:
		template = prompts.FormatDining
	case schema.CategoryAccommodation:
		template = prompts.FormatAccommodation
	default:
		template = prompts.FormatActivity
	}

	response, err := f.client.Complete(ctx, prompts.Format(template, vars), table.FormatMaxTokens, 0)
	if err != nil {
		return nil, err
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &record); err != nil {
		return nil, &llm.ParseError{Message: "formatter response is not valid JSON", Cause: err}
	}

	table.Coerce(record)
	table.Backfill(record)

	f.logger.Debug().Str("place", name).Int("fields", len(record)).Msg("record formatted")
	return record, nil
}
