// Package research enriches a resolved place with facts that the places
// lookup does not carry, such as pricing, dietary coverage, or amenity
// details, by asking a web-grounded research model.
package research

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/phuslu/log"

	"github.com/ameya/tripmeta/internal/llm"
	"github.com/ameya/tripmeta/internal/places"
	"github.com/ameya/tripmeta/internal/prompts"
	"github.com/ameya/tripmeta/internal/schema"
)

const (
	maxTokens  = 4000
	keyPrefix  = "pplx-"
	maxReviews = 5
)

// Result holds the research model's answer. Raw always carries the full
// response text and is what the formatter consumes. Parsed is a best-effort
// local decode and may be nil when the response was not valid JSON.
type Result struct {
	Raw    string
	Parsed map[string]any
}

// Analyzer runs category-specific research prompts against a completion client.
type Analyzer struct {
	client llm.Completer
	apiKey string
	logger log.Logger
}

// New creates an Analyzer. The API key is retained only for the shape check
// performed on first use; the client carries the credential for calls.
func New(client llm.Completer, apiKey string) *Analyzer {
	return &Analyzer{
		client: client,
		apiKey: apiKey,
		logger: log.Logger{Level: log.InfoLevel, Context: log.NewContext(nil).Str("stage", "research").Value()},
	}
}

// Analyze researches the given place. The place record must be non-nil;
// callers short-circuit not-found lookups before reaching this stage.
func (a *Analyzer) Analyze(ctx context.Context, category schema.Category, name, city string, place *places.PlaceRecord) (*Result, error) {
	if !strings.HasPrefix(a.apiKey, keyPrefix) {
		return nil, &ConfigError{Message: fmt.Sprintf("research API key must start with %q", keyPrefix)}
	}
	if place == nil {
		return nil, &InputError{Message: "no place data to research"}
	}

	prompt := buildPrompt(category, name, city, place)

	raw, err := a.client.Complete(ctx, prompt, maxTokens, 0)
	if err != nil {
		return nil, err
	}

	result := &Result{Raw: raw}
	if category != schema.CategoryAccommodation {
		var parsed map[string]any
		if err := json.Unmarshal([]byte(llm.CleanJSONBlock(raw)), &parsed); err != nil {
			a.logger.Debug().Err(err).Str("place", name).Msg("research response not locally parseable, deferring to formatter")
		} else {
			result.Parsed = parsed
		}
	}
	return result, nil
}

func buildPrompt(category schema.Category, name, city string, place *places.PlaceRecord) string {
	vars := map[string]string{
		"PlaceName":   name,
		"City":        city,
		"Category":    place.Category,
		"Description": place.Description,
		"Rating":      fmt.Sprintf("%v", place.Rating),
		"Reviews":     reviewDigest(place.Reviews),
		"Address":     place.FormattedAddress,
	}

	switch category {
	case schema.CategoryDining:
		vars["Hours"] = strings.Join(place.HoursList(), " | ")
		vars["Website"] = place.Website
		return prompts.Format(prompts.ResearchDining, vars)
	case schema.CategoryAccommodation:
		return prompts.Format(prompts.ResearchAccommodation, vars)
	default:
		return prompts.Format(prompts.ResearchActivity, vars)
	}
}

// reviewDigest joins up to maxReviews review texts for prompt context.
func reviewDigest(reviews []places.Review) string {
	texts := make([]string, 0, maxReviews)
	for _, rev := range reviews {
		if rev.Text == "" {
			continue
		}
		texts = append(texts, rev.Text)
		if len(texts) == maxReviews {
			break
		}
	}
	return strings.Join(texts, " | ")
}
