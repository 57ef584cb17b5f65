// Package resolver disambiguates free-text activity descriptions into
// concrete place search targets via an LLM call. Resolution never fails:
// any transport or parse error degrades to the raw input text, so the
// downstream places lookup always receives usable parameters.
package resolver

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/phuslu/log"

	"github.com/ameya/tripmeta/internal/llm"
	"github.com/ameya/tripmeta/internal/prompts"
)

// maxTokens caps the resolver completion; the response is a two-field JSON object.
const maxTokens = 500

// temperature allows the model some leeway when inferring a venue from a
// vague activity description.
const temperature = 0.3

// UnknownCity is the fallback city when no context city was supplied.
const UnknownCity = "Unknown"

// Target is a concrete place lookup request inferred from activity text.
type Target struct {
	PlaceName string `json:"place_name"`
	City      string `json:"city"`
}

// Resolver turns activity descriptions into search targets.
type Resolver struct {
	client llm.Completer
	logger log.Logger
}

// New creates a Resolver backed by the given completion client.
func New(client llm.Completer) *Resolver {
	return &Resolver{
		client: client,
		logger: log.Logger{Level: log.InfoLevel, Context: log.NewContext(nil).Str("stage", "resolver").Value()},
	}
}

// Resolve infers the best place name and city to search for the given
// activity description. It always returns a usable Target: on any failure
// it falls back to the trimmed activity text and the context city (or
// "Unknown" when none was given).
func (r *Resolver) Resolve(ctx context.Context, activity, contextCity string) Target {
	fallback := Target{
		PlaceName: strings.TrimSpace(activity),
		City:      contextCity,
	}
	if fallback.City == "" {
		fallback.City = UnknownCity
	}

	promptCity := contextCity
	if promptCity == "" {
		promptCity = "Not provided"
	}
	prompt := prompts.Format(prompts.Resolver, map[string]string{
		"ActivityName": activity,
		"ContextCity":  promptCity,
	})

	response, err := r.client.Complete(ctx, prompt, maxTokens, temperature)
	if err != nil {
		r.logger.Warn().Err(err).Str("activity", activity).Msg("resolver call failed, using raw input")
		return fallback
	}

	var target Target
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &target); err != nil {
		r.logger.Warn().Err(err).Str("activity", activity).Msg("resolver response unparseable, using raw input")
		return fallback
	}

	if target.PlaceName == "" {
		target.PlaceName = fallback.PlaceName
	}
	if target.City == "" {
		target.City = fallback.City
	}
	return target
}
