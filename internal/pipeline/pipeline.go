// Package pipeline provides the high-level orchestration for travel entity
// enrichment: resolve, look up, research, format, merge.
package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/ameya/tripmeta/internal/config"
	"github.com/ameya/tripmeta/internal/formatter"
	"github.com/ameya/tripmeta/internal/llm"
	"github.com/ameya/tripmeta/internal/places"
	"github.com/ameya/tripmeta/internal/research"
	"github.com/ameya/tripmeta/internal/resolver"
	"github.com/ameya/tripmeta/internal/schema"
	"github.com/ameya/tripmeta/internal/store"
)

// Step names used in progress events and persisted runs.
const (
	StepResolve  = "resolve"
	StepPlaces   = "places_lookup"
	StepResearch = "research"
	StepFormat   = "format"
	StepMerge    = "merge"
)

// ProgressEvent represents a progress update during an enrichment run.
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called as each stage completes.
type ProgressCallback func(event ProgressEvent)

// NotFoundError indicates the places lookup returned zero candidates.
// It is terminal for the run but is not an upstream failure.
type NotFoundError struct {
	Name string
	City string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no place found for %q in %q", e.Name, e.City)
}

// Stage interfaces are narrow so tests can substitute fakes per stage.
type activityResolver interface {
	Resolve(ctx context.Context, activity, contextCity string) resolver.Target
}

type placesSearcher interface {
	Search(ctx context.Context, name, city string) (*places.PlaceRecord, error)
}

type researchAnalyzer interface {
	Analyze(ctx context.Context, category schema.Category, name, city string, place *places.PlaceRecord) (*research.Result, error)
}

type recordFormatter interface {
	Format(ctx context.Context, category schema.Category, name string, place *places.PlaceRecord, researchRaw string) (map[string]any, error)
}

// runStore is the slice of the store the pipeline needs for persistence.
type runStore interface {
	CreateRun(ctx context.Context, category, entityName, city string) (uuid.UUID, error)
	CompleteRun(ctx context.Context, runID uuid.UUID, status string) error
	SaveRecord(ctx context.Context, runID uuid.UUID, record map[string]any) error
}

// Pipeline runs the enrichment stages in order for one entity at a time.
type Pipeline struct {
	resolver   activityResolver
	places     placesSearcher
	research   researchAnalyzer
	formatter  recordFormatter
	store      runStore
	onProgress ProgressCallback
	logger     log.Logger
}

// New wires a Pipeline from configuration. The config must already be
// validated and merged with defaults.
func New(cfg *config.Config) *Pipeline {
	researchClient := llm.NewResearchClient(cfg.ResearchEndpoint, cfg.ResearchAPIKey, cfg.ResearchModel)
	formatterClient := llm.NewFormatterClient(cfg.AzureEndpoint, cfg.AzureAPIKey, cfg.AzureDeployment, cfg.AzureAPIVersion)

	return &Pipeline{
		resolver:  resolver.New(formatterClient),
		places:    places.NewClient(cfg.PlacesEndpoint, cfg.PlacesAPIKey),
		research:  research.New(researchClient, cfg.ResearchAPIKey),
		formatter: formatter.New(formatterClient),
		logger:    log.Logger{Level: log.InfoLevel, Context: log.NewContext(nil).Str("component", "pipeline").Value()},
	}
}

// SetStore attaches optional persistence. Runs and terminal records are
// saved when set; persistence failures are logged, never fatal.
func (p *Pipeline) SetStore(s *store.Store) {
	p.store = s
}

// SetProgress attaches an optional per-stage progress callback.
func (p *Pipeline) SetProgress(cb ProgressCallback) {
	p.onProgress = cb
}

func (p *Pipeline) emit(runID uuid.UUID, step string, category schema.Category, message string, content any) {
	if p.onProgress == nil {
		return
	}
	p.onProgress(ProgressEvent{
		Step:     step,
		Category: string(category),
		Message:  message,
		RunID:    runID.String(),
		Content:  content,
	})
}

// Enrich runs the full stage chain for one entity and returns the merged
// record. Stages run strictly in order and the first failure short-circuits
// the run. A lookup with zero candidates returns *NotFoundError.
func (p *Pipeline) Enrich(ctx context.Context, category schema.Category, name, city string) (map[string]any, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category: %s", category)
	}

	runID := uuid.New()
	if p.store != nil {
		if id, err := p.store.CreateRun(ctx, string(category), name, city); err != nil {
			p.logger.Warn().Err(err).Msg("failed to create run record, continuing without persistence")
		} else {
			runID = id
		}
	}

	record, err := p.enrich(ctx, runID, category, name, city)

	if p.store != nil {
		status := "completed"
		if err != nil {
			status = "failed"
		}
		if record != nil {
			if saveErr := p.store.SaveRecord(ctx, runID, record); saveErr != nil {
				p.logger.Warn().Err(saveErr).Msg("failed to persist record")
			}
		}
		if doneErr := p.store.CompleteRun(ctx, runID, status); doneErr != nil {
			p.logger.Warn().Err(doneErr).Msg("failed to complete run record")
		}
	}
	return record, err
}

func (p *Pipeline) enrich(ctx context.Context, runID uuid.UUID, category schema.Category, name, city string) (map[string]any, error) {
	// The resolved target steers the places lookup only; research and
	// formatting always see the verbatim user input.
	target := resolver.Target{PlaceName: name, City: city}
	if category == schema.CategoryActivity {
		target = p.resolver.Resolve(ctx, name, city)
		p.emit(runID, StepResolve, category,
			fmt.Sprintf("resolved %q to %q in %q", name, target.PlaceName, target.City), target)
	}

	place, err := p.places.Search(ctx, target.PlaceName, target.City)
	if err != nil {
		return nil, fmt.Errorf("places lookup failed: %w", err)
	}
	if place == nil {
		return nil, &NotFoundError{Name: target.PlaceName, City: target.City}
	}
	p.emit(runID, StepPlaces, category,
		fmt.Sprintf("found %q at %s", place.Name, place.FormattedAddress), place)

	result, err := p.research.Analyze(ctx, category, name, city, place)
	if err != nil {
		return nil, fmt.Errorf("research failed: %w", err)
	}
	p.emit(runID, StepResearch, category, "research complete", nil)

	record, err := p.formatter.Format(ctx, category, name, place, result.Raw)
	if err != nil {
		return nil, fmt.Errorf("formatting failed: %w", err)
	}
	p.emit(runID, StepFormat, category, "record formatted", nil)

	mergePlaceFields(category, record, place)
	record["Name"] = name
	p.emit(runID, StepMerge, category, "place data merged", record)

	return record, nil
}

// mergePlaceFields copies authoritative lookup fields into the formatted
// record. Accommodation takes only the allowlisted link fields; the other
// categories take everything except the denylisted narrative fields.
func mergePlaceFields(category schema.Category, record map[string]any, place *places.PlaceRecord) {
	table := schema.For(category)
	placeData := place.AsMap()

	if len(table.MergeAllow) > 0 {
		for _, key := range table.MergeAllow {
			if value, ok := placeData[key]; ok {
				record[key] = value
			}
		}
		return
	}

	deny := make(map[string]bool, len(table.MergeDeny))
	for _, key := range table.MergeDeny {
		deny[key] = true
	}
	for key, value := range placeData {
		if !deny[key] {
			record[key] = value
		}
	}
}

// Validate checks a terminal record against its category's schema.
func Validate(category schema.Category, record map[string]any) error {
	return schema.For(category).ValidateRecord(record)
}
