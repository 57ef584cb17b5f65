package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameya/tripmeta/internal/places"
	"github.com/ameya/tripmeta/internal/schema"
)

type fakeCompleter struct {
	response       string
	err            error
	prompt         string
	gotTemperature float64
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, _ int, temperature float64) (string, error) {
	f.prompt = prompt
	f.gotTemperature = temperature
	return f.response, f.err
}

func testPlace() *places.PlaceRecord {
	return &places.PlaceRecord{
		Name:             "Trishna",
		FormattedAddress: "7 Sai Baba Marg, Fort, Mumbai",
		Category:         "restaurant",
		Description:      "Seafood institution in Fort.",
		Rating:           4.5,
		Website:          "https://trishna.example",
		MapsURL:          "https://maps.google.com/?cid=9",
		OpeningHours:     []string{"Monday: 12:00 PM - 11:30 PM"},
		PhotoURLs:        []string{"u1", "N/A", "N/A"},
		Reviews: []places.Review{
			{Text: "Best butter garlic crab.", PublishTime: "2024-01-01T00:00:00Z"},
			{Text: "Book ahead.", PublishTime: "2024-02-01T00:00:00Z"},
		},
	}
}

func TestAnalyze_BadKeyPrefix(t *testing.T) {
	a := New(&fakeCompleter{}, "sk-wrong-shape")

	_, err := a.Analyze(context.Background(), schema.CategoryDining, "Trishna", "Mumbai", testPlace())
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "pplx-")
}

func TestAnalyze_NilPlace(t *testing.T) {
	a := New(&fakeCompleter{}, "pplx-key")

	_, err := a.Analyze(context.Background(), schema.CategoryDining, "Trishna", "Mumbai", nil)
	require.Error(t, err)

	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestAnalyze_DiningPromptIncludesHoursAndWebsite(t *testing.T) {
	fake := &fakeCompleter{response: `{"Recommended_Dishes": "Butter garlic crab"}`}
	a := New(fake, "pplx-key")

	result, err := a.Analyze(context.Background(), schema.CategoryDining, "Trishna", "Mumbai", testPlace())
	require.NoError(t, err)

	assert.Contains(t, fake.prompt, "Trishna")
	assert.Contains(t, fake.prompt, "Mumbai")
	assert.Contains(t, fake.prompt, "Monday: 12:00 PM - 11:30 PM")
	assert.Contains(t, fake.prompt, "https://trishna.example")
	assert.Contains(t, fake.prompt, "Best butter garlic crab. | Book ahead.")
	assert.Equal(t, float64(0), fake.gotTemperature)

	assert.Equal(t, `{"Recommended_Dishes": "Butter garlic crab"}`, result.Raw)
	require.NotNil(t, result.Parsed)
	assert.Equal(t, "Butter garlic crab", result.Parsed["Recommended_Dishes"])
}

func TestAnalyze_UnparseableResponseKeepsRaw(t *testing.T) {
	fake := &fakeCompleter{response: "Trishna is a legendary seafood restaurant..."}
	a := New(fake, "pplx-key")

	result, err := a.Analyze(context.Background(), schema.CategoryActivity, "Trishna", "Mumbai", testPlace())
	require.NoError(t, err)

	assert.Equal(t, "Trishna is a legendary seafood restaurant...", result.Raw)
	assert.Nil(t, result.Parsed)
}

func TestAnalyze_AccommodationSkipsLocalParse(t *testing.T) {
	fake := &fakeCompleter{response: `{"Pool": "Yes"}`}
	a := New(fake, "pplx-key")

	result, err := a.Analyze(context.Background(), schema.CategoryAccommodation, "Taj Lake Palace", "Udaipur", testPlace())
	require.NoError(t, err)

	assert.Equal(t, `{"Pool": "Yes"}`, result.Raw)
	assert.Nil(t, result.Parsed)
}

func TestAnalyze_TransportErrorPropagates(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("upstream 502")}
	a := New(fake, "pplx-key")

	_, err := a.Analyze(context.Background(), schema.CategoryActivity, "Trishna", "Mumbai", testPlace())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 502")
}
