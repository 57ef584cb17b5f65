package formatter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameya/tripmeta/internal/llm"
	"github.com/ameya/tripmeta/internal/places"
	"github.com/ameya/tripmeta/internal/schema"
)

type fakeCompleter struct {
	response       string
	err            error
	prompt         string
	maxTokens      int
	gotTemperature float64
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	f.prompt = prompt
	f.maxTokens = maxTokens
	f.gotTemperature = temperature
	return f.response, f.err
}

func testPlace() *places.PlaceRecord {
	return &places.PlaceRecord{
		Name:             "Amber Fort",
		FormattedAddress: "Devisinghpura, Amer, Jaipur",
		Category:         "tourist_attraction",
		Description:      "Hilltop fort with mirrored halls.",
		Rating:           4.6,
		Website:          "https://amberfort.example",
		MapsURL:          "https://maps.google.com/?cid=77",
		OpeningHours:     []string{"Monday: 8:00 AM - 5:30 PM"},
		PhotoURLs:        []string{"u1", "u2", "N/A"},
	}
}

func TestFormat_CoercesAndBackfills(t *testing.T) {
	fake := &fakeCompleter{response: "```json\n" + `{
		"Country": "India",
		"Destination L2 (City)": "Jaipur",
		"Must_Do": "Yes",
		"Kid_Friendly": "No",
		"Price_Adult_INR": "500 INR",
		"Price_Child_INR": "Free entry",
		"Duration": "2-3 hours"
	}` + "\n```"}
	f := New(fake)

	record, err := f.Format(context.Background(), schema.CategoryActivity, "Amber Fort", testPlace(), "research notes")
	require.NoError(t, err)

	// The prompt carries the place data and research text verbatim.
	assert.Contains(t, fake.prompt, "Amber Fort")
	assert.Contains(t, fake.prompt, "Devisinghpura, Amer, Jaipur")
	assert.Contains(t, fake.prompt, "research notes")
	assert.Equal(t, 2000, fake.maxTokens)
	assert.Equal(t, float64(0), fake.gotTemperature)

	// Stray string types are coerced.
	assert.Equal(t, true, record["Must_Do"])
	assert.Equal(t, false, record["Kid_Friendly"])
	assert.Equal(t, float64(500), record["Price_Adult_INR"])
	assert.Equal(t, float64(0), record["Price_Child_INR"])
	assert.Equal(t, 2.5, record["Duration"])

	// Omitted fields are back-filled.
	assert.Equal(t, "Not Available", record["Inclusions"])
	assert.Equal(t, false, record["Offbeat"])

	// The result validates against the category schema.
	assert.NoError(t, schema.For(schema.CategoryActivity).ValidateRecord(record))
}

func TestFormat_DiningNestedGroups(t *testing.T) {
	fake := &fakeCompleter{response: `{
		"Description": "Seafood institution.",
		"Alcohol_Served": "Yes",
		"Cuisine": {"Indian": "Yes", "Thai": "No"},
		"Dietary": {"Seafood_Speciality": true}
	}`}
	f := New(fake)

	record, err := f.Format(context.Background(), schema.CategoryDining, "Trishna", testPlace(), "notes")
	require.NoError(t, err)

	assert.Equal(t, 3000, fake.maxTokens)
	assert.Equal(t, true, record["Alcohol_Served"])

	cuisine := record["Cuisine"].(map[string]any)
	assert.Equal(t, true, cuisine["Indian"])
	assert.Equal(t, false, cuisine["Thai"])
	assert.Equal(t, false, cuisine["Italian"])

	vibe := record["Vibe"].(map[string]any)
	assert.Equal(t, false, vibe["Romantic_Intimate"])

	assert.NoError(t, schema.For(schema.CategoryDining).ValidateRecord(record))
}

func TestFormat_UnparseableResponse(t *testing.T) {
	fake := &fakeCompleter{response: "Sorry, I can't produce JSON right now."}
	f := New(fake)

	_, err := f.Format(context.Background(), schema.CategoryActivity, "Amber Fort", testPlace(), "notes")
	require.Error(t, err)

	var parseErr *llm.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestFormat_TransportErrorPropagates(t *testing.T) {
	fake := &fakeCompleter{err: errors.New("deployment not found")}
	f := New(fake)

	_, err := f.Format(context.Background(), schema.CategoryAccommodation, "Taj Lake Palace", testPlace(), "notes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deployment not found")
}
