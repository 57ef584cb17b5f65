package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor_KnownCategories(t *testing.T) {
	for _, cat := range Categories() {
		table := For(cat)
		assert.Equal(t, cat, table.Category)
		assert.NotEmpty(t, table.TextFields)
		assert.NotEmpty(t, table.InputNameColumn)
		assert.Positive(t, table.FormatMaxTokens)
	}
}

func TestFor_UnknownCategoryPanics(t *testing.T) {
	assert.Panics(t, func() { For(Category("museum")) })
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryActivity.Valid())
	assert.True(t, CategoryDining.Valid())
	assert.True(t, CategoryAccommodation.Valid())
	assert.False(t, Category("hotel").Valid())
	assert.False(t, Category("").Valid())
}

func TestBackfill_Activity(t *testing.T) {
	table := For(CategoryActivity)
	rec := map[string]any{
		"Country":  "India",
		"Must_Do":  true,
		"Duration": 2.5,
	}

	table.Backfill(rec)

	// Provided values are untouched.
	assert.Equal(t, "India", rec["Country"])
	assert.Equal(t, true, rec["Must_Do"])
	assert.Equal(t, 2.5, rec["Duration"])

	// Omitted fields get their documented defaults.
	assert.Equal(t, "Not Available", rec["Description"])
	assert.Equal(t, "Not Available", rec["Timings"])
	assert.Equal(t, false, rec["Romantic"])
	assert.Equal(t, float64(0), rec["Price_Adult_INR"])
	assert.Equal(t, float64(0), rec["Price_Child_INR"])
}

func TestBackfill_DiningGroups(t *testing.T) {
	table := For(CategoryDining)
	rec := map[string]any{
		"Cuisine": map[string]any{"Italian": true},
	}

	table.Backfill(rec)

	// Partially present groups get their missing members.
	cuisine, ok := rec["Cuisine"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, cuisine["Italian"])
	assert.Equal(t, false, cuisine["Thai"])

	// Absent groups are created whole.
	meals, ok := rec["Meals_Served"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, meals["Breakfast"])
	assert.Equal(t, false, meals["24_Hours"])

	// Dining text default differs from the activity default.
	assert.Equal(t, "N/A", rec["Recommended_Dishes"])
}

func TestCoerce_Activity(t *testing.T) {
	table := For(CategoryActivity)
	rec := map[string]any{
		"Must_Do":         "Yes",
		"Kid_Friendly":    "No",
		"Price_Adult_INR": "500 INR",
		"Price_Child_INR": "Free entry",
		"Duration":        "2-3 hours",
		"Description":     "A grand fort.",
	}

	table.Coerce(rec)

	assert.Equal(t, true, rec["Must_Do"])
	assert.Equal(t, false, rec["Kid_Friendly"])
	assert.Equal(t, float64(500), rec["Price_Adult_INR"])
	assert.Equal(t, float64(0), rec["Price_Child_INR"])
	assert.Equal(t, 2.5, rec["Duration"])
	assert.Equal(t, "A grand fort.", rec["Description"])
}

func TestCoerce_DiningNestedGroups(t *testing.T) {
	table := For(CategoryDining)
	rec := map[string]any{
		"Alcohol_Served": "yes",
		"Dietary": map[string]any{
			"Vegetarian":    "Yes",
			"Vegan_Options": "No",
		},
	}

	table.Coerce(rec)

	assert.Equal(t, true, rec["Alcohol_Served"])
	dietary := rec["Dietary"].(map[string]any)
	assert.Equal(t, true, dietary["Vegetarian"])
	assert.Equal(t, false, dietary["Vegan_Options"])
}

func TestValidateRecord_CoercedAndBackfilledPasses(t *testing.T) {
	for _, cat := range Categories() {
		table := For(cat)
		rec := map[string]any{}
		table.Coerce(rec)
		table.Backfill(rec)
		assert.NoError(t, table.ValidateRecord(rec), "category %s", cat)
	}
}

func TestValidateRecord_RejectsStringBooleans(t *testing.T) {
	table := For(CategoryActivity)
	rec := map[string]any{}
	table.Backfill(rec)
	rec["Must_Do"] = "Yes"

	err := table.ValidateRecord(rec)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "Must_Do", validationErr.Errors[0].Field)
}

func TestValidateRecord_RejectsMissingGroup(t *testing.T) {
	table := For(CategoryDining)
	rec := map[string]any{}
	table.Backfill(rec)
	delete(rec, "Vibe")

	err := table.ValidateRecord(rec)
	require.Error(t, err)
}

func TestValidateRecord_AllowsMergedPlaceFields(t *testing.T) {
	table := For(CategoryActivity)
	rec := map[string]any{}
	table.Backfill(rec)
	rec["Name"] = "City Palace"
	rec["website"] = "https://example.com"
	rec["photo_urls"] = []string{"https://example.com/p.jpg", "N/A", "N/A"}
	rec["google_rating"] = 4.6

	assert.NoError(t, table.ValidateRecord(rec))
}
