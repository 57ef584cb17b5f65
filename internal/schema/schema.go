// Package schema defines the output contract of each entity category as
// data: field lists, nested boolean groups, default values, and the rules
// for merging place-search fields into the formatted record. The formatter
// prompts, local back-fill, CSV flattening, and JSON Schema validation are
// all driven from these tables so the three pipelines never diverge.
package schema

// Category identifies one of the three enrichment pipelines.
type Category string

// Supported entity categories.
const (
	CategoryActivity      Category = "activity"
	CategoryDining        Category = "dining"
	CategoryAccommodation Category = "accommodation"
)

// Categories lists all supported categories in a stable order.
func Categories() []Category {
	return []Category{CategoryActivity, CategoryDining, CategoryAccommodation}
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryActivity, CategoryDining, CategoryAccommodation:
		return true
	}
	return false
}

// Group is a nested object of boolean flags inside a record (dining only).
type Group struct {
	Name   string
	Fields []string
}

// Table describes one category's output schema and merge behavior.
type Table struct {
	Category Category

	// TextFields are top-level string fields; absent ones are back-filled
	// with TextDefault.
	TextFields  []string
	TextDefault string

	// BoolFields are top-level boolean fields, back-filled with false.
	BoolFields []string

	// NumberFields are numeric fields, back-filled with 0. Currency text
	// like "500 INR" or "Free entry" is coerced locally.
	NumberFields []string

	// DurationFields are numeric fields expressed in decimal hours; vague
	// phrases ("half day", "2-3 hours") are coerced locally.
	DurationFields []string

	// Groups are nested all-boolean objects; missing members are
	// back-filled recursively.
	Groups []Group

	// MergeDeny lists PlaceRecord keys NOT copied into the final record
	// because the formatter owns refined versions of them. When empty,
	// MergeAllow is used instead as an explicit allowlist.
	MergeDeny  []string
	MergeAllow []string

	// InputNameColumn is the required name column in batch CSV input.
	InputNameColumn string

	// FormatMaxTokens caps the formatting model's completion length.
	FormatMaxTokens int
}

var tables = map[Category]Table{
	CategoryActivity: {
		Category: CategoryActivity,
		TextFields: []string{
			"Country",
			"Destination L1 (State)",
			"Destination L2 (City)",
			"Destination L3 (Area)",
			"Category",
			"Description",
			"Timings",
			"Season_Operational_Months",
			"Inclusions",
			"Exclusions",
		},
		TextDefault:    "Not Available",
		NumberFields:   []string{"Price_Adult_INR", "Price_Child_INR"},
		DurationFields: []string{"Duration"},
		BoolFields: []string{
			"Must_Do", "Group_Friendly", "Offbeat", "Historic_Cultural",
			"Party", "Pet_Friendly", "Adventurous", "Kid_Friendly",
			"Romantic", "Wellness_Relaxation", "Senior_Citizen_Friendly",
		},
		MergeDeny:       []string{"Category", "Description", "reviews", "Formatted Address"},
		InputNameColumn: "activity name",
		FormatMaxTokens: 2000,
	},
	CategoryDining: {
		Category: CategoryDining,
		TextFields: []string{
			"Country",
			"Destination L1 (State)",
			"Destination L2 (City)",
			"Destination L3 (Area)",
			"Description",
			"Recommended_Dishes",
		},
		TextDefault: "N/A",
		BoolFields: []string{
			"Private_Dining", "Party", "Reservation_Recommended", "Alcohol_Served",
		},
		Groups: []Group{
			{Name: "Meals_Served", Fields: []string{
				"Breakfast", "Lunch", "Dinner", "Late_Night", "24_Hours",
			}},
			{Name: "Service_Style", Fields: []string{
				"Michelin_Star", "Fine_Dining", "Casual_Dining", "Bistro",
				"Cafe", "Bakery", "Breweries", "Farm_to_Table",
				"Cocktail_Bars", "Speakeasys", "Tapas_Bar", "Rooftop_Bar",
				"Dessert_Spot",
			}},
			{Name: "Cuisine", Fields: []string{
				"Fast_Food", "Modern_Indian", "Indian", "Continental",
				"Finger_Food", "Burmese", "Peruvian", "Lebanese", "Afghan",
				"Malaysian", "Vietnamese", "Pan_Asian", "Mediterranean",
				"Thai", "Italian", "Japanese", "Mexican", "Modern_European",
				"Contemporary_Dining", "Molecular_Gastronomy",
			}},
			{Name: "Dietary", Fields: []string{
				"Vegetarian_Non_Vegetarian", "Vegetarian", "Vegan_Options",
				"Seafood_Speciality",
			}},
			{Name: "Guest_Persona", Fields: []string{
				"Couple_Friendly", "Family_Friendly", "Especially_For_Kids",
				"No_Kids_Allowed", "Senior_Friendly", "Pet_Friendly",
			}},
			{Name: "Vibe", Fields: []string{
				"Romantic_Intimate", "Refined_Elegant", "Luxurious_Formal",
				"Bohemian_Playful", "Modern_Chic", "Vibrant_Lively",
				"Relaxed_Cozy",
			}},
		},
		MergeDeny:       []string{"Category", "Description", "reviews", "Formatted Address"},
		InputNameColumn: "restaurant name",
		FormatMaxTokens: 3000,
	},
	CategoryAccommodation: {
		Category: CategoryAccommodation,
		TextFields: []string{
			"Country",
			"Destination L1 (State)",
			"Destination L2 (City)",
			"Destination L3 (Area)",
			"Category",
			"Name",
			"Description",
			"Google Rating",
		},
		TextDefault: "N/A",
		BoolFields: []string{
			"Pool", "Pet Friendly", "View", "Kid Friendly", "Romantic",
			"Senior Citizen Friendly",
		},
		MergeAllow:      []string{"website", "photo_urls", "google_maps_url"},
		InputNameColumn: "accommodation name",
		FormatMaxTokens: 2000,
	},
}

// For returns the schema table for a category. It panics on an unknown
// category; callers validate categories at the CLI boundary.
func For(cat Category) Table {
	t, ok := tables[cat]
	if !ok {
		panic("schema: unknown category " + string(cat))
	}
	return t
}

// Backfill ensures every required key is present in rec, substituting the
// documented default for anything the model omitted. Nested groups are
// back-filled member by member. The input map is modified in place.
func (t Table) Backfill(rec map[string]any) {
	for _, f := range t.TextFields {
		if _, ok := rec[f]; !ok {
			rec[f] = t.TextDefault
		}
	}
	for _, f := range t.BoolFields {
		if _, ok := rec[f]; !ok {
			rec[f] = false
		}
	}
	for _, f := range append(append([]string{}, t.NumberFields...), t.DurationFields...) {
		if _, ok := rec[f]; !ok {
			rec[f] = float64(0)
		}
	}
	for _, g := range t.Groups {
		nested, ok := rec[g.Name].(map[string]any)
		if !ok {
			nested = make(map[string]any, len(g.Fields))
			rec[g.Name] = nested
		}
		for _, f := range g.Fields {
			if _, ok := nested[f]; !ok {
				nested[f] = false
			}
		}
	}
}

// Coerce normalizes model-typed values in place: "Yes"/"No" strings become
// booleans, currency/duration text becomes numbers. Values that cannot be
// coerced are left untouched so Backfill and validation can flag them.
func (t Table) Coerce(rec map[string]any) {
	for _, f := range t.BoolFields {
		if v, ok := rec[f]; ok {
			if b, ok := CoerceBool(v); ok {
				rec[f] = b
			}
		}
	}
	for _, f := range t.NumberFields {
		if v, ok := rec[f]; ok {
			if n, ok := CoerceNumber(v); ok {
				rec[f] = n
			}
		}
	}
	for _, f := range t.DurationFields {
		if v, ok := rec[f]; ok {
			if n, ok := CoerceDuration(v); ok {
				rec[f] = n
			}
		}
	}
	for _, g := range t.Groups {
		nested, ok := rec[g.Name].(map[string]any)
		if !ok {
			continue
		}
		for _, f := range g.Fields {
			if v, ok := nested[f]; ok {
				if b, ok := CoerceBool(v); ok {
					nested[f] = b
				}
			}
		}
	}
}
