package export

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameya/tripmeta/internal/schema"
)

// fakeEnricher returns canned records keyed by entity name.
type fakeEnricher struct {
	records map[string]map[string]any
	errs    map[string]error
	calls   []string
}

func (f *fakeEnricher) Enrich(_ context.Context, _ schema.Category, name, _ string) (map[string]any, error) {
	f.calls = append(f.calls, name)
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	return f.records[name], nil
}

func activityRecord(name string) map[string]any {
	rec := map[string]any{}
	schema.For(schema.CategoryActivity).Backfill(rec)
	rec["Name"] = name
	rec["Country"] = "India"
	rec["Destination L2 (City)"] = "Jaipur"
	rec["Must_Do"] = true
	rec["Duration"] = 2.5
	rec["Price_Adult_INR"] = float64(500)
	rec["google_rating"] = 4.6
	rec["website"] = "https://example.com"
	rec["google_maps_url"] = "https://maps.google.com/?cid=5"
	rec["photo_urls"] = []string{"https://example.com/p1.jpg", "N/A", "N/A"}
	return rec
}

func parseCSV(t *testing.T, out string) ([]string, [][]string) {
	t.Helper()
	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	return rows[0], rows[1:]
}

func cell(t *testing.T, header []string, row []string, name string) string {
	t.Helper()
	for i, h := range header {
		if h == name {
			return row[i]
		}
	}
	t.Fatalf("column %q not found", name)
	return ""
}

func TestRun_Activity(t *testing.T) {
	enricher := &fakeEnricher{
		records: map[string]map[string]any{
			"Amber Fort":  activityRecord("Amber Fort"),
			"City Palace": activityRecord("City Palace"),
		},
	}

	in := strings.NewReader("activity name,city\nAmber Fort,Jaipur\nCity Palace,Jaipur\n")
	var out strings.Builder
	var progress []RowResult

	err := Run(context.Background(), enricher, schema.CategoryActivity, in, &out,
		func(r RowResult) { progress = append(progress, r) })
	require.NoError(t, err)

	// Rows are processed strictly in input order.
	assert.Equal(t, []string{"Amber Fort", "City Palace"}, enricher.calls)

	header, rows := parseCSV(t, out.String())
	require.Len(t, rows, 2)
	assert.Equal(t, "Name", header[4])

	assert.Equal(t, "Amber Fort", cell(t, header, rows[0], "Name"))
	assert.Equal(t, "India", cell(t, header, rows[0], "Country"))
	assert.Equal(t, "true", cell(t, header, rows[0], "Must Do"))
	assert.Equal(t, "2.5", cell(t, header, rows[0], "Duration"))
	assert.Equal(t, "500", cell(t, header, rows[0], "Price for Adults"))
	assert.Equal(t, "4.6", cell(t, header, rows[0], "Google Rating"))
	assert.Equal(t, "https://example.com/p1.jpg", cell(t, header, rows[0], "Photo 1"))

	// "N/A" photo padding renders as an empty cell.
	assert.Equal(t, "", cell(t, header, rows[0], "Photo 2"))
	assert.Equal(t, "", cell(t, header, rows[0], "Photo 3"))

	require.Len(t, progress, 2)
	assert.Equal(t, 1, progress[0].Row)
	assert.Equal(t, 2, progress[0].Total)
	assert.NoError(t, progress[0].Err)
}

func TestRun_FailedRowIsEmptyAndBatchContinues(t *testing.T) {
	enricher := &fakeEnricher{
		records: map[string]map[string]any{
			"Amber Fort": activityRecord("Amber Fort"),
		},
		errs: map[string]error{
			"Ghost Fort": errors.New("no place found"),
		},
	}

	in := strings.NewReader("activity name,city\nGhost Fort,Nowhere\nAmber Fort,Jaipur\n")
	var out strings.Builder

	err := Run(context.Background(), enricher, schema.CategoryActivity, in, &out, nil)
	require.NoError(t, err)

	header, rows := parseCSV(t, out.String())
	require.Len(t, rows, 2)

	// Failed row carries only the input identity.
	assert.Equal(t, "Ghost Fort", cell(t, header, rows[0], "Name"))
	assert.Equal(t, "Nowhere", cell(t, header, rows[0], "Destination L2 (City)"))
	assert.Equal(t, "", cell(t, header, rows[0], "Country"))
	assert.Equal(t, "", cell(t, header, rows[0], "Must Do"))

	// The batch continued past the failure.
	assert.Equal(t, "Amber Fort", cell(t, header, rows[1], "Name"))
}

func TestRun_DiningFlattensGroupsAndHours(t *testing.T) {
	rec := map[string]any{}
	schema.For(schema.CategoryDining).Backfill(rec)
	rec["Name"] = "Trishna"
	rec["Cuisine"].(map[string]any)["Indian"] = true
	rec["Vibe"].(map[string]any)["Romantic_Intimate"] = true
	rec["opening_hours"] = []string{"Monday: Closed", "Tuesday: 12:00 PM - 11:00 PM"}
	rec["Alcohol_Served"] = true

	enricher := &fakeEnricher{records: map[string]map[string]any{"Trishna": rec}}

	in := strings.NewReader("restaurant name,city\nTrishna,Mumbai\n")
	var out strings.Builder

	err := Run(context.Background(), enricher, schema.CategoryDining, in, &out, nil)
	require.NoError(t, err)

	header, rows := parseCSV(t, out.String())
	require.Len(t, rows, 1)

	assert.Equal(t, "true", cell(t, header, rows[0], "Indian"))
	assert.Equal(t, "false", cell(t, header, rows[0], "Thai"))
	assert.Equal(t, "true", cell(t, header, rows[0], "Romantic / Intimate"))
	assert.Equal(t, "true", cell(t, header, rows[0], "Alcohol Served?"))
	assert.Equal(t, "Monday: Closed | Tuesday: 12:00 PM - 11:00 PM", cell(t, header, rows[0], "Timings"))
}

func TestRun_MissingRequiredColumns(t *testing.T) {
	enricher := &fakeEnricher{}

	in := strings.NewReader("name,town\nX,Y\n")
	var out strings.Builder

	err := Run(context.Background(), enricher, schema.CategoryActivity, in, &out, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"activity name"`)
	assert.Contains(t, err.Error(), `"city"`)
	assert.Empty(t, enricher.calls)
}

func TestRun_EmptyInput(t *testing.T) {
	err := Run(context.Background(), &fakeEnricher{}, schema.CategoryActivity,
		strings.NewReader(""), &strings.Builder{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}
