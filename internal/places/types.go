package places

// PhotoCount is the fixed number of photo URL slots in a PlaceRecord.
// Shorter photo lists are padded with "N/A".
const PhotoCount = 3

// NotAvailable is the placeholder for fields the search API did not return.
const NotAvailable = "N/A"

// Review pairs a review text with its publish timestamp.
type Review struct {
	Text        string `json:"text"`
	PublishTime string `json:"publish_time"`
}

// PlaceRecord is the normalized output of a places text search. It is
// created fresh per request and never mutated after being returned.
//
// Rating is a float64 when the API returned one, otherwise the string
// "N/A"; OpeningHours is a []string of per-weekday descriptions or "N/A".
// The loose typing mirrors the wire contract the formatter prompt embeds.
type PlaceRecord struct {
	Name             string   `json:"Name"`
	FormattedAddress string   `json:"Formatted Address"`
	Category         string   `json:"Category"`
	Description      string   `json:"Description"`
	Rating           any      `json:"google_rating"`
	Website          string   `json:"website"`
	MapsURL          string   `json:"google_maps_url"`
	OpeningHours     any      `json:"opening_hours"`
	PhotoURLs        []string `json:"photo_urls"`
	Reviews          []Review `json:"reviews"`
}

// AsMap returns the record keyed the way downstream merge tables and the
// formatter prompt expect.
func (r *PlaceRecord) AsMap() map[string]any {
	return map[string]any{
		"Name":              r.Name,
		"Formatted Address": r.FormattedAddress,
		"Category":          r.Category,
		"Description":       r.Description,
		"google_rating":     r.Rating,
		"website":           r.Website,
		"google_maps_url":   r.MapsURL,
		"opening_hours":     r.OpeningHours,
		"photo_urls":        r.PhotoURLs,
		"reviews":           r.Reviews,
	}
}

// HoursList returns the opening hours as a string slice, or nil when the
// API returned none.
func (r *PlaceRecord) HoursList() []string {
	hours, _ := r.OpeningHours.([]string)
	return hours
}
