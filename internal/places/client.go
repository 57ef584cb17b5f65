// Package places provides a client for the places text-search API and the
// normalization of its responses into PlaceRecords.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/phuslu/log"
)

// DefaultEndpoint is the production places API base URL.
const DefaultEndpoint = "https://places.googleapis.com"

// DefaultTimeout is the HTTP request timeout for search calls.
const DefaultTimeout = 30 * time.Second

// maxResultCount caps how many candidates the API may return; only the
// first is ever consumed.
const maxResultCount = 20

// fieldMask limits the response to the attributes the pipeline extracts.
const fieldMask = "places.displayName,places.formattedAddress,places.types," +
	"places.primaryType,places.rating,places.userRatingCount,places.priceLevel," +
	"places.businessStatus,places.websiteUri,places.regularOpeningHours," +
	"places.photos,places.googleMapsUri,places.editorialSummary,places.reviews"

// Client queries the places text-search endpoint.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     log.Logger
}

// NewClient creates a places client. endpoint may be empty to use the
// production API; tests point it at a local server.
func NewClient(endpoint, apiKey string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     log.Logger{Level: log.InfoLevel, Context: log.NewContext(nil).Str("client", "places").Value()},
	}
}

type searchRequest struct {
	TextQuery      string `json:"textQuery"`
	MaxResultCount int    `json:"maxResultCount"`
}

type searchResponse struct {
	Places []placePayload `json:"places"`
}

type placePayload struct {
	DisplayName *struct {
		Text string `json:"text"`
	} `json:"displayName"`
	FormattedAddress string   `json:"formattedAddress"`
	Types            []string `json:"types"`
	Rating           *float64 `json:"rating"`
	WebsiteURI       string   `json:"websiteUri"`
	GoogleMapsURI    string   `json:"googleMapsUri"`
	EditorialSummary *struct {
		Text string `json:"text"`
	} `json:"editorialSummary"`
	GenerativeSummary *struct {
		Text string `json:"text"`
	} `json:"generativeSummary"`
	RegularOpeningHours *struct {
		WeekdayDescriptions []string `json:"weekdayDescriptions"`
	} `json:"regularOpeningHours"`
	Photos []struct {
		Name string `json:"name"`
	} `json:"photos"`
	Reviews []struct {
		Text struct {
			Text string `json:"text"`
		} `json:"text"`
		PublishTime string `json:"publishTime"`
	} `json:"reviews"`
}

// Search runs a text search for "{name} in {city}" and normalizes the first
// candidate. Zero candidates yield (nil, nil) - not found is a signal, not
// an error. Transport and decode failures return typed errors.
func (c *Client) Search(ctx context.Context, name, city string) (*PlaceRecord, error) {
	query := fmt.Sprintf("%s in %s", name, city)

	body, err := json.Marshal(searchRequest{TextQuery: query, MaxResultCount: maxResultCount})
	if err != nil {
		return nil, &TransportError{Message: "failed to encode search request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/places:searchText", bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Str("query", query).Msg("places search returned non-OK status")
		return nil, &TransportError{
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	var parsed searchResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, &DecodeError{Message: "failed to decode search response", Cause: err}
	}

	if len(parsed.Places) == 0 {
		c.logger.Info().Str("query", query).Msg("no places found")
		return nil, nil
	}

	record := c.normalize(&parsed.Places[0])
	c.logger.Debug().Str("query", query).Str("address", record.FormattedAddress).Msg("place resolved")
	return record, nil
}

// normalize converts the first API candidate into a PlaceRecord.
func (c *Client) normalize(p *placePayload) *PlaceRecord {
	record := &PlaceRecord{
		Name:             NotAvailable,
		FormattedAddress: orNA(p.FormattedAddress),
		Category:         NotAvailable,
		Description:      NotAvailable,
		Rating:           NotAvailable,
		Website:          NotAvailable,
		MapsURL:          orNA(p.GoogleMapsURI),
		OpeningHours:     NotAvailable,
	}

	if p.DisplayName != nil && p.DisplayName.Text != "" {
		record.Name = p.DisplayName.Text
	}

	if len(p.Types) > 0 {
		record.Category = strings.Join(p.Types, ", ")
	}

	// Editorial summary wins over a generative one.
	if p.EditorialSummary != nil && p.EditorialSummary.Text != "" {
		record.Description = p.EditorialSummary.Text
	} else if p.GenerativeSummary != nil && p.GenerativeSummary.Text != "" {
		record.Description = p.GenerativeSummary.Text
	}

	if p.Rating != nil {
		record.Rating = *p.Rating
	}

	if p.WebsiteURI != "" {
		record.Website = cleanWebsite(p.WebsiteURI)
	}

	if p.RegularOpeningHours != nil && len(p.RegularOpeningHours.WeekdayDescriptions) > 0 {
		record.OpeningHours = normalizeHours(p.RegularOpeningHours.WeekdayDescriptions)
	}

	photoURLs := make([]string, 0, PhotoCount)
	for _, photo := range p.Photos {
		if len(photoURLs) == PhotoCount {
			break
		}
		if photo.Name != "" {
			photoURLs = append(photoURLs, c.photoURL(photo.Name))
		}
	}
	for len(photoURLs) < PhotoCount {
		photoURLs = append(photoURLs, NotAvailable)
	}
	record.PhotoURLs = photoURLs

	reviews := make([]Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		if r.Text.Text == "" {
			continue
		}
		publishTime := r.PublishTime
		if publishTime == "" {
			publishTime = NotAvailable
		}
		reviews = append(reviews, Review{Text: r.Text.Text, PublishTime: publishTime})
	}
	record.Reviews = reviews

	return record
}

// photoURL converts a photo resource name into a fully-qualified media URL.
func (c *Client) photoURL(photoName string) string {
	return fmt.Sprintf("%s/v1/%s/media?maxHeightPx=800&maxWidthPx=800&key=%s",
		c.endpoint, photoName, c.apiKey)
}

func orNA(s string) string {
	if s == "" {
		return NotAvailable
	}
	return s
}
