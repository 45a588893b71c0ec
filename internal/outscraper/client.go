// Package outscraper is a minimal client for the Outscraper Google Maps
// search API, used only by the importer.
package outscraper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://api.app.outscraper.com"

// Place is the subset of an Outscraper Google Maps result the importer uses.
type Place struct {
	Name        string   `json:"name"`
	FullAddress string   `json:"full_address"`
	City        string   `json:"city"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Phone       string   `json:"phone"`
	Site        string   `json:"site"`
	PlaceID     string   `json:"place_id"`
	Rating      *float64 `json:"rating"`
	Type        string   `json:"type"`
	Subtypes    []string `json:"subtypes"`
}

// MapsURL builds a Google Maps link from the place id, if present.
func (p *Place) MapsURL() string {
	if p.PlaceID == "" {
		return ""
	}
	return "https://www.google.com/maps/place/?q=place_id:" + p.PlaceID
}

type searchResponse struct {
	Data [][]Place `json:"data"`
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 120 * time.Second},
	}
}

// GoogleMapsSearch runs a synchronous places search. One query returns up to
// limit places.
func (c *Client) GoogleMapsSearch(ctx context.Context, query, language, region string, limit int) ([]Place, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("language", language)
	params.Set("region", region)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("async", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/maps/search-v3?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("outscraper: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("outscraper: unexpected status %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("outscraper: decode response: %w", err)
	}

	if len(body.Data) == 0 {
		return nil, nil
	}
	return body.Data[0], nil
}
