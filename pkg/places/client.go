package places

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://places.googleapis.com/v1"

	searchFieldMask       = "places.displayName,places.formattedAddress,places.types,places.rating,places.photos"
	autocompleteFieldMask = "suggestions.placePrediction.text,suggestions.placePrediction.placeId"

	httpTimeout = 10 * time.Second
)

var ErrMissingAPIKey = errors.New("places: api key not configured")

type Place struct {
	DisplayName      LocalizedText `json:"displayName"`
	FormattedAddress string        `json:"formattedAddress"`
	Types            []string      `json:"types"`
	Rating           float64       `json:"rating"`
	Photos           []Photo       `json:"photos"`
}

type LocalizedText struct {
	Text         string `json:"text"`
	LanguageCode string `json:"languageCode,omitempty"`
}

type Photo struct {
	Name     string `json:"name"`
	WidthPx  int    `json:"widthPx,omitempty"`
	HeightPx int    `json:"heightPx,omitempty"`
}

type Suggestion struct {
	PlaceID string `json:"placeId"`
	Text    string `json:"text"`
}

// Client is a minimal Google Places API (New) client for text search and autocomplete.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewClient(apiKey string) *Client {
	return NewClientWithURL(DefaultBaseURL, apiKey)
}

// NewClientWithURL points the client at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, client: &http.Client{Timeout: httpTimeout}}
}

// PhotoURL is the media endpoint for a photo resource name.
func (c *Client) PhotoURL(photoName string) string {
	return fmt.Sprintf("%s/%s/media?key=%s&maxHeightPx=1000", c.baseURL, photoName, c.apiKey)
}

func (c *Client) SearchText(ctx context.Context, query string, maxResults int) ([]Place, error) {
	body := map[string]any{"textQuery": query, "maxResultCount": maxResults}

	var raw struct {
		Places []Place `json:"places"`
	}
	if err := c.post(ctx, "/places:searchText", searchFieldMask, body, &raw); err != nil {
		return nil, fmt.Errorf("places search %q: %w", query, err)
	}
	return raw.Places, nil
}

func (c *Client) Autocomplete(ctx context.Context, input string) ([]Suggestion, error) {
	var raw struct {
		Suggestions []struct {
			PlacePrediction *struct {
				PlaceID string        `json:"placeId"`
				Text    LocalizedText `json:"text"`
			} `json:"placePrediction"`
		} `json:"suggestions"`
	}
	if err := c.post(ctx, "/places:autocomplete", autocompleteFieldMask, map[string]any{"input": input}, &raw); err != nil {
		return nil, fmt.Errorf("places autocomplete %q: %w", input, err)
	}

	out := make([]Suggestion, 0, len(raw.Suggestions))
	for _, s := range raw.Suggestions {
		if s.PlacePrediction == nil {
			continue
		}
		out = append(out, Suggestion{PlaceID: s.PlacePrediction.PlaceID, Text: s.PlacePrediction.Text.Text})
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path, fieldMask string, body any, dst any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("POST %s returned status %d: %s", path, resp.StatusCode, bytes.TrimSpace(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
