// Package exa implements the content-source client. Given a query string it
// returns raw documents whose text feeds the extraction engine.
package exa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
)

// DefaultBaseURL is the production search endpoint.
const DefaultBaseURL = "https://api.exa.ai"

// Client calls the Exa search API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient builds a search client. A nil http.Client gets a sane timeout.
func NewClient(client *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type searchRequest struct {
	Query      string         `json:"query"`
	Type       string         `json:"type"`
	NumResults int            `json:"numResults"`
	Contents   searchContents `json:"contents"`
}

type searchContents struct {
	Text bool `json:"text"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	URL   string `json:"url"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

// Search runs a keyword search and returns the matching documents with their
// page text. An empty result list is not an error; callers decide whether a
// subject without content is a failure.
func (c *Client) Search(ctx context.Context, query string, numResults int) ([]entity.Document, error) {
	body, err := json.Marshal(searchRequest{
		Query:      query,
		Type:       "keyword",
		NumResults: numResults,
		Contents:   searchContents{Text: true},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("content search failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("content search returned status %d: %s", resp.StatusCode, readError(resp.Body))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	docs := make([]entity.Document, 0, len(payload.Results))
	for _, r := range payload.Results {
		docs = append(docs, entity.Document{URL: r.URL, Text: r.Text, ImageURL: r.Image})
	}
	return docs, nil
}

func readError(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 2048))
	if err != nil || len(data) == 0 {
		return "no error body"
	}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(data)
}
