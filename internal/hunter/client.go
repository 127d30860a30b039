// Package hunter implements the optional enrichment lookup: it guesses a
// company domain from the extracted company name and asks the email-finder
// API for a contact address. Enrichment is best-effort; callers swallow its
// failures and leave the record fields empty.
package hunter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.hunter.io"

// defaultPhoneRegion is assumed when the finder returns a national-format
// phone number without a country prefix.
const defaultPhoneRegion = "US"

var whitespacePattern = regexp.MustCompile(`\s+`)

// Contact is the enrichment result. Either field may be empty.
type Contact struct {
	Email string
	Phone string
}

// Client calls the email-finder API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient builds an enrichment client. A nil http.Client gets a sane
// timeout.
func NewClient(client *http.Client, baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type finderResponse struct {
	Data struct {
		Email       string `json:"email"`
		PhoneNumber string `json:"phone_number"`
	} `json:"data"`
}

// FindContact looks up a contact for the given domain and name pair. A
// lookup that finds nothing returns an empty Contact and no error.
func (c *Client) FindContact(ctx context.Context, domain, firstName, lastName string) (Contact, error) {
	query := url.Values{}
	query.Set("domain", domain)
	query.Set("first_name", firstName)
	query.Set("last_name", lastName)
	query.Set("api_key", c.apiKey)

	endpoint := c.baseURL + "/v2/email-finder?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Contact{}, fmt.Errorf("create finder request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Contact{}, fmt.Errorf("email finder failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return Contact{}, fmt.Errorf("email finder returned status %d", resp.StatusCode)
	}

	var payload finderResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Contact{}, fmt.Errorf("decode finder response: %w", err)
	}

	return Contact{
		Email: strings.TrimSpace(payload.Data.Email),
		Phone: normalizePhone(payload.Data.PhoneNumber),
	}, nil
}

// DomainGuess derives a lookup domain from a company name: lowercase, strip
// whitespace, append ".com", then IDNA-normalize so non-ASCII company names
// still produce a resolvable domain. Returns "" when nothing usable remains.
func DomainGuess(company string) string {
	name := whitespacePattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(company)), "")
	if name == "" {
		return ""
	}
	domain := name + ".com"
	normalized, err := idna.Lookup.ToASCII(domain)
	if err != nil {
		return ""
	}
	return normalized
}

// SplitName splits a display name into the first and last tokens used by the
// finder API. A single-token name is used for both.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], parts[len(parts)-1]
}

// normalizePhone validates a finder phone number and formats it as E.164.
// Invalid or unparseable numbers are dropped rather than stored raw.
func normalizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, defaultPhoneRegion)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
