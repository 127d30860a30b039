// Package sheets persists extraction output to a spreadsheet-backed store.
// Each record shape appends to its own tab in a fixed column order, and
// every extraction attempt lands one row in the log tab.
package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/octobees/linkedin-extractor/api/internal/entity"
)

// Tab ranges. The column spans must match the Row() layout of each record.
const (
	profilesRange  = "Profiles!A:T"
	companiesRange = "Companies!A:P"
	postsRange     = "Posts!A:O"
	logsRange      = "Extraction Logs!A:H"

	// profileURLsRange lists the subject URLs already extracted, read back
	// by the periodic updater.
	profileURLsRange = "Profiles!A2:A"
)

// Client appends records and log entries to one spreadsheet.
type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
}

// NewClient builds a Sheets client. Credentials JSON is optional; without it
// the service falls back to application default credentials.
func NewClient(ctx context.Context, spreadsheetID, credentialsJSON string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID must not be empty")
	}

	opts := []option.ClientOption{option.WithScopes(gsheets.SpreadsheetsScope)}
	if credentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}

	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// AppendProfile appends one profile row.
func (c *Client) AppendProfile(ctx context.Context, record entity.ProfileRecord) error {
	return c.append(ctx, profilesRange, [][]any{record.Row()})
}

// AppendCompany appends one company row.
func (c *Client) AppendCompany(ctx context.Context, record entity.CompanyRecord) error {
	return c.append(ctx, companiesRange, [][]any{record.Row()})
}

// AppendPosts appends a batch of flat post rows in one call.
func (c *Client) AppendPosts(ctx context.Context, records []entity.PostRecord) error {
	if len(records) == 0 {
		return nil
	}
	rows := make([][]any, 0, len(records))
	for _, record := range records {
		rows = append(rows, record.Row())
	}
	return c.append(ctx, postsRange, rows)
}

// AppendLog appends one extraction-attempt row to the log tab.
func (c *Client) AppendLog(ctx context.Context, entry entity.ExtractionLog) error {
	return c.append(ctx, logsRange, [][]any{entry.Row()})
}

// ListProfileURLs returns the subject URLs of previously extracted profiles.
func (c *Client) ListProfileURLs(ctx context.Context) ([]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, profileURLsRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read profile urls: %w", err)
	}

	urls := make([]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		if len(row) == 0 {
			continue
		}
		if u, ok := row[0].(string); ok && u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

func (c *Client) append(ctx context.Context, sheetRange string, rows [][]any) error {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = row
	}

	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, sheetRange, &gsheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append to %s: %w", sheetRange, err)
	}
	return nil
}
