package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"attorneycrm/internal/domain"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// Record is a raw Airtable record: an opaque ID plus a map of field values.
type Record struct {
	ID     string         `json:"id"`
	Fields map[string]any `json:"fields"`
}

// Client is a thin client for the Airtable REST API. It exposes the three
// operations the repositories depend on: Select, Find, and Create. All
// filtering beyond exact-formula lookups happens in memory in the services.
type Client struct {
	baseURL    string
	apiKey     string
	baseID     string
	httpClient *http.Client
}

// NewClient returns a Client for the given base. A nil httpClient falls back
// to http.DefaultClient.
func NewClient(apiKey, baseID string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		baseID:     baseID,
		httpClient: httpClient,
	}
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset"`
}

// Select returns all records in the table, following the API's offset cursor
// until the listing is exhausted.
func (c *Client) Select(ctx context.Context, table string) ([]Record, error) {
	return c.selectPages(ctx, table, "")
}

// SelectByFormula returns the records matching an Airtable filterByFormula
// expression.
func (c *Client) SelectByFormula(ctx context.Context, table, formula string) ([]Record, error) {
	return c.selectPages(ctx, table, formula)
}

func (c *Client) selectPages(ctx context.Context, table, formula string) ([]Record, error) {
	var records []Record
	offset := ""
	for {
		q := url.Values{}
		if formula != "" {
			q.Set("filterByFormula", formula)
		}
		if offset != "" {
			q.Set("offset", offset)
		}
		endpoint := c.tableURL(table)
		if len(q) > 0 {
			endpoint += "?" + q.Encode()
		}

		var page listResponse
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}
		records = append(records, page.Records...)
		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// Find returns a single record by ID. A 404 from the API maps to
// domain.ErrNotFound.
func (c *Client) Find(ctx context.Context, table, id string) (*Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodGet, c.tableURL(table)+"/"+url.PathEscape(id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create inserts a record and returns it with the store-assigned ID.
func (c *Client) Create(ctx context.Context, table string, fields map[string]any) (*Record, error) {
	body := map[string]any{"fields": fields}
	var rec Record
	if err := c.do(ctx, http.MethodPost, c.tableURL(table), body, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (c *Client) tableURL(table string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, url.PathEscape(c.baseID), url.PathEscape(table))
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, dest any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	}
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("record store request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("record store returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode record store response: %w", err)
	}
	return nil
}

// escapeFormulaString escapes a value for interpolation into a single-quoted
// filterByFormula string literal.
func escapeFormulaString(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `'`, `\'`)
}
