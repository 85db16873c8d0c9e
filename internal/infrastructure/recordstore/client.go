// Package recordstore adapts the repository ports onto the external
// generic REST record store: plain JSON collections at /customers and
// /invoices with create/read/replace/patch/delete semantics and store-
// assigned ids. Any non-2xx response is a uniform failure; only a 404 on
// a single record carries meaning (not found).
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mcproperty/invoicing/internal/domain"
)

// Client is the shared HTTP client for the record store. Uses net/http
// directly; every request is context-aware and bounded by the client
// timeout.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds the client for the store at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do issues one request. body, when non-nil, is JSON-encoded; out, when
// non-nil, receives the decoded response body. A 404 maps to
// domain.ErrNotFound; any other non-2xx maps to domain.ErrStoreUnavailable.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("record store: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("record store: build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrStoreUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrStoreUnavailable, method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("record store: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}
