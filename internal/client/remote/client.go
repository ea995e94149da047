// Package remote is the client's sole network boundary: a thin typed wrapper
// over the four verbs the record store understands (list, create, patch,
// delete). Calls are fire-once; no retries, no caching.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dmitrijs2005/jobkeeper/internal/logging"
)

// Client issues JSON requests against the record store.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// NewClient constructs a Client for the store at baseURL (scheme://host:port,
// no trailing slash). timeout bounds each individual call.
func NewClient(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// List performs a GET against path with the given query parameters and
// decodes the JSON array response into out.
func (c *Client) List(ctx context.Context, path string, params url.Values, out any) error {
	p := path
	if len(params) > 0 {
		p = path + "?" + params.Encode()
	}
	return c.do(ctx, http.MethodGet, p, nil, out)
}

// Create performs a POST with a JSON body and decodes the created record
// into out.
func (c *Client) Create(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch performs a PATCH with a JSON body of partial fields and decodes the
// updated record into out.
func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete performs a DELETE against path. No response body is expected.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, verb string, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", verb, path, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, verb, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", verb, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request transport failure", "verb", verb, "path", path, "error", err)
		return &RemoteError{Verb: verb, Path: path, cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn(ctx, "request rejected", "verb", verb, "path", path, "status", resp.StatusCode)
		return &RemoteError{Verb: verb, Path: path, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", verb, path, err)
	}
	return nil
}
