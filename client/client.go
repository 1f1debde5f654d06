// Package client provides an HTTP API client with per-resource state
// containers. Each container tracks the last fetched items, the current
// selection, a loading flag, and the most recent error behind a mutex,
// so callers can bind UIs or tooling directly to client state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// Doer executes a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource supplies the bearer token for authenticated requests.
// Returning an empty string sends the request unauthenticated.
type TokenSource func() string

// Client is the API entry point. Resource stores hang off it and share
// its transport, base URL, and token source.
type Client struct {
	http    Doer
	baseURL string
	token   TokenSource

	Campaigns    *Campaigns
	Artists      *Artists
	Outreach     *OutreachCampaigns
	Transactions *Transactions
}

// Option configures a Client.
type Option func(*Client)

// WithDoer replaces the default HTTP transport.
func WithDoer(d Doer) Option {
	return func(c *Client) {
		c.http = d
	}
}

// WithTokenSource sets the bearer token supplier.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.token = ts
	}
}

// New creates a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Campaigns = &Campaigns{resource: resource[store.Campaign]{
		client:   c,
		basePath: "/api/campaigns",
		id:       func(v store.Campaign) uuid.UUID { return v.ID },
	}}
	c.Artists = &Artists{resource: resource[store.Artist]{
		client:   c,
		basePath: "/api/artists",
		id:       func(v store.Artist) uuid.UUID { return v.ID },
	}}
	c.Outreach = &OutreachCampaigns{resource: resource[store.OutreachCampaign]{
		client:   c,
		basePath: "/api/outreach/campaigns",
		id:       func(v store.OutreachCampaign) uuid.UUID { return v.ID },
	}}
	c.Transactions = &Transactions{resource: resource[store.Transaction]{
		client:   c,
		basePath: "/api/finance/transactions",
		id:       func(v store.Transaction) uuid.UUID { return v.ID },
	}}
	return c
}

// APIError is a non-2xx response decoded from the server's error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorEnvelope struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
		}
		var envelope errorEnvelope
		if decodeErr := json.NewDecoder(resp.Body).Decode(&envelope); decodeErr == nil && envelope.Error.Message != "" {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
