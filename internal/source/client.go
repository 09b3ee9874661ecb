// Package source reads the equipment record collections from the remote
// data service. The engine never writes through this client.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"metreg/internal/config"
	"metreg/model"
)

// Client fetches the live and archive record collections over HTTP.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client with a tuned transport and the configured
// request timeout.
func NewClient(cfg config.SourceConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxConnsPerHost:     50,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Records fetches the live equipment collection.
func (c *Client) Records(ctx context.Context) ([]model.Record, error) {
	return c.fetch(ctx, "/main-table/")
}

// Archive fetches the archived (removed-from-service) collection.
func (c *Client) Archive(ctx context.Context) ([]model.Record, error) {
	return c.fetch(ctx, "/archive/")
}

func (c *Client) fetch(ctx context.Context, path string) ([]model.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("source: build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("source: GET %s: unexpected status %d", path, resp.StatusCode)
	}

	var records []model.Record
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("source: decode %s: %w", path, err)
	}
	return records, nil
}
