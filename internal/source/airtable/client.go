// Package airtable fetches table records from the Airtable REST API.
package airtable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.airtable.com/v0"

// FetchError is a non-success response from the remote store. It aborts the
// whole fetch; no partial page set is returned.
type FetchError struct {
	Status int
	Body   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("airtable: status %d: %s", e.Status, e.Body)
}

// Config holds connection settings for one remote table.
type Config struct {
	BaseURL   string
	APIKey    string
	BaseID    string
	TableID   string
	PageSize  int
	PageDelay time.Duration
	Timeout   time.Duration
}

// Client pages through one remote table.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	baseID     string
	tableID    string
	pageSize   int
	pageDelay  time.Duration
	logger     *slog.Logger
}

// New creates a client for the table named by cfg.
func New(cfg Config, logger *slog.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    base,
		apiKey:     cfg.APIKey,
		baseID:     cfg.BaseID,
		tableID:    cfg.TableID,
		pageSize:   cfg.PageSize,
		pageDelay:  cfg.PageDelay,
		logger:     logger.With("base", cfg.BaseID, "table", cfg.TableID),
	}
}

// FetchAll retrieves every page of the table, following the continuation
// offset until the remote store stops returning one. Pages are paced by a
// fixed delay to stay under the API rate limit. Any non-success status
// aborts with a *FetchError; no retry is attempted here.
func (c *Client) FetchAll(ctx context.Context) ([]Record, error) {
	var all []Record
	offset := ""
	page := 0

	for {
		resp, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page+1, err)
		}

		all = append(all, resp.Records...)
		page++

		c.logger.Debug("fetched page",
			"page", page,
			"records", len(resp.Records),
			"total", len(all),
		)

		if resp.Offset == "" {
			break
		}
		offset = resp.Offset

		if c.pageDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.pageDelay):
			}
		}
	}

	c.logger.Info("fetch complete", "records", len(all), "pages", page)
	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, offset string) (*listResponse, error) {
	q := url.Values{}
	if c.pageSize > 0 {
		q.Set("pageSize", fmt.Sprint(c.pageSize))
	}
	if offset != "" {
		q.Set("offset", offset)
	}
	reqURL := fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.baseID, c.tableID, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &FetchError{Status: resp.StatusCode, Body: string(body)}
	}

	var list listResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &list, nil
}
