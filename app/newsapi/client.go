package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

const (
	clearAllPath   = "limpar_tudo/"
	statisticsPath = "estatisticas/"
)

// Client talks to the news API. It keeps no state between calls and is safe
// for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

func NewClient(baseURL string, httpClient *http.Client, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  userAgent,
	}
}

// BaseURL returns the collection endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListArticles fetches the collection endpoint.
func (c *Client) ListArticles(ctx context.Context) (*ArticleList, error) {
	var list ArticleList
	if err := c.do(ctx, http.MethodGet, "", &list); err != nil {
		return nil, err
	}

	slog.Debug("Articles fetched",
		"shape", list.Shape.String(),
		"returned", len(list.Articles),
		"count", list.Count)

	return &list, nil
}

// ClearAll deletes every article on the API side.
func (c *Client) ClearAll(ctx context.Context) (*ClearResult, error) {
	var result ClearResult
	if err := c.do(ctx, http.MethodDelete, clearAllPath, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Statistics fetches the article and source totals.
func (c *Client) Statistics(ctx context.Context) (*Statistics, error) {
	var stats Statistics
	if err := c.do(ctx, http.MethodGet, statisticsPath, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) endpoint(path string) (string, error) {
	if path == "" {
		return c.baseURL, nil
	}
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return "", fmt.Errorf("invalid API base URL: %w", err)
	}
	return endpoint, nil
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	endpoint, err := c.endpoint(path)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: method, URL: endpoint, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}
