// Package api provides the HTTP client for the roomlog backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/roomlog/roomlog/internal/logger"
)

const (
	sessionCookieName = "SESSION"
	dateOnlyFormat    = "2006-01-02"
	defaultTimeout    = 15 * time.Second
)

// Client talks to one roomlog backend using cookie-based session credentials.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient builds a client for the given server. The session cookie value
// may be empty for anonymous (read-only) access.
func NewClient(baseURL, session string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrServerRequired
	}

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger.Log.Debugf("Creating API client for %s", baseURL)

	return &Client{
		httpClient: newHTTPClient(session, timeout),
		baseURL:    baseURL,
	}, nil
}

// searchRequest is the JSON body of a search call.
type searchRequest struct {
	Page    int    `json:"page"`
	Size    int    `json:"size"`
	Keyword string `json:"keyword,omitempty"`
	Escaped *bool  `json:"escaped,omitempty"`
	From    string `json:"from,omitempty"`
	To      string `json:"to,omitempty"`
}

// SearchPage fetches one page of a collection matching the given options.
func (c *Client) SearchPage(ctx context.Context, collection string, opts SearchOptions) (Page, error) {
	body := searchRequest{
		Page:    opts.Page,
		Size:    opts.Size,
		Keyword: strings.TrimSpace(opts.Keyword),
		Escaped: opts.Escaped,
	}

	if !opts.From.IsZero() {
		body.From = opts.From.Format(dateOnlyFormat)
	}

	if !opts.To.IsZero() {
		body.To = opts.To.Format(dateOnlyFormat)
	}

	data, err := c.post(ctx, fmt.Sprintf("/%s/search", collection), body)
	if err != nil {
		return Page{}, err
	}

	return normalizePage(data)
}

// Create stores a new record and returns the backend's view of it.
func (c *Client) Create(ctx context.Context, collection string, item Item) (Item, error) {
	data, err := c.post(ctx, "/"+collection, item)
	if err != nil {
		return Item{}, err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Item{}, fmt.Errorf("failed to decode create response: %w", err)
	}

	var created Item
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return Item{}, fmt.Errorf("failed to decode created item: %w", err)
	}

	return created, nil
}

// Delete removes one record by id.
func (c *Client) Delete(ctx context.Context, collection string, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/%s/%d", c.baseURL, collection, id), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	_, err = c.do(req)

	return err
}

func (c *Client) post(ctx context.Context, path string, body interface{}) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: serverMessage(data)}
	}

	return data, nil
}

// serverMessage extracts the backend's error message field, if any.
func serverMessage(data []byte) string {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return ""
	}

	return env.Message
}
