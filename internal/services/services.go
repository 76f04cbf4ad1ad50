package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/mvx/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Client is the shared HTTP layer for all backend services.
//
// Requests carry the session's bearer token via an [oauth2] transport and are
// throttled by a client-side [rate.Limiter] so bulk operations don't hammer
// the backend. A 401 response invokes the unauthorized hook (used to clear
// the stale session) and maps to [shared.ErrUnauthorized].
type Client struct {
	baseURL        string
	httpClient     *http.Client
	limiter        *rate.Limiter
	logger         *log.Logger
	onUnauthorized func()
}

// ClientOpts configures a [Client].
type ClientOpts struct {
	// BaseURL of the tracking backend, without a trailing slash.
	BaseURL string
	// Token is the session's bearer token. Empty means unauthenticated
	// requests (login, register).
	Token string
	// RatePerSec and RateBurst bound outgoing request throughput. Zero
	// values disable throttling.
	RatePerSec float64
	RateBurst  int
	// OnUnauthorized runs when the backend rejects the token.
	OnUnauthorized func()
	// HTTPClient overrides the transport, mainly for tests. When set,
	// Token is ignored.
	HTTPClient *http.Client
}

// NewClient creates a backend client.
func NewClient(opts ClientOpts, logger *log.Logger) *Client {
	baseURL := strings.TrimSuffix(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "http://localhost:3002"
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		if opts.Token != "" {
			src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
			httpClient = oauth2.NewClient(context.Background(), src)
		} else {
			httpClient = http.DefaultClient
		}
	}

	var limiter *rate.Limiter
	if opts.RatePerSec > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RatePerSec), burst)
	}

	return &Client{
		baseURL:        baseURL,
		httpClient:     httpClient,
		limiter:        limiter,
		logger:         logger,
		onUnauthorized: opts.OnUnauthorized,
	}
}

// BaseURL returns the configured backend URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get performs a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post performs a POST request with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// Delete performs a DELETE request and decodes the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter: %w", err)
		}
	}

	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("backend request", "method", method, "path", path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%w: %s %s", shared.ErrUnauthorized, method, path)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s %s", shared.ErrNotFound, method, path)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %s %s returned %d: %s",
			shared.ErrAPIRequest, method, path, resp.StatusCode, errorDetail(respBody))
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// errorDetail pulls a human-readable message out of a backend error payload,
// falling back to a truncated raw body.
func errorDetail(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		for _, msg := range []string{payload.Error, payload.Message, payload.Detail} {
			if msg != "" {
				return msg
			}
		}
	}

	detail := strings.TrimSpace(string(body))
	if len(detail) > 200 {
		detail = detail[:200] + "..."
	}
	return detail
}

// ActionResponse is the acknowledgment returned by mutation endpoints.
type ActionResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id,omitempty"`
	Status  string `json:"status,omitempty"`
}

// RepairResult reports the outcome of a bulk metadata repair.
type RepairResult struct {
	Message        string `json:"message"`
	UpdatedCount   int    `json:"updated_count"`
	FailedCount    int    `json:"failed_count"`
	TotalProcessed int    `json:"total_processed"`
}

// FixResult reports the outcome of a single-title metadata fix.
type FixResult struct {
	Message      string         `json:"message"`
	MovieTitle   string         `json:"movie_title"`
	MediaType    string         `json:"media_type"`
	ChangesCount int            `json:"changes_count"`
	Changes      map[string]any `json:"changes"`
}
