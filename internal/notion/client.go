package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const apiVersion = "2022-06-28"

// Config holds the connection parameters for the Notion API.
type Config struct {
	Token      string
	BaseURL    string
	PageSize   int
	TimeoutMs  int // per HTTP request
	MaxRetries int // additional attempts after a transient failure
}

// DefaultConfig returns a Config with sensible defaults. The token is
// left empty and must be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://api.notion.com",
		PageSize:   100,
		TimeoutMs:  30000,
		MaxRetries: 1,
	}
}

// Client provides read access to Notion databases.
type Client interface {
	// QueryDatabase fetches every page of the database, following the
	// pagination cursor until has_more is false.
	QueryDatabase(ctx context.Context, databaseID string) ([]Page, error)

	// Me returns the bot user the token authenticates as.
	Me(ctx context.Context) (*User, error)
}

// httpClient implements Client over the Notion HTTP API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer QueryObserver
}

// NewClient creates a Client that talks to the Notion API.
func NewClient(cfg Config, observer QueryObserver) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// queryRequest is the JSON body sent to POST /v1/databases/{id}/query.
// StartCursor must be omitted entirely on the first page; the API
// rejects an explicit null with HTTP 400.
type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

// queryResponse is the JSON body returned by a database query.
type queryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

func (c *httpClient) QueryDatabase(ctx context.Context, databaseID string) ([]Page, error) {
	start := time.Now()

	var pages []Page
	var cursor string
	requests := 0

	for {
		body := queryRequest{PageSize: c.cfg.PageSize, StartCursor: cursor}
		resp, err := c.queryPage(ctx, databaseID, body)
		if err != nil {
			c.observer.OnQueryComplete(QueryEvent{
				DatabaseID: databaseID,
				Pages:      requests,
				Records:    len(pages),
				LatencyMs:  time.Since(start).Milliseconds(),
				Success:    false,
				ErrorCode:  errorCode(err),
			})
			return nil, err
		}
		requests++
		pages = append(pages, resp.Results...)

		if !resp.HasMore || resp.NextCursor == nil {
			break
		}
		cursor = *resp.NextCursor
	}

	c.observer.OnQueryComplete(QueryEvent{
		DatabaseID: databaseID,
		Pages:      requests,
		Records:    len(pages),
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    true,
	})
	return pages, nil
}

// queryPage fetches a single page of results, retrying transient
// failures up to MaxRetries additional times.
func (c *httpClient) queryPage(ctx context.Context, databaseID string, body queryRequest) (*queryResponse, error) {
	url := fmt.Sprintf("%s/v1/databases/%s/query", c.cfg.BaseURL, databaseID)

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		var resp queryResponse
		err := c.doJSON(ctx, http.MethodPost, url, body, &resp)
		if err == nil {
			return &resp, nil
		}
		lastErr = err

		// Token rejection and context cancellation are not transient.
		if errors.Is(err, ErrUnauthorized) || ctx.Err() != nil {
			return nil, err
		}
	}

	if errors.Is(lastErr, ErrTimeout) {
		return nil, ErrTimeout
	}
	if isConnectionError(lastErr) {
		return nil, ErrUnavailable
	}
	return nil, fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
}

func (c *httpClient) Me(ctx context.Context) (*User, error) {
	url := c.cfg.BaseURL + "/v1/users/me"
	var user User
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &user); err != nil {
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, err
	}
	return &user, nil
}

// doJSON performs one authenticated request with the configured
// per-request timeout, encoding body (when non-nil) and decoding the
// response into out.
func (c *httpClient) doJSON(ctx context.Context, method, url string, body, out any) error {
	timeout := time.Duration(c.cfg.TimeoutMs) * time.Millisecond
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Notion-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ErrTimeout
		}
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("notion returned status %d: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrUnauthorized):
		return "UNAUTHORIZED"
	case errors.Is(err, ErrRetryExhausted):
		return "RETRY_EXHAUSTED"
	default:
		return "UNKNOWN"
	}
}
