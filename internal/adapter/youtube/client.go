package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sosodev/duration"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3/videos"

// Client fetches video metadata from the YouTube Data API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client with the default YouTube Data API URL.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "youtube"),
	}
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "youtube"),
	}
}

// FetchDuration fetches the duration in seconds for the given video id.
// Returns 0, nil when the video does not exist or is not accessible.
func (c *Client) FetchDuration(ctx context.Context, mediaID string) (int, error) {
	if mediaID == "" {
		return 0, fmt.Errorf("youtube: empty media id")
	}

	q := url.Values{}
	q.Set("id", mediaID)
	q.Set("part", "contentDetails")
	q.Set("key", c.apiKey)
	reqURL := c.baseURL + "?" + q.Encode()

	c.log.DebugContext(ctx, "youtube request", slog.String("media_id", mediaID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("youtube: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, mediaID)
	if err != nil {
		c.log.ErrorContext(ctx, "youtube request failed",
			slog.String("media_id", mediaID), slog.String("error", err.Error()))
		return 0, fmt.Errorf("youtube: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("youtube: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("youtube: read body: %w", err)
	}

	var list videoListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		return 0, fmt.Errorf("youtube: decode json: %w", err)
	}

	if len(list.Items) == 0 {
		c.log.WarnContext(ctx, "youtube video not found", slog.String("media_id", mediaID))
		return 0, nil
	}

	seconds, err := ParseDuration(list.Items[0].ContentDetails.Duration)
	if err != nil {
		return 0, fmt.Errorf("youtube: video %s: %w", mediaID, err)
	}

	c.log.DebugContext(ctx, "youtube response",
		slog.String("media_id", mediaID),
		slog.Int("duration", seconds),
	)

	return seconds, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, mediaID string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "youtube retry", slog.String("media_id", mediaID), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	resp, err = c.httpClient.Do(req)
	return resp, err
}

// ParseDuration converts an ISO-8601 duration ("PT1H2M3S") to whole seconds.
func ParseDuration(raw string) (int, error) {
	if raw == "" {
		return 0, fmt.Errorf("empty duration")
	}

	d, err := duration.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", raw, err)
	}

	return int(d.ToTimeDuration() / time.Second), nil
}
