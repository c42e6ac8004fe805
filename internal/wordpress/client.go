package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const postsPath = "/wp-json/wp/v2/posts"

// Config holds WordPress client configuration.
type Config struct {
	Timeout           time.Duration
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
	RequestsPerSecond float64
}

// Client talks to a single WordPress site's REST API.
type Client struct {
	httpClient     *http.Client
	site           SiteConfig
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	limiter        *rate.Limiter
	now            func() time.Time
	logger         *slog.Logger
}

// statusError is a non-2xx answer from WordPress.
type statusError struct {
	Code int
	Body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

func (e *statusError) retryable() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// New creates a client for the given site.
func New(site SiteConfig, cfg Config, logger *slog.Logger) (*Client, error) {
	if site.URL == "" {
		return nil, ErrNoSite
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &Client{
		httpClient:     &http.Client{Timeout: cfg.Timeout},
		site:           site,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		limiter:        rate.NewLimiter(limit, 1),
		now:            time.Now,
		logger:         logger.With("site", site.URL),
	}, nil
}

// ListPosts lists posts matching filter.
func (c *Client) ListPosts(ctx context.Context, filter ListFilter) ([]Post, error) {
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", string(filter.Status))
	}
	if !filter.After.IsZero() {
		q.Set("after", filter.After.UTC().Format(time.RFC3339))
	}
	if !filter.Before.IsZero() {
		q.Set("before", filter.Before.UTC().Format(time.RFC3339))
	}
	if filter.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(filter.PerPage))
	}

	endpoint := c.site.endpoint(postsPath)
	if len(q) > 0 {
		endpoint += "?" + q.Encode()
	}

	var posts []apiPost
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &posts); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	result := make([]Post, len(posts))
	for i, p := range posts {
		result[i] = p.toPost()
	}
	return result, nil
}

// CreatePost creates a post, scheduling it when PublishAt lies in the future.
func (c *Client) CreatePost(ctx context.Context, in PostInput) (*Post, error) {
	req := createPostRequest{
		Title:      in.Title,
		Content:    in.Content,
		Status:     string(StatusPublish),
		Categories: in.Categories,
		Tags:       in.Tags,
	}
	if !in.PublishAt.IsZero() && in.PublishAt.After(c.now()) {
		req.Status = string(StatusFuture)
		req.DateGMT = in.PublishAt.UTC().Format(gmtLayout)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal post: %w", err)
	}

	var created apiPost
	if err := c.do(ctx, http.MethodPost, c.site.endpoint(postsPath), body, &created); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	post := created.toPost()
	c.logger.Info("created wordpress post", "post_id", post.ID, "status", post.Status)
	return &post, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.doRequest(ctx, method, endpoint, body, out)
		if err == nil {
			return nil
		}

		var se *statusError
		if errors.As(err, &se) && !se.retryable() {
			return err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Aiva/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.site.Username != "" {
		req.SetBasicAuth(c.site.Username, c.site.AppPassword)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &statusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
