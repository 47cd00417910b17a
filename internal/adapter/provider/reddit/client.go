// Package reddit implements the content source client against the
// Reddit search API, authenticated via OAuth2 client credentials.
package reddit

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/topiclens/topiclens-backend/internal/config"
	"github.com/topiclens/topiclens-backend/internal/domain"
)

const (
	authURL        = "https://www.reddit.com/api/v1/access_token"
	defaultBaseURL = "https://oauth.reddit.com"

	initialBackoff = 500 * time.Millisecond
	maxBackoff     = 8 * time.Second
)

// Client fetches posts matching a topic from the Reddit search API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	subreddit  string
	sort       string
	timeWindow string
	maxRetries int
	log        *slog.Logger
}

// NewClient creates a Client using OAuth2 client-credentials auth.
// The returned client owns its token lifecycle; expired tokens are
// refreshed transparently.
func NewClient(cfg config.RedditConfig, logger *slog.Logger) *Client {
	oauthCfg := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     authURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	httpClient := oauthCfg.Client(context.Background())
	httpClient.Timeout = cfg.Timeout

	c := newClient(defaultBaseURL, httpClient, cfg, logger)
	return c
}

// NewClientWithBaseURL creates a Client against a custom base URL with
// a plain HTTP client (for testing).
func NewClientWithBaseURL(baseURL string, cfg config.RedditConfig, logger *slog.Logger) *Client {
	return newClient(baseURL, &http.Client{Timeout: cfg.Timeout}, cfg, logger)
}

func newClient(baseURL string, httpClient *http.Client, cfg config.RedditConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		subreddit:  cfg.Subreddit,
		sort:       cfg.Sort,
		timeWindow: cfg.TimeWindow,
		maxRetries: cfg.MaxRetries,
		log:        logger.With("adapter", "reddit"),
	}
}

// Search queries the configured subreddit for posts matching topic and
// returns up to limit per-post results in listing order.
//
// A post that fails to decode produces a FetchResult with Err set; the
// listing continues past it. Connection-level failures (transport
// errors, non-2xx status after retries) return domain.ErrUpstream.
func (c *Client) Search(ctx context.Context, topic string, limit int) ([]domain.FetchResult, error) {
	reqURL, err := c.searchURL(topic, limit)
	if err != nil {
		return nil, fmt.Errorf("reddit: build url: %w", err)
	}

	c.log.DebugContext(ctx, "reddit search",
		slog.String("topic", topic), slog.Int("limit", limit))

	body, err := c.getWithRetry(ctx, reqURL)
	if err != nil {
		c.log.ErrorContext(ctx, "reddit search failed",
			slog.String("topic", topic), slog.String("error", err.Error()))
		return nil, err
	}

	var listing listingResponse
	if err := listing.unmarshal(body); err != nil {
		return nil, fmt.Errorf("reddit: decode listing: %w: %v", domain.ErrUpstream, err)
	}

	results := make([]domain.FetchResult, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		item, err := mapPost(child.Data)
		if err != nil {
			results = append(results, domain.FetchResult{Err: err})
			continue
		}
		results = append(results, domain.FetchResult{Item: item})
	}

	c.log.DebugContext(ctx, "reddit search done",
		slog.String("topic", topic), slog.Int("posts", len(results)))

	return results, nil
}

func (c *Client) searchURL(topic string, limit int) (string, error) {
	u, err := url.Parse(fmt.Sprintf("%s/r/%s/search", c.baseURL, url.PathEscape(c.subreddit)))
	if err != nil {
		return "", err
	}

	q := u.Query()
	q.Set("q", topic)
	q.Set("sort", c.sort)
	q.Set("t", c.timeWindow)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("raw_json", "1")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// getWithRetry performs the GET with bounded exponential backoff on
// 429, 5xx and transport errors. Context cancellation stops retrying.
func (c *Client) getWithRetry(ctx context.Context, reqURL string) ([]byte, error) {
	backoff := initialBackoff

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			c.log.WarnContext(ctx, "reddit retry",
				slog.Int("attempt", attempt), slog.Duration("backoff", backoff))

			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("reddit: %w: %v", domain.ErrUpstream, ctx.Err())
			case <-time.After(backoff):
			}

			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
		}

		body, retryable, err := c.getOnce(ctx, reqURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}

	return nil, fmt.Errorf("reddit: %w: %v", domain.ErrUpstream, lastErr)
}

func (c *Client) getOnce(ctx context.Context, reqURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ctx.Err() == nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, true, fmt.Errorf("read body: %w", err)
		}
		return b, false, nil
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("status %d", resp.StatusCode)
	default:
		return nil, false, fmt.Errorf("status %d", resp.StatusCode)
	}
}
