package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/mfeller/bergfex-snow/internal/logger"
)

const (
	DefaultBaseURL = "https://www.bergfex.at"
	UserAgent      = "bergfex-snow/1.0 (github.com/mfeller/bergfex-snow)"
	Timeout        = 30 * time.Second
)

// Countries maps the country names accepted by the CLI to the snow overview
// page path for that country.
var Countries = map[string]string{
	"austria":     "/oesterreich/schneewerte/",
	"germany":     "/deutschland/schneewerte/",
	"switzerland": "/schweiz/schneewerte/",
	"italy":       "/italien/schneewerte/",
}

// Client fetches bergfex pages. Requests are rate limited so that a run
// touching several pages stays polite, and transient failures are retried
// with exponential backoff.
type Client struct {
	client        *http.Client
	baseURL       string
	limiter       *rate.Limiter
	maxRetries    uint64
	retryInterval time.Duration
}

// New creates a new Client. An empty baseURL selects the production site.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		client:        &http.Client{Timeout: Timeout},
		baseURL:       strings.TrimRight(baseURL, "/"),
		limiter:       rate.NewLimiter(rate.Every(500*time.Millisecond), 1),
		maxRetries:    3,
		retryInterval: 500 * time.Millisecond,
	}
}

// Get fetches one page and returns its body text. Client errors (4xx) are
// permanent; server errors and network failures are retried.
func (c *Client) Get(path string) (string, error) {
	url := c.baseURL + path
	var body string

	operation := func() error {
		if err := c.limiter.Wait(context.Background()); err != nil {
			return backoff.Permanent(err)
		}

		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("creating request: %w", err))
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetching page: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			return err
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading body: %w", err)
		}
		body = string(data)
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryInterval

	err := backoff.RetryNotify(operation, backoff.WithMaxRetries(policy, c.maxRetries),
		func(err error, wait time.Duration) {
			logger.Debug("retrying fetch", logger.Fields{
				"url":  url,
				"wait": wait.String(),
			})
		})
	if err != nil {
		logger.Error("fetch failed after retries", logger.Fields{"url": url}, err)
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	return body, nil
}
