// Package fetch retrieves and parses HTML pages from the results site.
//
// The client never retries by default; callers that want retries opt in
// through an explicit Policy. Errors carry the failing URL so the
// orchestrator can log which branch went down.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
)

const (
	UserAgent      = "liga-stats/1.0 (github.com/tkessler/liga-stats)"
	DefaultTimeout = 15 * time.Second
)

// ErrMissingURL is returned before any network I/O when the caller passed an
// empty URL.
var ErrMissingURL = errors.New("missing URL")

// FetchError describes a failed page fetch.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Policy controls the client's timeout and retry behavior. The zero retry
// count means each fetch is attempted exactly once.
type Policy struct {
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
}

// DefaultPolicy returns the default fetch policy: 15 second timeout, no
// retries.
func DefaultPolicy() Policy {
	return Policy{Timeout: DefaultTimeout}
}

// Client fetches HTML documents over HTTP.
type Client struct {
	http   *http.Client
	policy Policy
}

// New creates a client with the default policy.
func New() *Client {
	return NewWithPolicy(DefaultPolicy())
}

// NewWithPolicy creates a client with an explicit fetch policy.
func NewWithPolicy(p Policy) *Client {
	if p.Timeout <= 0 {
		p.Timeout = DefaultTimeout
	}
	return &Client{
		http:   &http.Client{Timeout: p.Timeout},
		policy: p,
	}
}

// Get fetches url and parses the response body into a goquery document.
// Non-2xx responses are errors. Client errors (4xx) are never retried.
func (c *Client) Get(ctx context.Context, url string) (*goquery.Document, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrMissingURL
	}

	var doc *goquery.Document
	op := func() error {
		var err error
		doc, err = c.fetchOnce(ctx, url)
		return err
	}

	var b backoff.BackOff = &backoff.StopBackOff{}
	if c.policy.MaxRetries > 0 {
		eb := backoff.NewExponentialBackOff()
		if c.policy.InitialInterval > 0 {
			eb.InitialInterval = c.policy.InitialInterval
		}
		b = backoff.WithMaxRetries(eb, c.policy.MaxRetries)
	}

	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Client) fetchOnce(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(&FetchError{URL: url, Err: err})
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ferr := &FetchError{URL: url, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(ferr)
		}
		return nil, ferr
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(&FetchError{URL: url, Err: fmt.Errorf("parsing HTML: %w", err)})
	}
	return doc, nil
}
