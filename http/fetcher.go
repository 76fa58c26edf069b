// Package http provides the HTTP edge of the service: a Fetcher for
// the upstream registration detail pages and the JSON API server.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kalyug-papa-bolo/vahan"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for upstream requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultBaseURL is the upstream serving the detail pages.
const DefaultBaseURL = "https://vahanx.in"

// Upstream expects a browser-looking request; anything else is served
// a challenge page.
var upstreamHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Linux; Android 6.0; Nexus 5)",
	"Referer":         "https://vahanx.in/",
	"Accept-Language": "en-US,en;q=0.9",
}

// Ensure Fetcher implements vahan.Fetcher at compile time.
var _ vahan.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves registration detail pages over plain HTTP. The
// upstream page is static, so no JavaScript rendering is needed.
type Fetcher struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for upstream requests.
// Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithBaseURL sets the upstream base URL. Defaults to DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(f *Fetcher) {
		f.baseURL = u
	}
}

// WithRateLimit caps upstream requests to rps per second with a burst
// of 1. A rps <= 0 disables limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		if rps > 0 {
			f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewFetcher creates an upstream Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		baseURL: DefaultBaseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the detail page for rc. The RC number is
// canonicalized before it is placed in the URL path. Transport
// failures and non-OK statuses return an EUNAVAILABLE error; there
// are no retries.
func (f *Fetcher) Fetch(ctx context.Context, rc string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", vahan.Errorf(vahan.EUNAVAILABLE, "Failed to fetch data: %v", err)
		}
	}

	u := f.baseURL + "/rc-search/" + url.PathEscape(vahan.CanonicalRC(rc))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", vahan.Errorf(vahan.EINVALID, "invalid upstream request: %v", err)
	}
	for k, v := range upstreamHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", vahan.Errorf(vahan.EUNAVAILABLE, "Failed to fetch data: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", vahan.Errorf(vahan.EUNAVAILABLE, "Failed to fetch data: HTTP %d for %s", resp.StatusCode, u)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", vahan.Errorf(vahan.EUNAVAILABLE, "Failed to fetch data: %v", err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op
// since http.Client requires no explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
