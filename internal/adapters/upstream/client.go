// Package upstream holds the plumbing shared by every third-party API
// client: client-side rate limiting, header discipline, status-to-error
// mapping and JSON decoding. One attempt per call; failures are mapped to
// typed errors and handled (or defaulted) by the caller.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/iron-24/ripper-report/internal/adapters/observability"
)

var (
	ErrNotFound    = errors.New("upstream: not found")
	ErrRateLimited = errors.New("upstream: rate limited")
	ErrUnavailable = errors.New("upstream: unavailable")
)

type Client struct {
	service string // metrics label, e.g. "nominatim"
	hc      *http.Client
	ua      string
	rl      *rate.Limiter
}

// New builds a client with a per-service request budget. rps may be
// fractional (Nominatim's policy is 1 req/s).
func New(service, userAgent string, rps float64) *Client {
	if rps <= 0 {
		rps = 1
	}
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		service: service,
		hc:      &http.Client{Timeout: 15 * time.Second},
		ua:      userAgent,
		rl:      rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetJSON performs a rate-limited GET and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// PostFormJSON performs a rate-limited form POST and decodes the body into out.
func (c *Client) PostFormJSON(ctx context.Context, u string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if err := c.rl.Wait(req.Context()); err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.ua)

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(c.service, 0, time.Since(start))
		if req.Context().Err() != nil {
			return req.Context().Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(c.service, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode == http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return ErrRateLimited
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
