// Package nasa is a client for the NASA Image and Video Library API.
//
// Every call returns either its payload or an error. When the API answers
// with an error status the error is an *APIError carrying the API's reason;
// transport and decoding failures are plain wrapped errors.
package nasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nasaimg/nasaimg/constant"
	"github.com/nasaimg/nasaimg/log"
	"github.com/nasaimg/nasaimg/network"
)

const (
	// maxPages bounds every paginated call.
	maxPages = 100

	searchPageSize = 100
	albumPageSize  = 50

	fieldHref  = "href"
	fieldAlbum = "album"
)

// Client issues requests against one API host.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	pageDelay time.Duration
	progress  ProgressFunc
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient replaces the shared network client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithPageDelay sets the pause taken before each page request.
func WithPageDelay(d time.Duration) Option {
	return func(c *Client) { c.pageDelay = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithProgress receives a Progress after every page.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Client) { c.progress = fn }
}

// New returns a client for the public API with a one second page delay.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   constant.BaseURL,
		userAgent: constant.UserAgent,
		http:      network.Client,
		pageDelay: time.Second,
		progress:  logProgress,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// session scopes the connections used by one call. It must be closed on
// every return path.
type session struct {
	client *Client
}

func (c *Client) open() *session {
	return &session{client: c}
}

func (s *session) Close() {
	s.client.http.CloseIdleConnections()
}

// get fetches path and decodes a success body into v. Error statuses become
// an *APIError.
func (s *session) get(ctx context.Context, path string, params url.Values, v any) error {
	target := s.client.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", s.client.userAgent)

	log.Debugf("GET %s", target)
	resp, err := s.client.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Reason: readReason(resp.Body)}
		if apiErr.Reason == "" {
			apiErr.Reason = http.StatusText(resp.StatusCode)
		}
		log.Errorf("GET %s: %s", path, apiErr)
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	return nil
}

func readReason(body io.Reader) string {
	var payload struct {
		Reason string `json:"reason"`
	}

	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}

	return payload.Reason
}

// pause waits out the page delay unless ctx ends first.
func (c *Client) pause(ctx context.Context) error {
	if c.pageDelay <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(c.pageDelay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
