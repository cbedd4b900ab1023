package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client fetches listing pages from a REST endpoint that paginates with the
// {results, info: {next}} envelope.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

const (
	defaultUserAgent = "folio/0.1"
	defaultTimeout   = 10 * time.Second
)

// NewClient builds a Client for the given endpoint URL. A zero timeout uses
// the default.
func NewClient(rawURL string, timeout time.Duration, logger zerolog.Logger) (*Client, error) {
	base, err := parseBaseURL(rawURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
		logger:    logger,
	}, nil
}

// FetchPage retrieves one page of the listing. An empty token requests the
// first page; any other token must be a value the API handed back in
// info.next. Exactly one request is issued per call: no retries, no caching.
// A non-nil error is always an *Error carrying one of the three kinds.
func (c *Client) FetchPage(ctx context.Context, token string) (Page, error) {
	reqURL, err := c.pageURL(token)
	if err != nil {
		// The token came out of a decoded envelope, so a token that cannot
		// form a URL means the envelope was effectively malformed.
		return Page{}, &Error{
			Kind: KindDecode,
			URL:  c.baseURL.String(),
			Err:  fmt.Errorf("resolve page token %q: %w", token, err),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return Page{}, &Error{Kind: KindNetwork, URL: reqURL.String(), Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn().Str("url", reqURL.String()).Err(err).Msg("page request failed")
		return Page{}, &Error{Kind: KindNetwork, URL: reqURL.String(), Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().
			Str("url", reqURL.String()).
			Int("status", resp.StatusCode).
			Msg("page request rejected")
		return Page{}, &Error{Kind: KindHTTP, StatusCode: resp.StatusCode, URL: reqURL.String()}
	}

	page, err := decodePage(resp.Body)
	if err != nil {
		c.logger.Warn().Str("url", reqURL.String()).Err(err).Msg("page decode failed")
		return Page{}, &Error{Kind: KindDecode, URL: reqURL.String(), Err: err}
	}

	c.logger.Debug().
		Str("url", reqURL.String()).
		Int("entities", len(page.Entities)).
		Bool("has_more", page.HasMore).
		Dur("duration", time.Since(start)).
		Msg("page fetched")
	return page, nil
}

// pageURL maps a pagination token onto a request URL. Tokens arrive verbatim
// from the API: an absolute URL is used as-is, a path resolves against the
// endpoint, and a bare query string ("page=2") replaces the endpoint's query.
func (c *Client) pageURL(token string) (*url.URL, error) {
	if token == "" {
		u := *c.baseURL
		return &u, nil
	}
	if !strings.ContainsAny(token, "/?") && strings.Contains(token, "=") {
		u := *c.baseURL
		u.RawQuery = token
		return &u, nil
	}
	ref, err := url.Parse(token)
	if err != nil {
		return nil, err
	}
	return c.baseURL.ResolveReference(ref), nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("endpoint url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("endpoint url %q has no host", raw)
	}
	u.Fragment = ""
	return u, nil
}
