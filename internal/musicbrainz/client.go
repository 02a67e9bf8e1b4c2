package musicbrainz

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"groove/internal/config"
)

// Metadata is the normalized result of a release lookup. Every field is
// best-effort; Tracks is empty rather than nil when nothing was extracted.
type Metadata struct {
	Title  string
	Artist string
	Date   string
	Tracks []string
}

// unknownTrackTitle stands in for a track whose recording title could not
// be extracted.
const unknownTrackTitle = "Unknown Track"

// Lookuper defines the release lookup operation used by the catalog.
type Lookuper interface {
	Lookup(ctx context.Context, mbid string) (Metadata, error)
}

// Client provides access to the MusicBrainz release endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	limiter    *rate.Limiter
	httpClient *http.Client
}

var _ Lookuper = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// New creates a MusicBrainz client from configuration.
func New(cfg config.MusicBrainz, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("musicbrainz base url required")
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		return nil, errors.New("musicbrainz user agent required")
	}
	interval := time.Duration(cfg.RequestIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = time.Second
	}
	timeout := time.Duration(cfg.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limiter := rate.NewLimiter(rate.Every(interval), 1)
	// Drain the initial token so even the first lookup waits the full
	// interval, matching the mandatory pre-request delay.
	limiter.AllowN(time.Now(), 1)

	client := &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		limiter:    limiter,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Lookup fetches release metadata for the given MusicBrainz release id.
// It waits out the rate limit, issues a single request, and parses the XML
// response. Errors indicate the lookup produced nothing usable; callers
// degrade to an empty result rather than propagating them.
func (c *Client) Lookup(ctx context.Context, mbid string) (Metadata, error) {
	mbid = strings.TrimSpace(mbid)
	if mbid == "" {
		return Metadata{}, errors.New("release id must not be empty")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return Metadata{}, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint, err := url.Parse(c.baseURL + "/release/" + url.PathEscape(mbid))
	if err != nil {
		return Metadata{}, fmt.Errorf("parse musicbrainz url: %w", err)
	}
	params := url.Values{}
	params.Set("inc", "recordings artist-credits")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/xml")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return Metadata{}, fmt.Errorf("execute request (latency=%v): %w", latency, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Metadata{}, fmt.Errorf("musicbrainz lookup returned %d (latency=%v)", resp.StatusCode, latency)
	}

	meta, err := parseRelease(resp.Body)
	if err != nil {
		return Metadata{}, fmt.Errorf("decode musicbrainz response: %w", err)
	}
	return meta, nil
}
