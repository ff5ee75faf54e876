// Package catalog fetches skip offers for a location from the catalog
// service.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/httpclient"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/logging"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

// OffersPath is the catalog endpoint, relative to the base URL.
const OffersPath = "/skips/by-location"

// maxBodyBytes caps how much of a response is read.
const maxBodyBytes = 4 << 20

// Fetcher retrieves the offers available at a location.
type Fetcher interface {
	FetchOffers(ctx context.Context, postcode, area string) ([]skip.Offer, error)
}

// Client talks to the catalog service over HTTP. It does not retry, cache
// or apply a timeout of its own; those are the caller's policy.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(cl *Client) { cl.logger = l }
}

// NewClient returns a Client for the service rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logging.NopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = httpclient.New(httpclient.Options{})
	}
	c.logger = c.logger.WithComponent("catalog")
	return c
}

// OffersURL builds the request URL for a location.
func (c *Client) OffersURL(postcode, area string) string {
	q := url.Values{}
	q.Set("postcode", postcode)
	q.Set("area", area)
	return c.baseURL + OffersPath + "?" + q.Encode()
}

// FetchOffers issues one GET for the location's offers.
//
// Errors are one of:
//   - *errors.NetworkError when no response was received
//   - *errors.RemoteFetchError for a non-2xx status
//   - *errors.DecodeError when the body is not a valid offer list
func (c *Client) FetchOffers(ctx context.Context, postcode, area string) ([]skip.Offer, error) {
	u := c.OffersURL(postcode, area)
	log := c.logger.WithLocation(postcode, area)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.NewNetworkError(fmt.Errorf("can't create request: %w", err)).WithURL(u)
	}
	// Set here so the id can be logged; the transport keeps it.
	reqID := uuid.NewString()
	req.Header.Set(httpclient.RequestIDHeader, reqID)
	log = log.WithRequestID(reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn("catalog request failed", "error", err.Error())
		return nil, errors.NewNetworkError(err).WithURL(u)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Warn("catalog returned error status",
			"status", resp.StatusCode,
			"duration_ms", time.Since(start).Milliseconds())
		fetchErr := errors.NewRemoteFetchError(resp.StatusCode).WithURL(u)
		if err != nil {
			fetchErr = fetchErr.WithCause(fmt.Errorf("can't read response body: %w", err))
		}
		return nil, fetchErr
	}
	if err != nil {
		log.Warn("catalog response truncated", "error", err.Error())
		return nil, errors.NewNetworkError(fmt.Errorf("can't read response body: %w", err)).WithURL(u)
	}

	offers, err := skip.DecodeOffers(body)
	if err != nil {
		log.Error("catalog response rejected", "error", err.Error())
		return nil, err
	}

	log.Info("catalog fetched",
		"offers", len(offers),
		"duration_ms", time.Since(start).Milliseconds())
	return offers, nil
}
