// Package httpclient builds the HTTP client used to reach the catalog
// service.
package httpclient

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader carries a unique id for every outgoing request.
const RequestIDHeader = "X-Request-ID"

// RoundTripperWithHeaders sets a fixed set of headers on every request and
// stamps each one with a fresh request id unless the caller already set one.
type RoundTripperWithHeaders struct {
	r      http.RoundTripper
	header http.Header
	newID  func() string
}

// NewRoundTripperWithHeaders wraps r. A nil r uses http.DefaultTransport.
func NewRoundTripperWithHeaders(r http.RoundTripper, header http.Header) *RoundTripperWithHeaders {
	if r == nil {
		r = http.DefaultTransport
	}
	return &RoundTripperWithHeaders{
		r:      r,
		header: header.Clone(),
		newID:  uuid.NewString,
	}
}

// RoundTrip implements http.RoundTripper. The request is cloned before its
// headers are touched.
func (rt *RoundTripperWithHeaders) RoundTrip(r *http.Request) (*http.Response, error) {
	req := r.Clone(r.Context())
	for k, vs := range rt.header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	if req.Header.Get(RequestIDHeader) == "" {
		req.Header.Set(RequestIDHeader, rt.newID())
	}

	return rt.r.RoundTrip(req)
}

// Options configures New.
type Options struct {
	Timeout   time.Duration // zero means no timeout
	UserAgent string
	Transport http.RoundTripper
}

// New returns an http.Client that sends JSON Accept and User-Agent headers
// plus a request id on every request.
func New(opts Options) *http.Client {
	header := http.Header{}
	header.Set("Accept", "application/json")
	if opts.UserAgent != "" {
		header.Set("User-Agent", opts.UserAgent)
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		}
	}

	return &http.Client{
		Timeout:   opts.Timeout,
		Transport: NewRoundTripperWithHeaders(transport, header),
	}
}

// RequestID returns the request id set on req, if any.
func RequestID(req *http.Request) string {
	return req.Header.Get(RequestIDHeader)
}
