package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

type recordingTransport struct {
	got *http.Request
}

func (t *recordingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	t.got = r
	return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
}

func TestRoundTripperWithHeaders_SetsHeaders(t *testing.T) {
	rec := &recordingTransport{}
	header := http.Header{}
	header.Set("Accept", "application/json")
	header.Set("User-Agent", "skipselect-test")

	rt := NewRoundTripperWithHeaders(rec, header)
	req := httptest.NewRequest(http.MethodGet, "http://example.test/skips", nil)

	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}

	if got := rec.got.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q, want application/json", got)
	}
	if got := rec.got.Header.Get("User-Agent"); got != "skipselect-test" {
		t.Errorf("User-Agent = %q, want skipselect-test", got)
	}
	if _, err := uuid.Parse(RequestID(rec.got)); err != nil {
		t.Errorf("X-Request-ID = %q is not a uuid: %v", RequestID(rec.got), err)
	}

	// The caller's request must not be modified.
	if req.Header.Get("Accept") != "" || RequestID(req) != "" {
		t.Error("RoundTrip() modified the original request")
	}
}

func TestRoundTripperWithHeaders_KeepsCallerRequestID(t *testing.T) {
	rec := &recordingTransport{}
	rt := NewRoundTripperWithHeaders(rec, nil)

	req := httptest.NewRequest(http.MethodGet, "http://example.test/", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")

	if _, err := rt.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip() error = %v", err)
	}
	if got := RequestID(rec.got); got != "fixed-id" {
		t.Errorf("X-Request-ID = %q, want fixed-id", got)
	}
}

func TestRoundTripperWithHeaders_UniqueIDs(t *testing.T) {
	rec := &recordingTransport{}
	rt := NewRoundTripperWithHeaders(rec, nil)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "http://example.test/", nil)
		if _, err := rt.RoundTrip(req); err != nil {
			t.Fatalf("RoundTrip() error = %v", err)
		}
		id := RequestID(rec.got)
		if seen[id] {
			t.Errorf("duplicate request id %q", id)
		}
		seen[id] = true
	}
}

func TestNew(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := New(Options{Timeout: 5 * time.Second, UserAgent: "skipselect/1.0"})
	if client.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", client.Timeout)
	}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	resp.Body.Close()

	if gotUA != "skipselect/1.0" {
		t.Errorf("User-Agent = %q, want skipselect/1.0", gotUA)
	}
	if gotAccept != "application/json" {
		t.Errorf("Accept = %q, want application/json", gotAccept)
	}
}
