package mockapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/catalog"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/httpclient"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
	"github.com/Selahattinozdmr/rem-waste-demo/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	s, err := New(opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func get(t *testing.T, h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNew_BundledOffersMatchExamples(t *testing.T) {
	s := newServer(t)

	if got, want := s.Offers(), testutil.ExampleOffers(t); !reflect.DeepEqual(got, want) {
		t.Errorf("bundled offers = %+v, want %+v", got, want)
	}
}

func TestNew_RejectsNonErrorFailStatus(t *testing.T) {
	for _, status := range []int{200, 302, 600} {
		if _, err := New(WithFailStatus(status)); !errors.Is(err, errors.ErrInvalidInput) {
			t.Errorf("New(WithFailStatus(%d)) error = %v, want ErrInvalidInput", status, err)
		}
	}
}

func TestListOffers(t *testing.T) {
	h := newServer(t).Handler()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCount  int
	}{
		{"example location", "/skips/by-location?postcode=NR32&area=Lowestoft", http.StatusOK, 5},
		{"case insensitive", "/skips/by-location?postcode=nr32&area=lowestoft", http.StatusOK, 5},
		{"unknown location", "/skips/by-location?postcode=ZZ1&area=Nowhere", http.StatusOK, 0},
		{"missing area", "/skips/by-location?postcode=NR32", http.StatusBadRequest, -1},
		{"missing postcode", "/skips/by-location?area=Lowestoft", http.StatusBadRequest, -1},
		{"blank postcode", "/skips/by-location?postcode=+&area=Lowestoft", http.StatusBadRequest, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, h, tt.target, nil)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCount < 0 {
				return
			}
			offers, err := skip.DecodeOffers(rec.Body.Bytes())
			if err != nil {
				t.Fatalf("DecodeOffers() error = %v (body %s)", err, rec.Body.String())
			}
			if len(offers) != tt.wantCount {
				t.Errorf("len(offers) = %d, want %d", len(offers), tt.wantCount)
			}
		})
	}
}

func TestListOffers_FailStatus(t *testing.T) {
	h := newServer(t, WithFailStatus(http.StatusServiceUnavailable)).Handler()

	rec := get(t, h, "/skips/by-location?postcode=NR32&area=Lowestoft", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body["error"] != "Service Unavailable" {
		t.Errorf("error = %q, want Service Unavailable", body["error"])
	}
}

func TestHandler_EchoesRequestIDAndCORS(t *testing.T) {
	h := newServer(t).Handler()

	rec := get(t, h, "/skips/by-location?postcode=NR32&area=Lowestoft", http.Header{
		"Origin":       {"http://localhost:3000"},
		"X-Request-Id": {"abc-123"},
	})
	if got := rec.Header().Get(httpclient.RequestIDHeader); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want abc-123", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestHealthz(t *testing.T) {
	rec := get(t, newServer(t).Handler(), "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestCatalogClientAgainstMock(t *testing.T) {
	tests := []struct {
		name       string
		opts       []Option
		wantCount  int
		wantStatus int
	}{
		{name: "serves examples", wantCount: 5},
		{name: "fails on demand", opts: []Option{WithFailStatus(http.StatusInternalServerError)}, wantStatus: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(newServer(t, tt.opts...).Handler())
			t.Cleanup(srv.Close)

			offers, err := catalog.NewClient(srv.URL).
				FetchOffers(context.Background(), testutil.ExamplePostcode, testutil.ExampleArea)

			if tt.wantStatus != 0 {
				var remote *errors.RemoteFetchError
				if !errors.As(err, &remote) || remote.StatusCode != tt.wantStatus {
					t.Fatalf("error = %v, want RemoteFetchError %d", err, tt.wantStatus)
				}
				return
			}
			if err != nil {
				t.Fatalf("FetchOffers() error = %v", err)
			}
			if len(offers) != tt.wantCount {
				t.Errorf("len(offers) = %d, want %d", len(offers), tt.wantCount)
			}
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	s := newServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, "127.0.0.1:0") }()
	cancel()

	if err := <-done; err != nil {
		t.Errorf("Run() error = %v", err)
	}
}
