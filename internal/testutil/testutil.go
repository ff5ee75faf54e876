// Package testutil provides testing utilities for skipselect tests.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

// Example location used throughout the tests.
const (
	ExamplePostcode = "NR32"
	ExampleArea     = "Lowestoft"
)

const (
	exampleCreated = "2025-04-03T13:51:46.897146"
	exampleUpdated = "2025-04-07T13:16:53.339"
)

// ExampleOffers returns the five offers served for NR32/Lowestoft:
// sizes 4, 5, 6, 8 and 10 yards at 20% VAT. Only the 4 and 6 yard skips are
// allowed on the road, and only the 5, 6 and 8 yard skips take heavy waste.
func ExampleOffers(t *testing.T) []skip.Offer {
	t.Helper()

	created, err := skip.ParseTimestamp(exampleCreated)
	if err != nil {
		t.Fatalf("failed to parse example timestamp: %v", err)
	}
	updated, err := skip.ParseTimestamp(exampleUpdated)
	if err != nil {
		t.Fatalf("failed to parse example timestamp: %v", err)
	}

	rows := []struct {
		id    int64
		size  int
		price float64
		road  bool
		heavy bool
	}{
		{17936, 4, 211, true, false},
		{17937, 5, 241, false, true},
		{17938, 6, 264, true, true},
		{17939, 8, 320, false, true},
		{17940, 10, 400, false, false},
	}

	offers := make([]skip.Offer, 0, len(rows))
	for _, r := range rows {
		offers = append(offers, skip.Offer{
			ID:               r.id,
			Size:             r.size,
			HirePeriodDays:   14,
			PriceBeforeVAT:   r.price,
			VAT:              20,
			Postcode:         ExamplePostcode,
			Area:             ExampleArea,
			CreatedAt:        created,
			UpdatedAt:        updated,
			AllowedOnRoad:    r.road,
			AllowsHeavyWaste: r.heavy,
		})
	}
	return offers
}

// ExampleOffersJSON returns the example offers encoded the way the catalog
// service sends them.
func ExampleOffersJSON(t *testing.T) []byte {
	t.Helper()

	data, err := json.Marshal(ExampleOffers(t))
	if err != nil {
		t.Fatalf("failed to encode example offers: %v", err)
	}
	return data
}

// OfferByID returns the offer with the given id or fails the test.
func OfferByID(t *testing.T, offers []skip.Offer, id int64) skip.Offer {
	t.Helper()

	for _, o := range offers {
		if o.ID == id {
			return o
		}
	}
	t.Fatalf("offer %d not found", id)
	return skip.Offer{}
}

// Sizes returns the sizes of offers in order.
func Sizes(offers []skip.Offer) []int {
	sizes := make([]int, len(offers))
	for i, o := range offers {
		sizes[i] = o.Size
	}
	return sizes
}

// CatalogServer is an httptest server standing in for the catalog service.
type CatalogServer struct {
	*httptest.Server
	requests atomic.Int32
	last     atomic.Pointer[http.Request]
}

// NewCatalogServer starts a server that answers every request with status
// and body. The server is closed when the test completes.
func NewCatalogServer(t *testing.T, status int, body []byte) *CatalogServer {
	t.Helper()

	cs := &CatalogServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.requests.Add(1)
		cs.last.Store(r.Clone(r.Context()))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(cs.Close)
	return cs
}

// Requests returns how many requests the server has received.
func (cs *CatalogServer) Requests() int {
	return int(cs.requests.Load())
}

// LastRequest returns the most recent request, or nil.
func (cs *CatalogServer) LastRequest() *http.Request {
	return cs.last.Load()
}
