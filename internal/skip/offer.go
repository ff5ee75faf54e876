// Package skip defines the skip offer record returned by the catalog
// service and the strict decoding rules applied to it.
package skip

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/errors"
)

// Offer is one skip size available for hire at a location.
// Offers are supplied by the server and never modified locally.
type Offer struct {
	ID               int64     `json:"id"`
	Size             int       `json:"size"` // cubic yards
	HirePeriodDays   int       `json:"hire_period_days"`
	TransportCost    *float64  `json:"transport_cost"`
	PerTonneCost     *float64  `json:"per_tonne_cost"`
	PriceBeforeVAT   float64   `json:"price_before_vat"`
	VAT              float64   `json:"vat"` // percent
	Postcode         string    `json:"postcode"`
	Area             string    `json:"area"`
	Forbidden        bool      `json:"forbidden"`
	CreatedAt        Timestamp `json:"created_at"`
	UpdatedAt        Timestamp `json:"updated_at"`
	AllowedOnRoad    bool      `json:"allowed_on_road"`
	AllowsHeavyWaste bool      `json:"allows_heavy_waste"`
}

// Validate checks the invariants every offer must satisfy before it is
// priced or displayed.
func (o Offer) Validate() error {
	switch {
	case o.PriceBeforeVAT < 0:
		return errors.NewValidationError("must not be negative").
			WithField("price_before_vat").WithValue(o.PriceBeforeVAT)
	case o.VAT < 0 || o.VAT > 100:
		return errors.NewValidationError("must be between 0 and 100").
			WithField("vat").WithValue(o.VAT)
	case o.Size <= 0:
		return errors.NewValidationError("must be positive").
			WithField("size").WithValue(o.Size)
	}
	return nil
}

// Label returns the display title, e.g. "6 Yard Skip".
func (o Offer) Label() string {
	return strconv.Itoa(o.Size) + " Yard Skip"
}

// Timestamp is a server timestamp. The raw text is kept so that decoding
// and re-encoding an offer is lossless; Time holds the parsed value.
type Timestamp struct {
	Raw  string
	Time time.Time
}

// timestampLayouts are tried in order. The service sends local times
// without a zone and with a variable number of fractional digits.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// ParseTimestamp parses a server timestamp.
func ParseTimestamp(s string) (Timestamp, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Raw: s, Time: t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// IsZero reports whether the timestamp was never set.
func (t Timestamp) IsZero() bool {
	return t.Raw == "" && t.Time.IsZero()
}

// String returns the raw server text.
func (t Timestamp) String() string {
	return t.Raw
}

// MarshalJSON writes the raw server text back out.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Raw == "" && !t.Time.IsZero() {
		return json.Marshal(t.Time.Format(time.RFC3339Nano))
	}
	return json.Marshal(t.Raw)
}

// UnmarshalJSON accepts a JSON string in one of the known layouts.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// wireOffer mirrors Offer with pointer fields so that a missing key can be
// told apart from a zero value. Nullable cost fields use json.RawMessage for
// the same reason.
type wireOffer struct {
	ID               *int64          `json:"id"`
	Size             *int            `json:"size"`
	HirePeriodDays   *int            `json:"hire_period_days"`
	TransportCost    json.RawMessage `json:"transport_cost"`
	PerTonneCost     json.RawMessage `json:"per_tonne_cost"`
	PriceBeforeVAT   *float64        `json:"price_before_vat"`
	VAT              *float64        `json:"vat"`
	Postcode         *string         `json:"postcode"`
	Area             *string         `json:"area"`
	Forbidden        *bool           `json:"forbidden"`
	CreatedAt        *string         `json:"created_at"`
	UpdatedAt        *string         `json:"updated_at"`
	AllowedOnRoad    *bool           `json:"allowed_on_road"`
	AllowsHeavyWaste *bool           `json:"allows_heavy_waste"`
}

// DecodeOffers decodes a catalog response body. The body must be a JSON
// array of offer records. Every required field must be present, each
// offer must pass Validate, and ids must be unique. Any violation is
// reported as a *errors.DecodeError naming the offending field.
func DecodeOffers(data []byte) ([]Offer, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.NewDecodeError("expected a JSON array of offers", nil)
	}

	var records []json.RawMessage
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, errors.NewDecodeError("malformed JSON", err)
	}

	offers := make([]Offer, 0, len(records))
	seen := make(map[int64]int, len(records))
	for i, raw := range records {
		o, err := decodeOffer(i, raw)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[o.ID]; dup {
			return nil, errors.NewDecodeError(
				fmt.Sprintf("duplicate id %d (first seen at index %d)", o.ID, prev), nil,
			).WithField(fieldPath(i, "id"))
		}
		seen[o.ID] = i
		offers = append(offers, o)
	}
	return offers, nil
}

func decodeOffer(index int, raw json.RawMessage) (Offer, error) {
	var w wireOffer
	if err := json.Unmarshal(raw, &w); err != nil {
		return Offer{}, errors.NewDecodeError("malformed offer", err).WithField(fieldPath(index, ""))
	}

	missing := func(field string) error {
		return errors.NewDecodeError("missing required field", nil).WithField(fieldPath(index, field))
	}

	switch {
	case w.ID == nil:
		return Offer{}, missing("id")
	case w.Size == nil:
		return Offer{}, missing("size")
	case w.HirePeriodDays == nil:
		return Offer{}, missing("hire_period_days")
	case w.PriceBeforeVAT == nil:
		return Offer{}, missing("price_before_vat")
	case w.VAT == nil:
		return Offer{}, missing("vat")
	case w.Postcode == nil:
		return Offer{}, missing("postcode")
	case w.Area == nil:
		return Offer{}, missing("area")
	case w.Forbidden == nil:
		return Offer{}, missing("forbidden")
	case w.CreatedAt == nil:
		return Offer{}, missing("created_at")
	case w.UpdatedAt == nil:
		return Offer{}, missing("updated_at")
	case w.AllowedOnRoad == nil:
		return Offer{}, missing("allowed_on_road")
	case w.AllowsHeavyWaste == nil:
		return Offer{}, missing("allows_heavy_waste")
	}

	o := Offer{
		ID:               *w.ID,
		Size:             *w.Size,
		HirePeriodDays:   *w.HirePeriodDays,
		PriceBeforeVAT:   *w.PriceBeforeVAT,
		VAT:              *w.VAT,
		Postcode:         *w.Postcode,
		Area:             *w.Area,
		Forbidden:        *w.Forbidden,
		AllowedOnRoad:    *w.AllowedOnRoad,
		AllowsHeavyWaste: *w.AllowsHeavyWaste,
	}

	var err error
	if o.TransportCost, err = optionalFloat(w.TransportCost); err != nil {
		return Offer{}, errors.NewDecodeError("expected number or null", err).WithField(fieldPath(index, "transport_cost"))
	}
	if o.PerTonneCost, err = optionalFloat(w.PerTonneCost); err != nil {
		return Offer{}, errors.NewDecodeError("expected number or null", err).WithField(fieldPath(index, "per_tonne_cost"))
	}
	if o.CreatedAt, err = ParseTimestamp(*w.CreatedAt); err != nil {
		return Offer{}, errors.NewDecodeError("invalid timestamp", err).WithField(fieldPath(index, "created_at"))
	}
	if o.UpdatedAt, err = ParseTimestamp(*w.UpdatedAt); err != nil {
		return Offer{}, errors.NewDecodeError("invalid timestamp", err).WithField(fieldPath(index, "updated_at"))
	}

	if err := o.Validate(); err != nil {
		var verr *errors.ValidationError
		field := ""
		if errors.As(err, &verr) {
			field = verr.Field
		}
		return Offer{}, errors.NewDecodeError("invalid offer", err).WithField(fieldPath(index, field))
	}
	return o, nil
}

// optionalFloat decodes a nullable number. Absent and null both give nil.
func optionalFloat(raw json.RawMessage) (*float64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func fieldPath(index int, field string) string {
	if field == "" {
		return fmt.Sprintf("[%d]", index)
	}
	return fmt.Sprintf("[%d].%s", index, field)
}
