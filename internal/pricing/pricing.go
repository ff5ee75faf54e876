// Package pricing computes VAT-inclusive skip prices and formats them for
// display.
//
// The functions here are pure. Offers are validated when they are decoded, so
// a negative price or an out-of-range VAT rate reaching this package is a
// programming error and panics rather than returning an error.
package pricing

import (
	"fmt"
	"math"

	"github.com/Selahattinozdmr/rem-waste-demo/internal/skip"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "£"

// TotalPrice returns the price including VAT:
// price_before_vat + price_before_vat * vat/100.
// The result is not rounded.
func TotalPrice(o skip.Offer) float64 {
	mustBeValid(o)
	return o.PriceBeforeVAT + VATAmount(o)
}

// VATAmount returns the VAT portion of the total price.
func VATAmount(o skip.Offer) float64 {
	mustBeValid(o)
	return o.PriceBeforeVAT * (o.VAT / 100)
}

// FormatCurrency renders amount as whole pounds, e.g. 316.8 -> "£317".
// Halves round away from zero, so 211.5 -> "£212" and 210.5 -> "£211".
func FormatCurrency(amount float64) string {
	rounded := math.Round(amount)
	if rounded == 0 {
		// avoid "£-0"
		rounded = 0
	}
	if rounded < 0 {
		return fmt.Sprintf("-%s%.0f", CurrencySymbol, -rounded)
	}
	return fmt.Sprintf("%s%.0f", CurrencySymbol, rounded)
}

func mustBeValid(o skip.Offer) {
	if err := o.Validate(); err != nil {
		panic(err)
	}
}
