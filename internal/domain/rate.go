package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateRecord is one row of the wide exchange-rate table: a calendar date and
// one value per target currency. A currency missing from Rates maps to a NULL
// cell in the store.
type RateRecord struct {
	Date  time.Time
	Rates map[string]decimal.Decimal
}

// Rate returns the value for a currency code and whether it is present.
func (r RateRecord) Rate(code string) (decimal.Decimal, bool) {
	v, ok := r.Rates[code]
	return v, ok
}

// CloneRates returns a copy of the rate map so callers can derive new records
// without sharing state.
func (r RateRecord) CloneRates() map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(r.Rates))
	for code, value := range r.Rates {
		rates[code] = value
	}
	return rates
}
