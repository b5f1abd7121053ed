package models

import (
	"github.com/shopspring/decimal"
)

// Totals accumulates accepted results for one batch.
type Totals struct {
	Count   int
	Amount  decimal.Decimal
	ByBrand map[Brand]decimal.Decimal
	// Brands lists the keys of ByBrand in the order they were first seen.
	Brands []Brand
}

func NewTotals() *Totals {
	return &Totals{
		Amount:  decimal.Zero,
		ByBrand: make(map[Brand]decimal.Decimal),
	}
}

// Add records an accepted result. Rejected results are ignored.
func (t *Totals) Add(r Result) {
	if !r.IsAccepted() {
		return
	}
	t.Count++
	t.Amount = t.Amount.Add(r.Amount)
	sub, ok := t.ByBrand[r.Brand]
	if !ok {
		t.Brands = append(t.Brands, r.Brand)
		sub = decimal.Zero
	}
	t.ByBrand[r.Brand] = sub.Add(r.Amount)
}
