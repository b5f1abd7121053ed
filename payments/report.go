package payments

import (
	"fmt"
	"strings"

	"github.com/alovak/cardflow-batch/payments/models"
)

// RenderReport formats batch totals as the plain-text summary.
func RenderReport(t *models.Totals) string {
	if t == nil {
		t = models.NewTotals()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Total payments: %d\n", t.Count)
	fmt.Fprintf(&sb, "Total dollar amount: $%s\n", t.Amount.StringFixed(2))
	for _, brand := range t.Brands {
		fmt.Fprintf(&sb, "Total dollar amount for %s: $%s\n", brand, t.ByBrand[brand].StringFixed(2))
	}
	return sb.String()
}

type BrandTotal struct {
	Brand  string `json:"brand"`
	Amount string `json:"amount"`
}

// TotalsResponse is the JSON rendering of a batch report.
type TotalsResponse struct {
	BatchID       string       `json:"batch_id,omitempty"`
	TotalPayments int          `json:"total_payments"`
	TotalAmount   string       `json:"total_amount"`
	Brands        []BrandTotal `json:"brands"`
}

func NewTotalsResponse(batchID string, t *models.Totals) TotalsResponse {
	resp := TotalsResponse{
		BatchID:       batchID,
		TotalPayments: t.Count,
		TotalAmount:   t.Amount.StringFixed(2),
		Brands:        make([]BrandTotal, 0, len(t.Brands)),
	}
	for _, brand := range t.Brands {
		resp.Brands = append(resp.Brands, BrandTotal{Brand: brand.String(), Amount: t.ByBrand[brand].StringFixed(2)})
	}
	return resp
}
