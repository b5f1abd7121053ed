package payments

import (
	"strings"
	"time"

	"github.com/alovak/cardflow-batch/internal/cardgen"
	"github.com/alovak/cardflow-batch/internal/expiry"
	"github.com/alovak/cardflow-batch/payments/models"
	"github.com/shopspring/decimal"
)

const ReasonUnsupportedCard = "Unsupported card type or invalid number"

type brandRule struct {
	brand  models.Brand
	length int
	match  func(number string) bool
}

// brandRules are evaluated in order; the first rule whose length and prefix
// both match wins.
var brandRules = []brandRule{
	{models.AmEx, 15, func(n string) bool {
		return strings.HasPrefix(n, "34") || strings.HasPrefix(n, "37")
	}},
	{models.Visa, 16, func(n string) bool {
		return n[0] == '4'
	}},
	{models.Mastercard, 16, func(n string) bool {
		return n[0] == '5' && n[1] >= '1' && n[1] <= '5'
	}},
}

// Validator classifies single cards. It holds no batch state.
type Validator struct {
	now func() time.Time
	loc *time.Location
}

func NewValidator(now func() time.Time, loc *time.Location) *Validator {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Validator{now: now, loc: loc}
}

// Brand classifies a card number exactly as given; whitespace or dashes
// make it Invalid.
func (v *Validator) Brand(number string) models.Brand {
	if !cardgen.IsDigits(number) {
		return models.Invalid
	}
	for _, rule := range brandRules {
		if len(number) == rule.length && rule.match(number) {
			return rule.brand
		}
	}
	return models.Invalid
}

// Expired reports whether exp is before the current month.
func (v *Validator) Expired(exp expiry.Date) bool {
	return exp.ExpiredAt(v.now().In(v.loc))
}

// Valid reports whether number has a supported length and brand pattern.
func (v *Validator) Valid(number string) bool {
	return v.Brand(number) != models.Invalid
}

// Process converts the amount to major units and tags the brand, or rejects
// numbers that match no brand.
func (v *Validator) Process(number string, amount int64) models.Result {
	brand := v.Brand(number)
	if brand == models.Invalid {
		return models.Rejected(ReasonUnsupportedCard)
	}
	return models.Accepted(decimal.New(amount, -2), brand)
}
