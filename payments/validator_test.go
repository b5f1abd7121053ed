package payments

import (
	"testing"
	"time"

	"github.com/alovak/cardflow-batch/internal/expiry"
	"github.com/alovak/cardflow-batch/payments/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestValidator_Brand(t *testing.T) {
	v := NewValidator(nil, time.UTC)

	cases := []struct {
		number string
		brand  models.Brand
	}{
		{"371449635398431", models.AmEx},
		{"341111111111111", models.AmEx},
		{"4242424242424242", models.Visa},
		{"4000000000000000", models.Visa},
		{"5105105105105100", models.Mastercard},
		{"5200828282828210", models.Mastercard},
		{"5555555555554444", models.Mastercard},

		// wrong lengths
		{"3714496353984311", models.Invalid},
		{"37144963539843", models.Invalid},
		{"424242424242424", models.Invalid},
		{"42424242424242424", models.Invalid},
		{"4222222222222", models.Invalid},
		// wrong prefixes
		{"351449635398431", models.Invalid},
		{"5005105105105100", models.Invalid},
		{"5605105105105100", models.Invalid},
		{"6011111111111117", models.Invalid},
		// not digits
		{"", models.Invalid},
		{"4242 4242 4242 4242", models.Invalid},
		{" 4242424242424242", models.Invalid},
		{"42424242424242a2", models.Invalid},
	}
	for _, c := range cases {
		require.Equal(t, c.brand, v.Brand(c.number), "Brand(%q)", c.number)
		require.Equal(t, c.brand != models.Invalid, v.Valid(c.number), "Valid(%q)", c.number)
	}
}

func TestValidator_Expired(t *testing.T) {
	now := time.Date(2021, time.October, 1, 0, 0, 0, 0, time.UTC)
	v := NewValidator(fixedClock(now), time.UTC)

	require.True(t, v.Expired(expiry.Date{Month: time.September, Year: 2019}))
	require.True(t, v.Expired(expiry.Date{Month: time.September, Year: 2021}))
	require.False(t, v.Expired(expiry.Date{Month: time.October, Year: 2021}))
	require.False(t, v.Expired(expiry.Date{Month: time.November, Year: 2021}))
	require.False(t, v.Expired(expiry.Date{Month: time.January, Year: 2030}))
}

func TestValidator_ExpiredUsesLocation(t *testing.T) {
	// 2021-10-01 02:00 UTC is still September 30 in New York.
	now := time.Date(2021, time.October, 1, 2, 0, 0, 0, time.UTC)
	ny := time.FixedZone("EDT", -4*60*60)
	sept := expiry.Date{Month: time.September, Year: 2021}

	require.True(t, NewValidator(fixedClock(now), time.UTC).Expired(sept))
	require.False(t, NewValidator(fixedClock(now), ny).Expired(sept))
}

func TestValidator_Process(t *testing.T) {
	v := NewValidator(nil, time.UTC)

	res := v.Process("371449635398431", 87345)
	require.True(t, res.IsAccepted())
	require.Equal(t, models.AmEx, res.Brand)
	require.True(t, decimal.RequireFromString("873.45").Equal(res.Amount))

	res = v.Process("4242424242424242", 0)
	require.True(t, res.IsAccepted())
	require.True(t, res.Amount.IsZero())

	res = v.Process("6011111111111117", 1000)
	require.False(t, res.IsAccepted())
	require.Equal(t, models.StatusRejected, res.Status)
	require.Equal(t, ReasonUnsupportedCard, res.Reason)
	require.Empty(t, res.Brand)
}
