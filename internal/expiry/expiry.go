package expiry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var ErrFormat = errors.New("expiry must be MM/YYYY")

// Date is a card expiration as printed on the card face: a month and a
// four-digit year. A card is good through the last day of that month.
type Date struct {
	Month time.Month
	Year  int
}

func (d Date) String() string {
	return fmt.Sprintf("%02d/%04d", int(d.Month), d.Year)
}

// Parse accepts "MM/YYYY" (a single-digit month is tolerated) and returns
// the expiration date.
func Parse(in string) (Date, error) {
	s := strings.TrimSpace(in)
	mmStr, yyyyStr, ok := strings.Cut(s, "/")
	if !ok {
		return Date{}, fmt.Errorf("%w: missing separator in %q", ErrFormat, in)
	}
	if len(mmStr) < 1 || len(mmStr) > 2 || !isDigits(mmStr) {
		return Date{}, fmt.Errorf("%w: bad month in %q", ErrFormat, in)
	}
	if len(yyyyStr) != 4 || !isDigits(yyyyStr) {
		return Date{}, fmt.Errorf("%w: bad year in %q", ErrFormat, in)
	}
	mm, _ := strconv.Atoi(mmStr)
	if mm < 1 || mm > 12 {
		return Date{}, fmt.Errorf("%w: month must be 01..12, got %q", ErrFormat, in)
	}
	yyyy, _ := strconv.Atoi(yyyyStr)
	return Date{Month: time.Month(mm), Year: yyyy}, nil
}

// EndOfMonth returns the last instant of the expiration month in loc.
func (d Date) EndOfMonth(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	// First day of next month
	firstNext := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond)
}

// ExpiredAt reports whether the card is expired at 'at': its year is before
// the current year, or the year matches and its month is before the current
// month. The comparison happens in at's location.
func (d Date) ExpiredAt(at time.Time) bool {
	return at.After(d.EndOfMonth(at.Location()))
}

// CardFace returns the MM/YYYY expiry for an issue date + years.
func CardFace(issue time.Time, years int) string {
	return Date{Month: issue.Month(), Year: issue.Year() + years}.String()
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
