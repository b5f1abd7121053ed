package models

import (
	"github.com/alovak/cardflow-batch/internal/expiry"
)

// CardRecord is one data row of a batch.
type CardRecord struct {
	// Line is the 1-based row number in the source, header included.
	Line      int
	OwnerName string
	Number    string
	// CCV and ZipCode are carried through but never inspected.
	CCV        string
	ZipCode    string
	Expiration expiry.Date
	// Amount is in minor currency units (cents).
	Amount int64
}

type Brand string

const (
	Visa       Brand = "Visa"
	Mastercard Brand = "Mastercard"
	AmEx       Brand = "AmEx"
	Invalid    Brand = "Invalid"
)

func (b Brand) String() string {
	return string(b)
}
