package models

import (
	"github.com/shopspring/decimal"
)

type ResultStatus string

const (
	StatusAccepted ResultStatus = "ACCEPTED"
	StatusRejected ResultStatus = "REJECTED"
)

// Result is the outcome of validating one card. Amount and Brand are only
// meaningful when Status is StatusAccepted; Reason only when rejected.
type Result struct {
	Status ResultStatus
	Amount decimal.Decimal
	Brand  Brand
	Reason string
}

func Accepted(amount decimal.Decimal, brand Brand) Result {
	return Result{Status: StatusAccepted, Amount: amount, Brand: brand}
}

func Rejected(reason string) Result {
	return Result{Status: StatusRejected, Reason: reason}
}

func (r Result) IsAccepted() bool {
	return r.Status == StatusAccepted
}
