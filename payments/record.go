package payments

import (
	"strconv"
	"strings"

	"github.com/alovak/cardflow-batch/internal/expiry"
	"github.com/alovak/cardflow-batch/payments/models"
)

// Column layout of a batch row:
//
//	Name,Card Number,CCV,Zip Code,Expiration Date,Amount (in cents),Card Type
//
// The card type column is ignored; the brand is always recomputed.
const (
	colName = iota
	colNumber
	colCCV
	colZip
	colExpiration
	colAmount
)

// ParseRecord converts one data row into a CardRecord. line is the 1-based
// row number used in errors.
func ParseRecord(line int, row []string) (models.CardRecord, error) {
	if len(row) <= colExpiration {
		return models.CardRecord{}, &FormatError{Line: line, Field: "expiration", Err: ErrMissingField}
	}
	exp, err := expiry.Parse(row[colExpiration])
	if err != nil {
		return models.CardRecord{}, &FormatError{Line: line, Field: "expiration", Value: row[colExpiration], Err: err}
	}
	if len(row) <= colAmount {
		return models.CardRecord{}, &FormatError{Line: line, Field: "amount", Err: ErrMissingField}
	}
	amount, err := parseAmount(row[colAmount])
	if err != nil {
		return models.CardRecord{}, &FormatError{Line: line, Field: "amount", Value: row[colAmount], Err: err}
	}

	return models.CardRecord{
		Line:       line,
		OwnerName:  row[colName],
		Number:     row[colNumber],
		CCV:        row[colCCV],
		ZipCode:    row[colZip],
		Expiration: exp,
		Amount:     amount,
	}, nil
}

func parseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrMissingField
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, ErrNegativeAmount
	}
	return v, nil
}

// ParseRecords skips the header row and parses the rest. The first
// malformed row aborts parsing.
func ParseRecords(rows [][]string) ([]models.CardRecord, error) {
	if len(rows) < 2 {
		return nil, nil
	}
	records := make([]models.CardRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := ParseRecord(i+2, row)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
