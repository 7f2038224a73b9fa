// Package report turns projections into rounded figures and human-readable
// documents.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"interest-projector/domain"
)

var ErrUnknownCurrency = errors.New("moneda desconocida")

// Round rounds v to cents, half away from zero.
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// RoundedRows returns a copy of rows with every amount rounded to cents, as
// shown to users.
func RoundedRows(rows []domain.LedgerRow) []domain.LedgerRow {
	out := make([]domain.LedgerRow, len(rows))
	for i, r := range rows {
		out[i] = domain.LedgerRow{
			Year:                r.Year,
			ContributionForYear: Round(r.ContributionForYear),
			TotalContributed:    Round(r.TotalContributed),
			AccumulatedInterest: Round(r.AccumulatedInterest),
			Balance:             Round(r.Balance),
		}
	}
	return out
}

// Rounded returns p with the ledger and summary rounded to cents.
func Rounded(p domain.Projection) domain.Projection {
	p.Result = domain.ProjectionResult{
		Rows:                  RoundedRows(p.Result.Rows),
		FinalBalance:          Round(p.Result.FinalBalance),
		FinalTotalContributed: Round(p.Result.FinalTotalContributed),
	}
	p.Summary = domain.Summary{
		TotalContributed: Round(p.Summary.TotalContributed),
		TotalInterest:    Round(p.Summary.TotalInterest),
		FinalBalance:     Round(p.Summary.FinalBalance),
	}
	return p
}

// LookupCurrency returns the ISO 4217 currency for code.
func LookupCurrency(code string) (*money.Currency, error) {
	cur := money.GetCurrency(strings.ToUpper(code))
	if cur == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return cur, nil
}

// FormatMoney formats v in the given currency, e.g. "$12,279.43".
func FormatMoney(v float64, cur *money.Currency) string {
	minor := decimal.NewFromFloat(v).Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
