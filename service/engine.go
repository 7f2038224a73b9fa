package service

import (
	"math"

	"interest-projector/domain"
)

const daysPerYear = 365

// zeroRateThreshold is the effective period rate below which the annuity
// formula is replaced by the plain sum of contributions.
const zeroRateThreshold = 1e-12

// Project builds the year-by-year ledger for the given stages.
//
// annualRate is a decimal fraction (0.05 for 5%) compounded daily. Each
// stage's contributions are paid at the end of every period of freq and
// grow at the period rate implied by daily compounding until year end.
// Inputs are assumed validated: the stages are processed as supplied.
func Project(annualRate, initialBalance float64, stages []domain.Stage, freq domain.Frequency) domain.ProjectionResult {
	dailyRate := annualRate / daysPerYear
	yearGrowth := math.Pow(1+dailyRate, daysPerYear)

	periods := freq.ContributionsPerYear()
	effectiveRate := math.Pow(1+dailyRate, float64(daysPerYear)/float64(periods)) - 1
	// factor por el que se multiplica cada aportación periódica en el año
	annuityFactor := float64(periods)
	if math.Abs(effectiveRate) >= zeroRateThreshold {
		annuityFactor = (math.Pow(1+effectiveRate, float64(periods)) - 1) / effectiveRate
	}

	balance := initialBalance
	contributed := initialBalance
	var rows []domain.LedgerRow
	year := 1

	for _, stage := range stages {
		for i := 0; i < stage.DurationYears; i++ {
			balance *= yearGrowth

			var yearly float64
			if stage.ContributionAmount > 0 {
				balance += stage.ContributionAmount * annuityFactor
				yearly = stage.ContributionAmount * float64(periods)
				contributed += yearly
			}

			rows = append(rows, domain.LedgerRow{
				Year:                year,
				ContributionForYear: yearly,
				TotalContributed:    contributed,
				AccumulatedInterest: balance - contributed,
				Balance:             balance,
			})
			year++
		}
	}

	return domain.ProjectionResult{
		Rows:                  rows,
		FinalBalance:          balance,
		FinalTotalContributed: contributed,
	}
}
