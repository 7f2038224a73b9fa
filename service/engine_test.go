package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"interest-projector/domain"
)

const tolerance = 1e-6

func TestProject_MonthlyGoldenValue(t *testing.T) {
	result := Project(0.05, 0, []domain.Stage{{DurationYears: 1, ContributionAmount: 1000}}, domain.Monthly)

	require.Len(t, result.Rows, 1)
	row := result.Rows[0]
	assert.Equal(t, 1, row.Year)
	assert.Equal(t, 12000.0, row.ContributionForYear)
	assert.Equal(t, 12000.0, row.TotalContributed)
	assert.InDelta(t, 12279.42593807392, row.Balance, tolerance)
	assert.Greater(t, row.Balance, 12000.0)
	assert.InDelta(t, 279.42593807392, row.AccumulatedInterest, tolerance)
}

func TestProject_InitialBalanceGoldenValues(t *testing.T) {
	result := Project(0.07, 10000, []domain.Stage{{DurationYears: 2, ContributionAmount: 100}}, domain.Weekly)

	require.Len(t, result.Rows, 2)
	assert.InDelta(t, 16107.689345926143, result.Rows[0].Balance, tolerance)
	assert.InDelta(t, 22658.192174335934, result.Rows[1].Balance, tolerance)
	assert.Equal(t, 10000.0+2*100*52, result.FinalTotalContributed)
	assert.Equal(t, result.Rows[1].Balance, result.FinalBalance)
}

func TestProject_ZeroRateIsAdditive(t *testing.T) {
	stages := []domain.Stage{
		{DurationYears: 3, ContributionAmount: 250},
		{DurationYears: 2, ContributionAmount: 0},
		{DurationYears: 4, ContributionAmount: 75.5},
	}

	for _, freq := range domain.Frequencies() {
		t.Run(freq.String(), func(t *testing.T) {
			result := Project(0, 1500, stages, freq)

			ppy := float64(freq.ContributionsPerYear())
			expected := 1500 + 250*ppy*3 + 75.5*ppy*4
			assert.InDelta(t, expected, result.FinalBalance, tolerance)
			assert.InDelta(t, expected, result.FinalTotalContributed, tolerance)
			for _, row := range result.Rows {
				assert.InDelta(t, 0, row.AccumulatedInterest, tolerance)
			}
		})
	}
}

func TestProject_TinyRateDoesNotBlowUp(t *testing.T) {
	result := Project(1e-15, 0, []domain.Stage{{DurationYears: 2, ContributionAmount: 10}}, domain.Daily)

	require.Len(t, result.Rows, 2)
	assert.InDelta(t, 7300, result.FinalBalance, 1e-3)
}

func TestProject_SingleStageEquivalence(t *testing.T) {
	single := Project(0.06, 2000, []domain.Stage{{DurationYears: 12, ContributionAmount: 300}}, domain.Biweekly)
	split := Project(0.06, 2000, []domain.Stage{
		{DurationYears: 5, ContributionAmount: 300},
		{DurationYears: 7, ContributionAmount: 300},
	}, domain.Biweekly)

	assert.Equal(t, single, split)
}

func TestProject_RowCount(t *testing.T) {
	stages := []domain.Stage{
		{DurationYears: 10, ContributionAmount: 100},
		{DurationYears: 5, ContributionAmount: 0},
		{DurationYears: 15, ContributionAmount: 200},
	}

	result := Project(0.05, 0, stages, domain.Monthly)

	require.Len(t, result.Rows, 30)
	for i, row := range result.Rows {
		assert.Equal(t, i+1, row.Year)
	}
	assert.Equal(t, 0.0, result.Rows[12].ContributionForYear)
	assert.Equal(t, 2400.0, result.Rows[29].ContributionForYear)
}

func TestProject_Invariants(t *testing.T) {
	rates := []float64{0, 0.001, 0.05, 0.12, 1}
	balances := []float64{0, 1000, 250000}
	stageSets := [][]domain.Stage{
		{{DurationYears: 40, ContributionAmount: 5000}},
		{{DurationYears: 10, ContributionAmount: 100}, {DurationYears: 5, ContributionAmount: 0}, {DurationYears: 15, ContributionAmount: 200}},
		{{DurationYears: 3, ContributionAmount: 0}},
	}

	for _, rate := range rates {
		for _, initial := range balances {
			for _, stages := range stageSets {
				for _, freq := range domain.Frequencies() {
					result := Project(rate, initial, stages, freq)

					expectedContributed := initial
					for _, st := range stages {
						expectedContributed += st.ContributionAmount * float64(freq.ContributionsPerYear()) * float64(st.DurationYears)
					}
					assert.InDelta(t, expectedContributed, result.FinalTotalContributed, tolerance)

					prevBalance, prevContributed := initial, initial
					for _, row := range result.Rows {
						assert.InEpsilon(t, row.Balance+1, row.TotalContributed+row.AccumulatedInterest+1, 1e-12)
						assert.GreaterOrEqual(t, row.Balance, prevBalance)
						assert.GreaterOrEqual(t, row.TotalContributed, prevContributed)
						prevBalance, prevContributed = row.Balance, row.TotalContributed
					}
				}
			}
		}
	}
}

func TestProject_MoreFrequentContributionsEarnMore(t *testing.T) {
	const annual = 113880.0 // divisible entre todas las frecuencias

	var previous float64
	freqs := domain.Frequencies()
	for i := len(freqs) - 1; i >= 0; i-- {
		freq := freqs[i]
		amount := annual / float64(freq.ContributionsPerYear())
		result := Project(0.05, 0, []domain.Stage{{DurationYears: 10, ContributionAmount: amount}}, freq)

		assert.InDelta(t, annual*10, result.FinalTotalContributed, tolerance)
		if i < len(freqs)-1 {
			assert.Greater(t, result.FinalBalance, previous, "frequency %s", freq)
		}
		previous = result.FinalBalance
	}
}

func TestProject_NoStages(t *testing.T) {
	result := Project(0.05, 100, nil, domain.Monthly)

	assert.Empty(t, result.Rows)
	assert.Equal(t, 100.0, result.FinalBalance)
	assert.Equal(t, 100.0, result.FinalTotalContributed)
}
