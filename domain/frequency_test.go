package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributionsPerYear(t *testing.T) {
	expected := map[Frequency]int{
		Daily:    365,
		Weekly:   52,
		Biweekly: 24,
		Monthly:  12,
		Yearly:   1,
	}
	for f, n := range expected {
		assert.Equal(t, n, f.ContributionsPerYear(), f.String())
	}
	assert.Equal(t, 0, Frequency(0).ContributionsPerYear())
	assert.Len(t, Frequencies(), len(expected))
}

func TestParseFrequency(t *testing.T) {
	tests := map[string]Frequency{
		"daily":     Daily,
		" Weekly ":  Weekly,
		"BIWEEKLY":  Biweekly,
		"monthly":   Monthly,
		"yearly":    Yearly,
		"quincenal": Biweekly,
		"Mensual":   Monthly,
		"diaria":    Daily,
		"semanal":   Weekly,
		"anual":     Yearly,
	}
	for in, want := range tests {
		got, err := ParseFrequency(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFrequency("fortnightly")
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestFrequencyJSON(t *testing.T) {
	var in ProjectionInput
	require.NoError(t, json.Unmarshal([]byte(`{"frequency":"quincenal","total_years":3}`), &in))
	assert.Equal(t, Biweekly, in.Frequency)

	out, err := json.Marshal(struct {
		F Frequency `json:"f"`
	}{Monthly})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"monthly"}`, string(out))

	err = json.Unmarshal([]byte(`{"frequency":"hourly"}`), &in)
	assert.ErrorIs(t, err, ErrInvalidFrequency)
}

func TestResolvedStages(t *testing.T) {
	in := ProjectionInput{TotalYears: 40, Contribution: 5000}
	assert.Equal(t, []Stage{{DurationYears: 40, ContributionAmount: 5000}}, in.ResolvedStages())

	in.Stages = []Stage{{DurationYears: 1, ContributionAmount: 1}}
	assert.Equal(t, in.Stages, in.ResolvedStages())
}

func TestSummaryOf(t *testing.T) {
	s := SummaryOf(ProjectionResult{FinalBalance: 150, FinalTotalContributed: 100})
	assert.Equal(t, Summary{TotalContributed: 100, TotalInterest: 50, FinalBalance: 150}, s)
}
