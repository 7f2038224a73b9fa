package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a run of whole years sharing one contribution amount.
// ContributionAmount is paid on every contribution event at the active
// frequency.
type Stage struct {
	DurationYears      int     `json:"duration_years"`
	ContributionAmount float64 `json:"contribution_amount"`
}

// LedgerRow is the state of the investment at the end of one year.
type LedgerRow struct {
	Year                int     `json:"year"`
	ContributionForYear float64 `json:"contribution_for_year"`
	TotalContributed    float64 `json:"total_contributed"`
	AccumulatedInterest float64 `json:"accumulated_interest"`
	Balance             float64 `json:"balance"`
}

type ProjectionResult struct {
	Rows                  []LedgerRow `json:"rows"`
	FinalBalance          float64     `json:"final_balance"`
	FinalTotalContributed float64     `json:"final_total_contributed"`
}

// ProjectionInput is what a user submits. AnnualRatePercent is a percentage
// (5 means 5%). When Stages is empty a single stage of TotalYears with
// Contribution is assumed.
type ProjectionInput struct {
	AnnualRatePercent float64   `json:"annual_rate_percent"`
	InitialBalance    float64   `json:"initial_balance"`
	TotalYears        int       `json:"total_years"`
	Frequency         Frequency `json:"frequency"`
	Contribution      float64   `json:"contribution,omitempty"`
	Stages            []Stage   `json:"stages,omitempty"`
}

// ResolvedStages returns the explicit stages, or the implicit single stage.
func (in ProjectionInput) ResolvedStages() []Stage {
	if len(in.Stages) > 0 {
		return in.Stages
	}
	return []Stage{{DurationYears: in.TotalYears, ContributionAmount: in.Contribution}}
}

type Summary struct {
	TotalContributed float64 `json:"total_contributed"`
	TotalInterest    float64 `json:"total_interest"`
	FinalBalance     float64 `json:"final_balance"`
}

// SummaryOf extracts the headline figures of a result.
func SummaryOf(r ProjectionResult) Summary {
	return Summary{
		TotalContributed: r.FinalTotalContributed,
		TotalInterest:    r.FinalBalance - r.FinalTotalContributed,
		FinalBalance:     r.FinalBalance,
	}
}

// Projection is a computed projection as stored and served.
type Projection struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Input     ProjectionInput  `json:"input"`
	Result    ProjectionResult `json:"result"`
	Summary   Summary          `json:"summary"`
}
