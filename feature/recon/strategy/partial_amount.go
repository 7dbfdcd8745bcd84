package strategy

import (
	"fmt"
	"math"

	"ledger-recon/feature/recon/models"
)

// PartialAmountParams configures the partial amount strategy.
type PartialAmountParams struct {
	// MinAmount is the minimum ledger magnitude for the strategy to apply.
	// Defaults to 1000.
	MinAmount float64

	// TolerancePct is the allowed amount difference relative to the ledger
	// magnitude. Defaults to 0.05 (5%).
	TolerancePct float64
}

// PartialAmount matches large transactions whose amounts are close but not
// equal, e.g. a settlement posted net of fees. It only considers ledger
// records at or above the minimum magnitude. Confidence degrades linearly
// with the amount difference inside the tolerance band.
type PartialAmount struct {
	params PartialAmountParams
}

// NewPartialAmount creates the strategy, applying defaults for zero params.
func NewPartialAmount(params PartialAmountParams) *PartialAmount {
	if params.MinAmount == 0 {
		params.MinAmount = 1000
	}
	if params.TolerancePct == 0 {
		params.TolerancePct = 0.05
	}
	return &PartialAmount{params: params}
}

func (s *PartialAmount) Name() string { return "partial_amount_match" }

func (s *PartialAmount) Weight() float64 { return 0.7 }

func (s *PartialAmount) Evaluate(left, right models.Record) (*ScoreResult, error) {
	if math.Abs(left.Amount) < s.params.MinAmount {
		return nil, nil
	}

	diff := math.Abs(left.Amount - right.Amount)
	tolerance := math.Abs(left.Amount) * s.params.TolerancePct
	if diff > tolerance {
		return nil, nil
	}

	return &ScoreResult{
		Confidence:       1 - diff/tolerance,
		AmountDifference: diff,
		Reason:           fmt.Sprintf("large transaction amounts within %.0f%% (difference %.2f)", s.params.TolerancePct*100, diff),
	}, nil
}
