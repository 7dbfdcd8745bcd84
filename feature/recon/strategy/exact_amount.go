package strategy

import (
	"fmt"
	"math"

	"ledger-recon/feature/recon/models"
)

// ExactAmountParams configures the exact amount strategy.
type ExactAmountParams struct {
	// Tolerance is the maximum allowed amount difference. Defaults to 0.01.
	Tolerance float64
}

// ExactAmount matches pairs whose amounts differ by at most the tolerance.
// The match is binary: confidence is always 1.0.
type ExactAmount struct {
	params ExactAmountParams
}

// NewExactAmount creates the strategy, applying defaults for zero params.
func NewExactAmount(params ExactAmountParams) *ExactAmount {
	if params.Tolerance == 0 {
		params.Tolerance = 0.01
	}
	return &ExactAmount{params: params}
}

func (s *ExactAmount) Name() string { return "exact_amount_match" }

func (s *ExactAmount) Weight() float64 { return 1.0 }

func (s *ExactAmount) Evaluate(left, right models.Record) (*ScoreResult, error) {
	diff := math.Abs(left.Amount - right.Amount)
	if diff > s.params.Tolerance {
		return nil, nil
	}
	return &ScoreResult{
		Confidence:       1.0,
		AmountDifference: diff,
		Reason:           fmt.Sprintf("amounts match within %.2f tolerance (difference %.2f)", s.params.Tolerance, diff),
	}, nil
}
