package strategy

import (
	"fmt"
	"math"

	"ledger-recon/feature/recon/models"
)

// CategoryPatternParams configures the category pattern strategy.
type CategoryPatternParams struct {
	// AmountTolerancePct is the allowed amount difference relative to the
	// larger magnitude. Defaults to 0.20 (20%).
	AmountTolerancePct float64

	// BaseScore is the fixed score awarded for a category match.
	// Defaults to 0.8.
	BaseScore float64
}

// CategoryPattern matches pairs that share the same non-empty category and
// have amounts in the same ballpark. It is the loosest strategy in the
// cascade and runs last. Confidence is the average of the base score and
// an amount-closeness score.
type CategoryPattern struct {
	params CategoryPatternParams
}

// NewCategoryPattern creates the strategy, applying defaults for zero params.
func NewCategoryPattern(params CategoryPatternParams) *CategoryPattern {
	if params.AmountTolerancePct == 0 {
		params.AmountTolerancePct = 0.20
	}
	if params.BaseScore == 0 {
		params.BaseScore = 0.8
	}
	return &CategoryPattern{params: params}
}

func (s *CategoryPattern) Name() string { return "category_pattern_match" }

func (s *CategoryPattern) Weight() float64 { return 0.6 }

func (s *CategoryPattern) Evaluate(left, right models.Record) (*ScoreResult, error) {
	if left.Category == "" || left.Category != right.Category {
		return nil, nil
	}

	diff := math.Abs(left.Amount - right.Amount)
	tolerance := math.Max(math.Abs(left.Amount), math.Abs(right.Amount)) * s.params.AmountTolerancePct
	if diff > tolerance {
		return nil, nil
	}

	amountScore := 1.0
	if tolerance > 0 {
		amountScore = 1 - diff/tolerance
	}
	confidence := (s.params.BaseScore + amountScore) / 2

	return &ScoreResult{
		Confidence:       confidence,
		AmountDifference: diff,
		Reason:           fmt.Sprintf("both categorized %s with amounts within %.0f%%", left.Category, s.params.AmountTolerancePct*100),
	}, nil
}
