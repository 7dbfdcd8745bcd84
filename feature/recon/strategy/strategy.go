package strategy

import (
	"math"

	"ledger-recon/feature/recon/models"
)

// ScoreResult is a strategy's verdict on one candidate pair.
type ScoreResult struct {
	// Confidence is the strategy's certainty in [0,1] that the pair
	// represents the same real-world event.
	Confidence float64

	// Reason is a human-readable explanation for the audit trail.
	Reason string

	// AmountDifference is the absolute amount gap between the pair.
	AmountDifference float64

	// DateDifferenceDays is the absolute date gap in days, when compared.
	DateDifferenceDays int

	// DescriptionSimilarity is the similarity ratio, when compared.
	DescriptionSimilarity float64
}

// Strategy scores a single (ledger, statement) candidate pair.
//
// Evaluate returns (nil, nil) when the pair fails the strategy's hard gate,
// a ScoreResult when the pair qualifies, and an error when scoring itself
// failed. Strategies are pure and side-effect free: they never see the full
// unmatched pool, only one candidate pair plus their own parameters.
type Strategy interface {
	// Name returns the unique strategy name used in audit records.
	Name() string

	// Weight returns the static priority metadata surfaced in reporting.
	// Weight never alters the gate or confidence math.
	Weight() float64

	Evaluate(left, right models.Record) (*ScoreResult, error)
}

// DefaultCascade returns the five built-in strategies in their fixed
// priority order, highest precision first. The order matters: it keeps
// cheap heuristics from consuming records a stricter strategy would have
// matched correctly.
func DefaultCascade() []Strategy {
	return []Strategy{
		NewExactAmount(ExactAmountParams{}),
		NewAmountDate(AmountDateParams{}),
		NewDescriptionSimilarity(DescriptionSimilarityParams{}),
		NewPartialAmount(PartialAmountParams{}),
		NewCategoryPattern(CategoryPatternParams{}),
	}
}

// amountCloseness scores how close two amounts are relative to the larger
// magnitude: 1 - diff/max(|a|,|b|,1).
func amountCloseness(a, b float64) float64 {
	diff := math.Abs(a - b)
	return 1 - diff/math.Max(math.Max(math.Abs(a), math.Abs(b)), 1)
}
