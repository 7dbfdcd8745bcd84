package strategy

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"ledger-recon/feature/recon/models"
)

// DescriptionSimilarityParams configures the description similarity strategy.
type DescriptionSimilarityParams struct {
	// SimilarityThreshold is the minimum token similarity ratio a pair must
	// exceed. Defaults to 0.6.
	SimilarityThreshold float64

	// AmountTolerancePct is the allowed amount difference relative to the
	// larger magnitude. Defaults to 0.10 (10%).
	AmountTolerancePct float64
}

// DescriptionSimilarity matches pairs whose descriptions read alike and
// whose amounts are within a percentage band of each other. Similarity is
// computed case-insensitively over the sorted token sets of both
// descriptions, so word order does not matter. Confidence is the average
// of the similarity ratio and an amount-closeness score.
type DescriptionSimilarity struct {
	params DescriptionSimilarityParams
}

// NewDescriptionSimilarity creates the strategy, applying defaults for zero params.
func NewDescriptionSimilarity(params DescriptionSimilarityParams) *DescriptionSimilarity {
	if params.SimilarityThreshold == 0 {
		params.SimilarityThreshold = 0.6
	}
	if params.AmountTolerancePct == 0 {
		params.AmountTolerancePct = 0.10
	}
	return &DescriptionSimilarity{params: params}
}

func (s *DescriptionSimilarity) Name() string { return "description_similarity" }

func (s *DescriptionSimilarity) Weight() float64 { return 0.8 }

func (s *DescriptionSimilarity) Evaluate(left, right models.Record) (*ScoreResult, error) {
	leftDesc := strings.TrimSpace(left.Description)
	rightDesc := strings.TrimSpace(right.Description)
	if leftDesc == "" || rightDesc == "" {
		return nil, nil
	}

	diff := math.Abs(left.Amount - right.Amount)
	tolerance := math.Max(math.Abs(left.Amount), math.Abs(right.Amount)) * s.params.AmountTolerancePct
	if diff > tolerance {
		return nil, nil
	}

	similarity := tokenSimilarity(leftDesc, rightDesc)
	if similarity <= s.params.SimilarityThreshold {
		return nil, nil
	}

	amountScore := 1.0
	if tolerance > 0 {
		amountScore = 1 - diff/tolerance
	}
	confidence := (similarity + amountScore) / 2

	return &ScoreResult{
		Confidence:            confidence,
		AmountDifference:      diff,
		DescriptionSimilarity: similarity,
		Reason:                fmt.Sprintf("descriptions %.0f%% similar with amounts within %.0f%%", similarity*100, s.params.AmountTolerancePct*100),
	}, nil
}

// tokenSimilarity returns the sequence-similarity ratio of the sorted,
// lowercased token sets of two descriptions.
func tokenSimilarity(a, b string) float64 {
	return difflib.NewMatcher(tokens(a), tokens(b)).Ratio()
}

func tokens(s string) []string {
	fields := strings.Fields(strings.ToLower(s))
	sort.Strings(fields)
	return fields
}
