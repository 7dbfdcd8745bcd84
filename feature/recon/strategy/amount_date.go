package strategy

import (
	"fmt"
	"math"

	"ledger-recon/feature/recon/models"
)

// AmountDateParams configures the amount + date proximity strategy.
type AmountDateParams struct {
	// AmountTolerance is the maximum allowed amount difference. Defaults to 0.01.
	AmountTolerance float64

	// DateToleranceDays is the maximum allowed date gap in days. Defaults to 3.
	DateToleranceDays int
}

// AmountDate matches pairs whose amounts are within tolerance and whose
// dates are within the day window. Both records must carry a date.
// Confidence is the average of an amount-closeness score and a
// date-closeness score.
type AmountDate struct {
	params AmountDateParams
}

// NewAmountDate creates the strategy, applying defaults for zero params.
func NewAmountDate(params AmountDateParams) *AmountDate {
	if params.AmountTolerance == 0 {
		params.AmountTolerance = 0.01
	}
	if params.DateToleranceDays == 0 {
		params.DateToleranceDays = 3
	}
	return &AmountDate{params: params}
}

func (s *AmountDate) Name() string { return "amount_date_match" }

func (s *AmountDate) Weight() float64 { return 0.9 }

func (s *AmountDate) Evaluate(left, right models.Record) (*ScoreResult, error) {
	if left.Date == nil || right.Date == nil {
		return nil, nil
	}

	diff := math.Abs(left.Amount - right.Amount)
	if diff > s.params.AmountTolerance {
		return nil, nil
	}

	daysDiff := int(math.Abs(left.Date.Sub(*right.Date).Hours()) / 24)
	if daysDiff > s.params.DateToleranceDays {
		return nil, nil
	}

	amountScore := amountCloseness(left.Amount, right.Amount)
	dateScore := 1 - float64(daysDiff)/float64(s.params.DateToleranceDays)
	confidence := (amountScore + dateScore) / 2

	return &ScoreResult{
		Confidence:         confidence,
		AmountDifference:   diff,
		DateDifferenceDays: daysDiff,
		Reason:             fmt.Sprintf("amounts within tolerance and dates %d day(s) apart", daysDiff),
	}, nil
}
