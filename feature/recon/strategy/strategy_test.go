package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-recon/feature/recon/models"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func ledgerRecord(amount float64) models.Record {
	return models.Record{ID: "ledger-1", Side: models.SideLedger, Amount: amount}
}

func statementRecord(amount float64) models.Record {
	return models.Record{ID: "statement-1", Side: models.SideStatement, Amount: amount}
}

func TestExactAmount(t *testing.T) {
	s := NewExactAmount(ExactAmountParams{})

	t.Run("EqualAmounts", func(t *testing.T) {
		res, err := s.Evaluate(ledgerRecord(500.00), statementRecord(500.00))
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 1.0, res.Confidence)
		assert.Equal(t, 0.0, res.AmountDifference)
	})

	t.Run("DifferenceExactlyAtTolerance", func(t *testing.T) {
		res, err := s.Evaluate(ledgerRecord(100.00), statementRecord(100.01))
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 1.0, res.Confidence)
	})

	t.Run("DifferenceJustBeyondTolerance", func(t *testing.T) {
		res, err := s.Evaluate(ledgerRecord(100.00), statementRecord(100.02))
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("CustomTolerance", func(t *testing.T) {
		s := NewExactAmount(ExactAmountParams{Tolerance: 1.0})
		res, err := s.Evaluate(ledgerRecord(100.00), statementRecord(100.75))
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 1.0, res.Confidence)
	})
}

func TestAmountDate(t *testing.T) {
	s := NewAmountDate(AmountDateParams{})

	t.Run("WithinBothTolerances", func(t *testing.T) {
		left := ledgerRecord(1000.00)
		left.Date = date(2024, time.May, 29)
		right := statementRecord(1000.00)
		right.Date = date(2024, time.May, 31)

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 2, res.DateDifferenceDays)
		// Amount score 1.0, date score 1 - 2/3.
		assert.InDelta(t, (1.0+1.0/3.0)/2, res.Confidence, 1e-9)
	})

	t.Run("DatesTooFarApart", func(t *testing.T) {
		left := ledgerRecord(1000.00)
		left.Date = date(2024, time.May, 20)
		right := statementRecord(1000.00)
		right.Date = date(2024, time.May, 31)

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("MissingDateFailsGate", func(t *testing.T) {
		left := ledgerRecord(1000.00)
		right := statementRecord(1000.00)
		right.Date = date(2024, time.May, 31)

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("AmountOutsideTolerance", func(t *testing.T) {
		left := ledgerRecord(1000.00)
		left.Date = date(2024, time.May, 30)
		right := statementRecord(1000.50)
		right.Date = date(2024, time.May, 31)

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestDescriptionSimilarity(t *testing.T) {
	s := NewDescriptionSimilarity(DescriptionSimilarityParams{})

	t.Run("SimilarDescriptions", func(t *testing.T) {
		left := ledgerRecord(250.00)
		left.Description = "ACH PAYROLL ACME CORP"
		right := statementRecord(250.00)
		right.Description = "ACME CORP ACH PAYROLL"

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		require.NotNil(t, res)
		// Token sets are identical, so order does not matter.
		assert.Equal(t, 1.0, res.DescriptionSimilarity)
		assert.Equal(t, 1.0, res.Confidence)
	})

	t.Run("UnrelatedDescriptions", func(t *testing.T) {
		left := ledgerRecord(250.00)
		left.Description = "WIRE TRANSFER OUT"
		right := statementRecord(250.00)
		right.Description = "MONTHLY SERVICE CHARGE"

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("EmptyDescriptionFailsGate", func(t *testing.T) {
		left := ledgerRecord(250.00)
		right := statementRecord(250.00)
		right.Description = "ACH PAYROLL"

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("AmountOutsidePercentBand", func(t *testing.T) {
		left := ledgerRecord(100.00)
		left.Description = "ACH PAYROLL ACME CORP"
		right := statementRecord(150.00)
		right.Description = "ACH PAYROLL ACME CORP"

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("CaseInsensitive", func(t *testing.T) {
		left := ledgerRecord(250.00)
		left.Description = "ach payroll acme corp"
		right := statementRecord(250.00)
		right.Description = "ACH PAYROLL ACME CORP"

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, 1.0, res.DescriptionSimilarity)
	})
}

func TestPartialAmount(t *testing.T) {
	s := NewPartialAmount(PartialAmountParams{})

	t.Run("LargeTransactionWithinBand", func(t *testing.T) {
		res, err := s.Evaluate(ledgerRecord(5000.00), statementRecord(5100.00))
		require.NoError(t, err)
		require.NotNil(t, res)
		// diff 100 against tolerance 5000*0.05=250.
		assert.InDelta(t, 1-100.0/250.0, res.Confidence, 1e-9)
		assert.InDelta(t, 100.0, res.AmountDifference, 1e-9)
	})

	t.Run("SmallTransactionSkipped", func(t *testing.T) {
		res, err := s.Evaluate(ledgerRecord(500.00), statementRecord(510.00))
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("DifferenceBeyondBand", func(t *testing.T) {
		res, err := s.Evaluate(ledgerRecord(5000.00), statementRecord(5300.00))
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("NegativeAmountsUseMagnitude", func(t *testing.T) {
		res, err := s.Evaluate(ledgerRecord(-5000.00), statementRecord(-5100.00))
		require.NoError(t, err)
		require.NotNil(t, res)
	})
}

func TestCategoryPattern(t *testing.T) {
	s := NewCategoryPattern(CategoryPatternParams{})

	t.Run("SameCategoryCloseAmounts", func(t *testing.T) {
		left := ledgerRecord(100.00)
		left.Category = "ACH"
		right := statementRecord(110.00)
		right.Category = "ACH"

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		require.NotNil(t, res)
		// Base score 0.8 averaged with amount score 1 - 10/(110*0.2).
		amountScore := 1 - 10.0/(110.0*0.2)
		assert.InDelta(t, (0.8+amountScore)/2, res.Confidence, 1e-9)
	})

	t.Run("DifferentCategories", func(t *testing.T) {
		left := ledgerRecord(100.00)
		left.Category = "ACH"
		right := statementRecord(100.00)
		right.Category = "WIRE"

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("UncategorizedFailsGate", func(t *testing.T) {
		res, err := s.Evaluate(ledgerRecord(100.00), statementRecord(100.00))
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("AmountOutsideBallpark", func(t *testing.T) {
		left := ledgerRecord(100.00)
		left.Category = "ACH"
		right := statementRecord(200.00)
		right.Category = "ACH"

		res, err := s.Evaluate(left, right)
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}

func TestDefaultCascadeOrder(t *testing.T) {
	cascade := DefaultCascade()
	require.Len(t, cascade, 5)

	names := make([]string, 0, len(cascade))
	for _, s := range cascade {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{
		"exact_amount_match",
		"amount_date_match",
		"description_similarity",
		"partial_amount_match",
		"category_pattern_match",
	}, names)

	// Weights strictly decrease with priority.
	for i := 1; i < len(cascade); i++ {
		assert.Greater(t, cascade[i-1].Weight(), cascade[i].Weight())
	}
}
