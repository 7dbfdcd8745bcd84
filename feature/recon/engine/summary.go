package engine

import (
	"math"

	"ledger-recon/feature/recon/models"
)

// computeSummary aggregates totals, variance and match statistics from the
// final run state. Variance is signed (ledger minus statement) and the
// balanced flag compares it against the materiality threshold.
func computeSummary(ledger, statement []models.Record, matches []models.Match, classified []models.ClassifiedUnmatched, balanceTolerance float64) models.Summary {
	var ledgerTotal, statementTotal float64
	for _, r := range ledger {
		ledgerTotal += r.Amount
	}
	for _, r := range statement {
		statementTotal += r.Amount
	}

	variance := ledgerTotal - statementTotal
	variancePct := 0.0
	if ledgerTotal != 0 {
		variancePct = variance / math.Abs(ledgerTotal) * 100
	}

	matchRate := 0.0
	if len(ledger) > 0 {
		matchRate = float64(len(matches)) / float64(len(ledger))
	}

	timing, discrepancies := 0, 0
	for _, c := range classified {
		if c.Classification == models.ClassTimingDifference {
			timing++
		} else {
			discrepancies++
		}
	}

	return models.Summary{
		LedgerTotal:        ledgerTotal,
		StatementTotal:     statementTotal,
		Variance:           variance,
		VariancePercentage: variancePct,
		Balanced:           math.Abs(variance) < balanceTolerance,
		TotalLedger:        len(ledger),
		TotalStatement:     len(statement),
		MatchCount:         len(matches),
		MatchRate:          matchRate,
		TimingDifferences:  timing,
		Discrepancies:      discrepancies,
	}
}
