package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-recon/feature/recon/models"
)

func sampleResult() *models.Result {
	date := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	return &models.Result{
		Matches: []models.Match{
			{
				LeftID:     "ledger-1",
				RightID:    "statement-1",
				Strategy:   "exact_amount_match",
				Weight:     1.0,
				Confidence: 1.0,
				Iteration:  1,
				Rationale:  models.Rationale{Reason: "amounts match exactly", AmountDifference: 0},
			},
		},
		UnmatchedLedger: []models.ClassifiedUnmatched{
			{
				Record: models.Record{
					ID: "ledger-2", Side: models.SideLedger, Amount: 400.00,
					Date: &date, Category: "ATM_SETTLEMENT",
				},
				Classification: models.ClassTimingDifference,
				Reason:         "category ATM_SETTLEMENT posts with a known lag and the date falls in the last 2 day(s) of the month",
			},
		},
		Audit: models.AuditTrail{
			RunID:     "run-1",
			StartedAt: date,
			StrategyStats: map[string]models.StrategyStats{
				"exact_amount_match": {MatchesFound: 1, AverageConfidence: 1.0, ContributionToTotal: 1.0, Weight: 1.0},
			},
		},
		Summary: models.Summary{
			LedgerTotal:    900.00,
			StatementTotal: 500.00,
			Variance:       400.00,
			Balanced:       true,
			MatchCount:     1,
			MatchRate:      0.5,
		},
		FinalState: models.StateStalled,
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleResult()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "STALLED", decoded["final_state"])

	matches, ok := decoded["matches"].([]any)
	require.True(t, ok)
	require.Len(t, matches, 1)
	match := matches[0].(map[string]any)
	assert.Equal(t, "exact_amount_match", match["strategy"])
	assert.Equal(t, 1.0, match["strategy_weight"])

	summary := decoded["summary"].(map[string]any)
	assert.Equal(t, true, summary["is_balanced"])
	assert.Equal(t, 400.0, summary["variance"])

	unmatched := decoded["unmatched_ledger"].([]any)
	require.Len(t, unmatched, 1)
	first := unmatched[0].(map[string]any)
	assert.Equal(t, "EXPECTED_TIMING_DIFFERENCE", first["classification"])
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	require.NoError(t, WriteFile(path, sampleResult()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded models.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, models.StateStalled, decoded.FinalState)
	require.Len(t, decoded.Matches, 1)
	assert.Equal(t, "ledger-1", decoded.Matches[0].LeftID)
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir", "report.json"), sampleResult())
	require.Error(t, err)
}
