package models

import "time"

// Side identifies which record set a transaction belongs to.
type Side string

const (
	// SideLedger marks a record from the internal ledger set.
	SideLedger Side = "LEDGER"
	// SideStatement marks a record from the external statement set.
	SideStatement Side = "STATEMENT"
)

// Record represents one normalized transaction from either side.
// Both sides carry the same signed-net amount convention; the loader is
// responsible for normalization. Records are immutable once loaded: the
// engine never mutates amounts, dates or descriptions.
type Record struct {
	// ID is a stable, unique, side-scoped identifier assigned at load time.
	ID string `json:"id"`

	// Side tags the record set this record came from.
	Side Side `json:"side"`

	// Amount is the signed net amount.
	Amount float64 `json:"amount"`

	// Date is the record's effective date. Records without a date are only
	// eligible for date-agnostic strategies.
	Date *time.Time `json:"date,omitempty"`

	// Description is the free-text label, case-preserved as provided.
	Description string `json:"description"`

	// Category is an optional coarse transaction-type tag derived from the
	// description (e.g. "ACH", "CHECK"). Empty means uncategorized.
	Category string `json:"category,omitempty"`
}

// Rationale holds the structured reasoning behind a match. Strategy-specific
// fields are zero when they do not apply to the producing strategy.
type Rationale struct {
	// Reason is a human-readable explanation of the match.
	Reason string `json:"reason"`

	// AmountDifference is the absolute difference between the two amounts.
	AmountDifference float64 `json:"amount_difference"`

	// DateDifferenceDays is the absolute date gap in days, when both records
	// carried a date and the strategy compared them.
	DateDifferenceDays int `json:"date_difference_days,omitempty"`

	// DescriptionSimilarity is the similarity ratio in [0,1], when the
	// strategy compared descriptions.
	DescriptionSimilarity float64 `json:"description_similarity,omitempty"`
}

// Match is the result of one strategy accepting a (ledger, statement) pair.
// Every record ID appears in at most one Match per run.
type Match struct {
	// LeftID is the consumed ledger record ID.
	LeftID string `json:"left_id"`

	// RightID is the consumed statement record ID.
	RightID string `json:"right_id"`

	// Strategy is the name of the strategy that produced this match.
	Strategy string `json:"strategy"`

	// Weight is the static priority metadata of the producing strategy.
	Weight float64 `json:"strategy_weight"`

	// Confidence is the strategy's self-reported certainty in [0,1].
	Confidence float64 `json:"confidence"`

	// Iteration is the pass number that produced this match (1-based).
	Iteration int `json:"iteration"`

	// Rationale explains why the pair was accepted.
	Rationale Rationale `json:"rationale"`
}

// IterationRecord captures the outcome of one cascade pass.
type IterationRecord struct {
	// Iteration is the pass number (1-based).
	Iteration int `json:"iteration"`

	// Timestamp is when the pass finished.
	Timestamp time.Time `json:"timestamp"`

	// StrategyMatches maps strategy name to the number of matches it found
	// during this pass. Strategies that found nothing contribute a zero.
	StrategyMatches map[string]int `json:"strategy_matches"`

	// MatchRate is the cumulative match rate after this pass.
	MatchRate float64 `json:"match_rate"`

	// RemainingLedger is the unmatched ledger count after this pass.
	RemainingLedger int `json:"remaining_ledger"`

	// RemainingStatement is the unmatched statement count after this pass.
	RemainingStatement int `json:"remaining_statement"`

	// SkippedPairs is the number of candidate pairs skipped during this pass
	// because a strategy failed while scoring them.
	SkippedPairs int `json:"skipped_pairs,omitempty"`
}

// Classification labels a leftover unmatched ledger record.
type Classification string

const (
	// ClassTimingDifference marks a record explained by a known posting-lag
	// pattern: dated in the configured month-end window and carrying a
	// category known to post late.
	ClassTimingDifference Classification = "EXPECTED_TIMING_DIFFERENCE"

	// ClassDiscrepancy marks a genuine unexplained leftover.
	ClassDiscrepancy Classification = "DISCREPANCY"
)

// ClassifiedUnmatched is a leftover ledger record plus its classification.
// Classification only annotates the record; it never removes it from the
// unmatched count.
type ClassifiedUnmatched struct {
	Record         Record         `json:"record"`
	Classification Classification `json:"classification"`
	Reason         string         `json:"reason"`
}

// StrategyStats is the per-strategy rollup accumulated over a whole run.
type StrategyStats struct {
	// MatchesFound is the total number of matches the strategy produced.
	MatchesFound int `json:"matches_found"`

	// AverageConfidence is the mean confidence over the strategy's matches,
	// zero when it produced none.
	AverageConfidence float64 `json:"average_confidence"`

	// ContributionToTotal is the strategy's share of all matches in [0,1].
	ContributionToTotal float64 `json:"contribution_to_total"`

	// Weight is the strategy's static priority metadata.
	Weight float64 `json:"weight"`
}

// SkippedPair records one candidate pair a strategy failed to score.
// The pair is treated as non-matching and the cascade continues.
type SkippedPair struct {
	Iteration int    `json:"iteration"`
	Strategy  string `json:"strategy"`
	LeftID    string `json:"left_id"`
	RightID   string `json:"right_id"`
	Error     string `json:"error"`
}

// AuditTrail is the append-only log of everything the engine decided.
type AuditTrail struct {
	// RunID uniquely identifies this reconciliation run.
	RunID string `json:"run_id"`

	// StartedAt and FinishedAt bound the run wall time.
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	// Iterations holds one record per cascade pass, in order.
	Iterations []IterationRecord `json:"iterations"`

	// StrategyStats maps strategy name to its rollup.
	StrategyStats map[string]StrategyStats `json:"strategy_stats"`

	// Skipped lists candidate pairs that failed strategy evaluation.
	Skipped []SkippedPair `json:"skipped,omitempty"`
}

// Summary aggregates totals, variance and match rate from the final state.
type Summary struct {
	// LedgerTotal is the sum of all ledger record amounts.
	LedgerTotal float64 `json:"ledger_total"`

	// StatementTotal is the sum of all statement record amounts.
	StatementTotal float64 `json:"statement_total"`

	// Variance is LedgerTotal - StatementTotal.
	Variance float64 `json:"variance"`

	// VariancePercentage is Variance relative to |LedgerTotal|, in percent.
	// Zero when the ledger total is zero.
	VariancePercentage float64 `json:"variance_percentage"`

	// Balanced reports whether |Variance| is below the materiality
	// threshold (balance tolerance).
	Balanced bool `json:"is_balanced"`

	// TotalLedger and TotalStatement are the input record counts.
	TotalLedger    int `json:"total_ledger"`
	TotalStatement int `json:"total_statement"`

	// MatchCount is the number of accepted matches.
	MatchCount int `json:"match_count"`

	// MatchRate is MatchCount over TotalLedger, zero for an empty ledger.
	MatchRate float64 `json:"match_rate"`

	// TimingDifferences and Discrepancies count classified ledger leftovers.
	TimingDifferences int `json:"timing_differences"`
	Discrepancies     int `json:"discrepancies"`
}

// State is the terminal state of the iteration controller.
type State string

const (
	// StateRunning means the controller has not stopped yet. It never
	// appears in a returned Result.
	StateRunning State = "RUNNING"

	// StateConverged means an unmatched pool became empty.
	StateConverged State = "CONVERGED"

	// StateTargetReached means the target match rate was reached.
	StateTargetReached State = "TARGET_REACHED"

	// StateExhausted means the iteration or wall-time budget ran out.
	StateExhausted State = "EXHAUSTED"

	// StateStalled means an iteration produced zero new matches across all
	// strategies. This is a normal stop, not an error.
	StateStalled State = "STALLED"
)

// Result is the complete output of one reconciliation run.
type Result struct {
	Matches            []Match               `json:"matches"`
	UnmatchedLedger    []ClassifiedUnmatched `json:"unmatched_ledger"`
	UnmatchedStatement []Record              `json:"unmatched_statement"`
	Audit              AuditTrail            `json:"audit_trail"`
	Summary            Summary               `json:"summary"`
	FinalState         State                 `json:"final_state"`
}
