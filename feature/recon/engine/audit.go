package engine

import (
	"time"

	"ledger-recon/feature/recon/models"
	"ledger-recon/feature/recon/strategy"
)

// auditRecorder accumulates the append-only decision log for one run.
// It is owned by a single Run invocation and never shared across runs,
// which keeps the engine re-entrant.
type auditRecorder struct {
	runID      string
	startedAt  time.Time
	matches    []models.Match
	iterations []models.IterationRecord
	skipped    []models.SkippedPair
	weights    map[string]float64
}

func newAuditRecorder(runID string, strategies []strategy.Strategy) *auditRecorder {
	weights := make(map[string]float64, len(strategies))
	for _, s := range strategies {
		weights[s.Name()] = s.Weight()
	}
	return &auditRecorder{
		runID:     runID,
		startedAt: time.Now(),
		weights:   weights,
	}
}

func (r *auditRecorder) addMatch(m models.Match) {
	r.matches = append(r.matches, m)
}

func (r *auditRecorder) addSkipped(iteration int, strategyName, leftID, rightID string, err error) {
	r.skipped = append(r.skipped, models.SkippedPair{
		Iteration: iteration,
		Strategy:  strategyName,
		LeftID:    leftID,
		RightID:   rightID,
		Error:     err.Error(),
	})
}

// skippedIn counts skipped pairs recorded for the given iteration.
func (r *auditRecorder) skippedIn(iteration int) int {
	n := 0
	for _, s := range r.skipped {
		if s.Iteration == iteration {
			n++
		}
	}
	return n
}

func (r *auditRecorder) addIteration(rec models.IterationRecord) {
	r.iterations = append(r.iterations, rec)
}

// trail finalizes the audit trail, computing the per-strategy rollup from
// the accumulated matches.
func (r *auditRecorder) trail() models.AuditTrail {
	stats := make(map[string]models.StrategyStats, len(r.weights))
	for name, weight := range r.weights {
		stats[name] = models.StrategyStats{Weight: weight}
	}

	confidenceSums := make(map[string]float64)
	for _, m := range r.matches {
		s := stats[m.Strategy]
		s.MatchesFound++
		stats[m.Strategy] = s
		confidenceSums[m.Strategy] += m.Confidence
	}

	total := len(r.matches)
	for name, s := range stats {
		if s.MatchesFound > 0 {
			s.AverageConfidence = confidenceSums[name] / float64(s.MatchesFound)
			s.ContributionToTotal = float64(s.MatchesFound) / float64(total)
		}
		stats[name] = s
	}

	return models.AuditTrail{
		RunID:         r.runID,
		StartedAt:     r.startedAt,
		FinishedAt:    time.Now(),
		Iterations:    r.iterations,
		StrategyStats: stats,
		Skipped:       r.skipped,
	}
}
