package engine

import (
	"golang.org/x/sync/errgroup"

	"ledger-recon/feature/recon/models"
	"ledger-recon/feature/recon/strategy"
)

// pools tracks the shrinking unmatched sets for one run. Records stay in
// their original load order; matching flips a flag instead of reslicing,
// so original indices remain stable for deterministic tie-breaking.
type pools struct {
	ledger           []models.Record
	statement        []models.Record
	ledgerMatched    []bool
	statementMatched []bool
	ledgerLeft       int
	statementLeft    int
}

func newPools(ledger, statement []models.Record) *pools {
	return &pools{
		ledger:           ledger,
		statement:        statement,
		ledgerMatched:    make([]bool, len(ledger)),
		statementMatched: make([]bool, len(statement)),
		ledgerLeft:       len(ledger),
		statementLeft:    len(statement),
	}
}

// scoredCandidate is the outcome of evaluating one statement candidate.
type scoredCandidate struct {
	result *strategy.ScoreResult
	err    error
}

// runCascade executes all strategies in priority order for one iteration
// and returns the per-strategy match counts. Accepted pairs are removed
// from both pools immediately, so later left records within the same
// strategy pass cannot re-consume a matched candidate.
func (e *Engine) runCascade(p *pools, iteration int, rec *auditRecorder) map[string]int {
	counts := make(map[string]int, len(e.strategies))

	for _, st := range e.strategies {
		found := 0

		for i := range p.ledger {
			if p.ledgerMatched[i] {
				continue
			}
			if p.statementLeft == 0 {
				break
			}
			left := p.ledger[i]

			scores := e.scoreCandidates(st, left, p)

			// Select the best-scoring candidate; ties go to the lowest
			// original index because the scan is in index order and only
			// strictly better scores replace the current best.
			bestIdx := -1
			var best *strategy.ScoreResult
			for j := range p.statement {
				if p.statementMatched[j] {
					continue
				}
				sc := scores[j]
				if sc.err != nil {
					rec.addSkipped(iteration, st.Name(), left.ID, p.statement[j].ID, sc.err)
					continue
				}
				if sc.result == nil {
					continue
				}
				if best == nil || sc.result.Confidence > best.Confidence {
					best = sc.result
					bestIdx = j
				}
			}
			if bestIdx < 0 {
				continue
			}

			p.ledgerMatched[i] = true
			p.statementMatched[bestIdx] = true
			p.ledgerLeft--
			p.statementLeft--
			found++

			rec.addMatch(models.Match{
				LeftID:     left.ID,
				RightID:    p.statement[bestIdx].ID,
				Strategy:   st.Name(),
				Weight:     st.Weight(),
				Confidence: best.Confidence,
				Iteration:  iteration,
				Rationale: models.Rationale{
					Reason:                best.Reason,
					AmountDifference:      best.AmountDifference,
					DateDifferenceDays:    best.DateDifferenceDays,
					DescriptionSimilarity: best.DescriptionSimilarity,
				},
			})
		}

		// A strategy that found nothing still contributes a zero count.
		counts[st.Name()] = found
	}

	return counts
}

// scoreCandidates evaluates one left record against every unmatched
// statement candidate. Scoring is embarrassingly parallel; results land in
// an index-addressed slice so no ordering is lost. Acceptance stays with
// the caller, which walks the slice serially.
func (e *Engine) scoreCandidates(st strategy.Strategy, left models.Record, p *pools) []scoredCandidate {
	scores := make([]scoredCandidate, len(p.statement))

	if e.cfg.ScoreWorkers < 2 {
		for j := range p.statement {
			if p.statementMatched[j] {
				continue
			}
			res, err := st.Evaluate(left, p.statement[j])
			scores[j] = scoredCandidate{result: res, err: err}
		}
		return scores
	}

	var g errgroup.Group
	g.SetLimit(e.cfg.ScoreWorkers)
	for j := range p.statement {
		if p.statementMatched[j] {
			continue
		}
		j := j
		g.Go(func() error {
			res, err := st.Evaluate(left, p.statement[j])
			scores[j] = scoredCandidate{result: res, err: err}
			return nil
		})
	}
	// Workers never return errors; failures are carried per candidate.
	_ = g.Wait()

	return scores
}
