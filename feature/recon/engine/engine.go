package engine

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"ledger-recon/core/logger"
	"ledger-recon/feature/recon/models"
	"ledger-recon/feature/recon/strategy"
)

// Engine runs the multi-strategy iterative reconciliation over two record
// sets. It is CPU-bound, performs no I/O, and owns no state across runs:
// every Run invocation builds its own pools and audit trail, so an Engine
// is safe to reuse across independent calls.
type Engine struct {
	cfg        Config
	strategies []strategy.Strategy
	log        *zap.Logger
}

// New creates an engine, applying defaults and validating the
// configuration. A nil logger disables engine logging.
func New(cfg Config, log *zap.Logger) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: cfg, strategies: cfg.Strategies, log: log}, nil
}

// Run reconciles the ledger sequence against the statement sequence.
//
// Input records must already be normalized to the shared signed-net
// convention. Both sequences are validated before the first iteration;
// an invalid record aborts the run with an InvalidRecordError and no
// partial audit trail.
//
// The context is honored cooperatively: cancellation or an expired
// deadline is only observed between iterations, in which case the run
// stops as EXHAUSTED with whatever matches were found. A run that stalls
// or exhausts its budget is not an error.
func (e *Engine) Run(ctx context.Context, ledger, statement []models.Record) (*models.Result, error) {
	if err := validateRecords(models.SideLedger, ledger); err != nil {
		return nil, err
	}
	if err := validateRecords(models.SideStatement, statement); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	log := logger.WithRunID(e.log, runID)
	log.Info("Starting reconciliation run",
		zap.Int("ledger_records", len(ledger)),
		zap.Int("statement_records", len(statement)),
		zap.Float64("target_match_rate", e.cfg.TargetMatchRate),
		zap.Int("max_iterations", e.cfg.MaxIterations),
	)

	rec := newAuditRecorder(runID, e.strategies)
	p := newPools(ledger, statement)

	var deadline time.Time
	if e.cfg.MaxWallTime > 0 {
		deadline = rec.startedAt.Add(e.cfg.MaxWallTime)
	}

	totalLedger := len(ledger)
	matchRate := 0.0
	iteration := 0
	state := models.StateRunning

	for state == models.StateRunning {
		if p.ledgerLeft == 0 || p.statementLeft == 0 {
			state = models.StateConverged
			break
		}
		if ctx.Err() != nil {
			log.Warn("Run cancelled at iteration boundary", zap.Int("iterations_completed", iteration))
			state = models.StateExhausted
			break
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			log.Warn("Wall-time budget exceeded", zap.Duration("max_wall_time", e.cfg.MaxWallTime))
			state = models.StateExhausted
			break
		}

		iteration++
		counts := e.runCascade(p, iteration, rec)

		newMatches := 0
		for _, n := range counts {
			newMatches += n
		}
		matchRate = float64(len(rec.matches)) / float64(totalLedger)

		rec.addIteration(models.IterationRecord{
			Iteration:          iteration,
			Timestamp:          time.Now(),
			StrategyMatches:    counts,
			MatchRate:          matchRate,
			RemainingLedger:    p.ledgerLeft,
			RemainingStatement: p.statementLeft,
			SkippedPairs:       rec.skippedIn(iteration),
		})

		log.Debug("Iteration completed",
			zap.Int("iteration", iteration),
			zap.Int("new_matches", newMatches),
			zap.Float64("match_rate", matchRate),
		)

		switch {
		case p.ledgerLeft == 0 || p.statementLeft == 0:
			state = models.StateConverged
		case matchRate >= e.cfg.TargetMatchRate:
			state = models.StateTargetReached
		case newMatches == 0:
			state = models.StateStalled
		case iteration >= e.cfg.MaxIterations:
			state = models.StateExhausted
		}
	}

	unmatchedLedger := collectUnmatched(p.ledger, p.ledgerMatched)
	unmatchedStatement := collectUnmatched(p.statement, p.statementMatched)

	classified := classifyUnmatched(unmatchedLedger, e.cfg.TimingWindowDays, e.cfg.TimingCategories)
	summary := computeSummary(ledger, statement, rec.matches, classified, e.cfg.BalanceTolerance)

	log.Info("Reconciliation run finished",
		zap.String("final_state", string(state)),
		zap.Int("iterations", iteration),
		zap.Int("matches", len(rec.matches)),
		zap.Float64("match_rate", matchRate),
		zap.Int("unmatched_ledger", len(unmatchedLedger)),
		zap.Int("unmatched_statement", len(unmatchedStatement)),
	)

	return &models.Result{
		Matches:            rec.matches,
		UnmatchedLedger:    classified,
		UnmatchedStatement: unmatchedStatement,
		Audit:              rec.trail(),
		Summary:            summary,
		FinalState:         state,
	}, nil
}

// validateRecords enforces the record invariants for one side: a present,
// side-unique ID, a finite amount, and the expected side tag.
func validateRecords(side models.Side, records []models.Record) error {
	seen := make(map[string]struct{}, len(records))
	for i, r := range records {
		if r.ID == "" {
			return &InvalidRecordError{Side: side, Index: i, Reason: "missing id"}
		}
		if _, dup := seen[r.ID]; dup {
			return &InvalidRecordError{Side: side, Index: i, ID: r.ID, Reason: "duplicate id"}
		}
		seen[r.ID] = struct{}{}
		if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) {
			return &InvalidRecordError{Side: side, Index: i, ID: r.ID, Reason: "amount is not a finite number"}
		}
		if r.Side != side {
			return &InvalidRecordError{Side: side, Index: i, ID: r.ID, Reason: "record tagged with wrong side"}
		}
	}
	return nil
}

func collectUnmatched(records []models.Record, matched []bool) []models.Record {
	out := make([]models.Record, 0)
	for i, r := range records {
		if !matched[i] {
			out = append(out, r)
		}
	}
	return out
}
