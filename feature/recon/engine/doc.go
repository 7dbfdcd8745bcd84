// Package engine drives the iterative reconciliation of a ledger record
// set against a statement record set.
//
// # Execution Model
//
// One run progresses through bounded iterations. Each iteration applies the
// strategy cascade in priority order against the current unmatched pools:
// for every unmatched ledger record, the best-scoring statement candidate
// passing the strategy's gate is accepted, with ties broken by the lowest
// original index. Accepted pairs leave both pools immediately, so matching
// is at-most-one by construction and two runs over the same input produce
// identical match lists.
//
// The controller stops on the first of: an empty pool (CONVERGED), the
// target match rate (TARGET_REACHED), an iteration with zero new matches
// (STALLED), or the iteration/wall-time budget (EXHAUSTED). A stalled or
// exhausted run is a normal outcome carrying partial results, not an error.
//
// # Audit Trail
//
// Every match, iteration snapshot and skipped candidate pair is appended to
// a per-run audit trail, with a per-strategy rollup computed at the end.
// The trail is a value returned to the caller; the engine keeps no state
// between runs and is safe to reuse across independent invocations.
//
// # Classification
//
// After the controller stops, leftover ledger records are classified as
// expected timing differences (month-end window plus a lagging category)
// or discrepancies. Classification annotates records for reporting; it
// never changes the unmatched counts.
package engine
