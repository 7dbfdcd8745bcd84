// Package loader reads transaction CSV files and normalizes them into
// engine records.
//
// Normalization covers everything the engine expects to already be done:
// signed-net amounts (an "amount" column, or a debit/credit pair netted by
// addition), best-effort date parsing across common layouts, side-scoped
// sequential IDs, and a coarse category derived from the description when
// the feed does not carry one.
//
// The engine itself never reads files; this package is the boundary
// between external data formats and the record invariants the engine
// enforces.
package loader
