// Package strategy defines the matching heuristics used by the
// reconciliation engine.
//
// A Strategy is a pure function over one (ledger, statement) candidate pair:
// it either rejects the pair at its hard gate, or returns a confidence score
// in [0,1] together with rationale fields for the audit trail. Strategies
// never see the full unmatched pool and never mutate records.
//
// # Built-in Cascade
//
// Five strategies ship with the engine, applied in fixed priority order,
// highest precision first:
//
//  1. ExactAmount - amounts equal within an absolute tolerance.
//  2. AmountDate - amounts within tolerance and dates within a day window.
//  3. DescriptionSimilarity - similar descriptions with amounts in a
//     percentage band.
//  4. PartialAmount - large transactions with amounts within a percentage
//     of the ledger side.
//  5. CategoryPattern - same derived category with amounts in the ballpark.
//
// Each strategy carries a static weight used only for reporting; weights
// never alter gates or confidence math.
package strategy
