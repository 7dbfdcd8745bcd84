// Package report turns a reconciliation result into files.
//
// The engine returns values only; rendering and persistence live here so
// that the matching core stays free of I/O. The JSON report carries the
// complete output: matches with rationale, classified leftovers, the
// iteration-by-iteration audit trail, and the summary.
package report
