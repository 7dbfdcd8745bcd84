package engine

import (
	"fmt"
	"time"

	"ledger-recon/feature/recon/models"
)

// classifyUnmatched annotates leftover ledger records as expected timing
// differences or genuine discrepancies. A record is a timing difference
// when its date falls in the last windowDays calendar days of its month
// and its category is one known to post with a lag. Statement leftovers
// are reported as-is; the timing rules are ledger-anchored.
func classifyUnmatched(records []models.Record, windowDays int, timingCategories []string) []models.ClassifiedUnmatched {
	categories := make(map[string]struct{}, len(timingCategories))
	for _, c := range timingCategories {
		categories[c] = struct{}{}
	}

	out := make([]models.ClassifiedUnmatched, 0, len(records))
	for _, r := range records {
		out = append(out, classify(r, windowDays, categories))
	}
	return out
}

func classify(r models.Record, windowDays int, categories map[string]struct{}) models.ClassifiedUnmatched {
	if r.Date == nil {
		return models.ClassifiedUnmatched{
			Record:         r,
			Classification: models.ClassDiscrepancy,
			Reason:         "record has no date, timing window cannot apply",
		}
	}
	if _, ok := categories[r.Category]; !ok {
		return models.ClassifiedUnmatched{
			Record:         r,
			Classification: models.ClassDiscrepancy,
			Reason:         "category is not a known lagging category",
		}
	}
	if !inMonthEndWindow(*r.Date, windowDays) {
		return models.ClassifiedUnmatched{
			Record:         r,
			Classification: models.ClassDiscrepancy,
			Reason:         fmt.Sprintf("date is outside the last %d day(s) of its month", windowDays),
		}
	}
	return models.ClassifiedUnmatched{
		Record:         r,
		Classification: models.ClassTimingDifference,
		Reason:         fmt.Sprintf("category %s posts with a known lag and the date falls in the last %d day(s) of the month", r.Category, windowDays),
	}
}

// inMonthEndWindow reports whether t falls within the last windowDays
// calendar days of its own month.
func inMonthEndWindow(t time.Time, windowDays int) bool {
	// Day 0 of the next month is the last day of t's month.
	lastDay := time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
	return t.Day() > lastDay-windowDays
}
