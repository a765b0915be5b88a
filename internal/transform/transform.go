// Package transform implements the filter/sort step applied to income
// statements after they are fetched from the provider.
//
// It is a pure function of its inputs: no state, no I/O, no mutation of the
// records it receives.
package transform

import (
	"sort"

	"github.com/nishanthjadav/financial-backend/internal/domain/models"
)

// Criteria holds the optional inclusive bounds a statement must satisfy to be
// retained. All fields are pointers to distinguish "not set" from zero values.
//
// Known quirk, preserved on purpose: a bound whose value is zero behaves as if
// it were absent, even when the caller supplied it explicitly
// (minRevenue=0 is identical to no minRevenue at all). The original service
// relied on falsy-value checks and its observable behavior is kept.
type Criteria struct {
	StartDate    *int     // date >= StartDate
	EndDate      *int     // date <= EndDate
	MinRevenue   *float64 // revenue >= MinRevenue
	MaxRevenue   *float64 // revenue <= MaxRevenue
	MinNetIncome *float64 // netIncome >= MinNetIncome
	MaxNetIncome *float64 // netIncome <= MaxNetIncome
}

// Apply filters records by the given criteria, then orders the survivors in
// descending order by the sort key.
//
// Behavior:
//   - All bounds are inclusive and conjunctive: a record failing any one
//     enforced bound is excluded.
//   - A record missing date, revenue, or netIncome (or carrying a non-numeric
//     value there) is treated as malformed upstream data and excluded.
//   - Sorting is stable: ties keep the provider's original order. An
//     unrecognized sort key leaves the filtered order untouched.
//
// The input slice is never mutated; the result is a fresh, non-nil slice
// referencing the same records, so an empty result serializes as [].
func Apply(records []models.Statement, c Criteria, sortBy models.SortKey) []models.Statement {
	out := make([]models.Statement, 0, len(records))
	for _, rec := range records {
		if c.matches(rec) {
			out = append(out, rec)
		}
	}

	field, ok := sortBy.Field()
	if !ok {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, _ := field(out[i])
		b, _ := field(out[j])
		return a > b
	})
	return out
}

// matches reports whether a record satisfies every enforced bound.
// Records without the three core numeric fields never match.
func (c Criteria) matches(rec models.Statement) bool {
	date, ok := rec.Date()
	if !ok {
		return false
	}
	revenue, ok := rec.Revenue()
	if !ok {
		return false
	}
	netIncome, ok := rec.NetIncome()
	if !ok {
		return false
	}

	if min, ok := intBound(c.StartDate); ok && date < min {
		return false
	}
	if max, ok := intBound(c.EndDate); ok && date > max {
		return false
	}
	if min, ok := floatBound(c.MinRevenue); ok && revenue < min {
		return false
	}
	if max, ok := floatBound(c.MaxRevenue); ok && revenue > max {
		return false
	}
	if min, ok := floatBound(c.MinNetIncome); ok && netIncome < min {
		return false
	}
	if max, ok := floatBound(c.MaxNetIncome); ok && netIncome > max {
		return false
	}
	return true
}

// intBound resolves an optional date bound. Zero means "not provided"
// (see the quirk note on Criteria).
func intBound(p *int) (float64, bool) {
	if p == nil || *p == 0 {
		return 0, false
	}
	return float64(*p), true
}

// floatBound resolves an optional monetary bound. Zero means "not provided"
// (see the quirk note on Criteria).
func floatBound(p *float64) (float64, bool) {
	if p == nil || *p == 0 {
		return 0, false
	}
	return *p, true
}
