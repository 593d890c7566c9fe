package kronos

import (
	"fmt"
	"math"
	"sort"
)

// Era is a contiguous block of time in a calendar from which time can be
// referenced. Multiple eras can exist (and overlap) simultaneously, making
// them a flexible tool for spacing out chunks of time such as reigning
// monarchs, or warring gods.
//
// An era that is unbounded on the left (no start year) is considered to
// have always existed, while an era that is unbounded on the right has
// not ended.
type Era struct {
	Name      string `yaml:"name"`
	StartYear *int64 `yaml:"start_year,omitempty"`
	EndYear   *int64 `yaml:"end_year,omitempty"`
}

// Contains reports whether the era's range includes the given year.
func (e Era) Contains(year int64) bool {
	if e.StartYear != nil && year < *e.StartYear {
		return false
	}
	if e.EndYear != nil && year > *e.EndYear {
		return false
	}
	return true
}

// EraForYear finds the first era, in list order, whose range contains the
// year, and re-bases the year relative to the era's start. Displayed years
// are 1-indexed relative to the era start; eras without a start year leave
// the year unchanged.
//
// The second return reports whether the calendar has eras at all. Coverage
// of the whole year axis is validated at construction, so a calendar with
// eras always resolves.
func (c *Calendar) EraForYear(year int64) (Era, int64, bool) {
	for _, e := range c.eras {
		if !e.Contains(year) {
			continue
		}
		display := year
		if e.StartYear != nil {
			display = year - *e.StartYear + 1
		}
		return e, display, true
	}
	return Era{}, year, false
}

// validateEraCoverage checks that every year matches at least one era.
// An empty era list is allowed and disables era resolution entirely; a
// non-empty list with a gap is a configuration error.
func validateEraCoverage(eras []Era) error {
	if len(eras) == 0 {
		return nil
	}

	type span struct{ start, end int64 }
	spans := make([]span, 0, len(eras))
	for _, e := range eras {
		s := span{start: math.MinInt64, end: math.MaxInt64}
		if e.StartYear != nil {
			s.start = *e.StartYear
		}
		if e.EndYear != nil {
			s.end = *e.EndYear
		}
		if s.start > s.end {
			return fmt.Errorf("era %q ends before it starts", e.Name)
		}
		spans = append(spans, s)
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	if spans[0].start != math.MinInt64 {
		return fmt.Errorf("eras leave the years before %d unmatched", spans[0].start)
	}
	covered := spans[0].end
	for _, s := range spans[1:] {
		if covered == math.MaxInt64 {
			return nil
		}
		if s.start > covered+1 {
			return fmt.Errorf("eras leave the years %d to %d unmatched", covered+1, s.start-1)
		}
		if s.end > covered {
			covered = s.end
		}
	}
	if covered != math.MaxInt64 {
		return fmt.Errorf("eras leave the years after %d unmatched", covered)
	}
	return nil
}
