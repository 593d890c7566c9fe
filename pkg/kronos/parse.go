package kronos

import (
	"fmt"
	"regexp"
	"strconv"
)

// The grammars are tried in a fixed priority order; the first one that
// matches wins. The "mo" suffix must be listed before the single-letter
// alternatives so that minutes never swallow the month marker.
var (
	dateRe    = regexp.MustCompile(`^(\d+)-(\d+)-(\d+)$`)
	relRe     = regexp.MustCompile(`^(\d+(mo|[ywdhms]))+$`)
	relTermRe = regexp.MustCompile(`(\d+)(mo|[ywdhms])`)
	clockRe   = regexp.MustCompile(`^(\d+)(am|pm)$`)
)

// Unit is a unit of time in a relative duration expression.
type Unit string

const (
	UnitYear   Unit = "y"
	UnitMonth  Unit = "mo"
	UnitWeek   Unit = "w"
	UnitDay    Unit = "d"
	UnitHour   Unit = "h"
	UnitMinute Unit = "m"
	UnitSecond Unit = "s"
)

// Expr is a parsed time expression, decoupled from the calendar that will
// eventually evaluate it.
type Expr interface {
	isExpr()
}

// AbsoluteDate is a year-month-day expression such as "2020-01-04".
type AbsoluteDate struct {
	Year  int64
	Month int
	Day   int
}

// Keyword is a named expression such as "long rest" or "midnight".
type Keyword string

// Keywords understood by the parser.
const (
	KeywordLongRest  Keyword = "long rest"
	KeywordShortRest Keyword = "short rest"
	KeywordMidday    Keyword = "midday"
	KeywordMidnight  Keyword = "midnight"
)

// RelativeDuration is a sequence of duration terms such as "1y2mo3d",
// applied left to right.
type RelativeDuration struct {
	Terms []DurationTerm
}

// DurationTerm is a single amount-unit pair in a relative duration.
type DurationTerm struct {
	Amount int64
	Unit   Unit
}

// ClockTime is an am/pm hour expression such as "8am".
type ClockTime struct {
	Hour   int
	Format TimeFormat
}

func (AbsoluteDate) isExpr()     {}
func (Keyword) isExpr()          {}
func (RelativeDuration) isExpr() {}
func (ClockTime) isExpr()        {}

// ParseExpr performs the lexical pass over a time expression, producing
// an Expr without consulting any calendar. It fails with ErrInvalidFormat
// when no grammar matches.
func ParseExpr(input string) (Expr, error) {
	if m := dateRe.FindStringSubmatch(input); m != nil {
		year, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("year %q: %w", m[1], ErrInvalidFormat)
		}
		month, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("month %q: %w", m[2], ErrInvalidFormat)
		}
		day, err := strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("day %q: %w", m[3], ErrInvalidFormat)
		}
		return AbsoluteDate{Year: year, Month: month, Day: day}, nil
	}

	switch Keyword(input) {
	case KeywordLongRest, KeywordShortRest, KeywordMidday, KeywordMidnight:
		return Keyword(input), nil
	}

	if relRe.MatchString(input) {
		var terms []DurationTerm
		for _, m := range relTermRe.FindAllStringSubmatch(input, -1) {
			amount, err := strconv.ParseInt(m[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("amount %q: %w", m[1], ErrInvalidFormat)
			}
			terms = append(terms, DurationTerm{Amount: amount, Unit: Unit(m[2])})
		}
		return RelativeDuration{Terms: terms}, nil
	}

	if m := clockRe.FindStringSubmatch(input); m != nil {
		hour, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("hour %q: %w", m[1], ErrInvalidFormat)
		}
		format := AM
		if m[2] == "pm" {
			format = PM
		}
		return ClockTime{Hour: hour, Format: format}, nil
	}

	return nil, ErrInvalidFormat
}

// Parse turns a human-typed expression into a DateTime according to the
// rules of this calendar:
//
//	1101-02-12   some specific date
//	8am, 2pm     some specific time
//	1y32mo6d3s   relative from some time
//	long rest    exactly 8 hours
//	short rest   exactly 4 hours
//
// Expressions other than absolute dates are relative and need a reference
// point; passing a nil relativeTo makes them fail with
// ErrNoReferencePoint.
func (c *Calendar) Parse(input string, relativeTo *DateTime) (DateTime, error) {
	expr, err := ParseExpr(input)
	if err != nil {
		return DateTime{}, err
	}

	if abs, ok := expr.(AbsoluteDate); ok {
		return c.FromYMD(abs.Year, abs.Month, abs.Day)
	}

	if relativeTo == nil {
		return DateTime{}, ErrNoReferencePoint
	}
	relative := *relativeTo

	switch e := expr.(type) {
	case Keyword:
		switch e {
		case KeywordLongRest:
			return relative.AddHours(8), nil
		case KeywordShortRest:
			return relative.AddHours(4), nil
		case KeywordMidday:
			return relative.WaitUntil(Midday)
		case KeywordMidnight:
			return relative.WaitUntil(Midnight)
		}
	case RelativeDuration:
		for _, term := range e.Terms {
			switch term.Unit {
			case UnitYear:
				relative = relative.AddYears(term.Amount)
			case UnitMonth:
				relative = relative.AddMonths(int(term.Amount))
			case UnitWeek:
				relative = relative.AddWeeks(term.Amount)
			case UnitDay:
				relative = relative.AddDays(term.Amount)
			case UnitHour:
				relative = relative.AddHours(term.Amount)
			case UnitMinute:
				relative = relative.AddMinutes(term.Amount)
			case UnitSecond:
				relative = relative.AddSeconds(term.Amount)
			}
		}
		return relative, nil
	case ClockTime:
		t, err := c.TimeFromHMS(e.Hour, 0, 0, e.Format)
		if err != nil {
			return DateTime{}, err
		}
		return relative.WaitUntil(WaitTime(t))
	}

	return DateTime{}, ErrInvalidFormat
}
