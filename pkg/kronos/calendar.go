// Package kronos models time for invented worlds whose calendars differ
// from the Gregorian one: irregular month lengths, arbitrary week length,
// arbitrary hour/minute/second cycles, and overlapping eras that renumber
// years.
//
// Seconds are the fundamental unit of time. An Instant is a signed count
// of seconds since 0001-01-01T00:00:00 and is the only value that should
// ever be persisted; everything else is derived from it through a Calendar.
//
// For simplicity, it does not support leap-anything.
package kronos

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Month is a named month with an arbitrary number of days.
type Month struct {
	Name string `yaml:"name"`
	Days int    `yaml:"days"`
}

// WeekDay is a named day of the week.
type WeekDay struct {
	Name string `yaml:"name"`
}

// Day describes the cycle lengths that make up a single day.
type Day struct {
	SecondsPerMinute int `yaml:"seconds_per_minute"`
	MinutesPerHour   int `yaml:"minutes_per_hour"`
	HoursPerDay      int `yaml:"hours_per_day"`
}

// DefaultDay returns the familiar 24-hour day.
func DefaultDay() Day {
	return Day{SecondsPerMinute: 60, MinutesPerHour: 60, HoursPerDay: 24}
}

// Calendar provides a frame of reference for the manipulation of time.
// It defines what a day, week, month, and era are.
//
// A Calendar is immutable once constructed and may be shared by any
// number of DateTime values. Worlds that need a different structure
// construct a new Calendar rather than mutating an existing one.
type Calendar struct {
	months   []Month
	weekDays []WeekDay
	day      Day
	eras     []Era

	daysInYear int64
}

// New builds a Calendar and validates its configuration. It fails on an
// empty month list, non-positive month lengths, an empty week, non-positive
// cycle constants, or an era list that leaves some year unmatched. These
// checks make the cyclic month walk and era lookup infallible afterwards.
func New(months []Month, weekDays []WeekDay, day Day, eras []Era) (*Calendar, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("calendar must have at least one month")
	}
	var daysInYear int64
	for _, m := range months {
		if m.Days <= 0 {
			return nil, fmt.Errorf("month %q must have a positive number of days", m.Name)
		}
		daysInYear += int64(m.Days)
	}
	if len(weekDays) == 0 {
		return nil, fmt.Errorf("calendar must have at least one week day")
	}
	if day.SecondsPerMinute <= 0 || day.MinutesPerHour <= 0 || day.HoursPerDay <= 0 {
		return nil, fmt.Errorf("day cycle lengths must be positive")
	}
	if err := validateEraCoverage(eras); err != nil {
		return nil, err
	}

	return &Calendar{
		months:     months,
		weekDays:   weekDays,
		day:        day,
		eras:       eras,
		daysInYear: daysInYear,
	}, nil
}

// Default returns a calendar that roughly matches Earth (but with
// exactly 365 days and no leap years).
func Default() *Calendar {
	cal, err := New(
		[]Month{
			{Name: "January", Days: 31},
			{Name: "February", Days: 28},
			{Name: "March", Days: 31},
			{Name: "April", Days: 30},
			{Name: "May", Days: 31},
			{Name: "June", Days: 30},
			{Name: "July", Days: 31},
			{Name: "August", Days: 31},
			{Name: "September", Days: 30},
			{Name: "October", Days: 31},
			{Name: "November", Days: 30},
			{Name: "December", Days: 31},
		},
		[]WeekDay{
			{Name: "Monday"},
			{Name: "Tuesday"},
			{Name: "Wednesday"},
			{Name: "Thursday"},
			{Name: "Friday"},
			{Name: "Saturday"},
			{Name: "Sunday"},
		},
		DefaultDay(),
		[]Era{
			{Name: "Before Common Era", EndYear: int64Ptr(0)},
			{Name: "Common Era", StartYear: int64Ptr(1)},
		},
	)
	if err != nil {
		panic(fmt.Sprintf("default calendar is invalid: %v", err))
	}
	return cal
}

// Months returns the ordered list of months. The slice must not be modified.
func (c *Calendar) Months() []Month { return c.months }

// WeekDays returns the ordered list of week days. The slice must not be modified.
func (c *Calendar) WeekDays() []WeekDay { return c.weekDays }

// Eras returns the ordered list of eras. The slice must not be modified.
func (c *Calendar) Eras() []Era { return c.eras }

// SecondsInMinute returns the number of seconds in a minute.
func (c *Calendar) SecondsInMinute() int { return c.day.SecondsPerMinute }

// MinutesInHour returns the number of minutes in an hour.
func (c *Calendar) MinutesInHour() int { return c.day.MinutesPerHour }

// HoursInDay returns the number of hours in a day.
func (c *Calendar) HoursInDay() int { return c.day.HoursPerDay }

// SecondsInHour returns the number of seconds in an hour.
func (c *Calendar) SecondsInHour() int { return c.day.SecondsPerMinute * c.day.MinutesPerHour }

// SecondsInDay returns the number of seconds in a day.
func (c *Calendar) SecondsInDay() int { return c.SecondsInHour() * c.day.HoursPerDay }

// MinutesInDay returns the number of minutes in a day.
func (c *Calendar) MinutesInDay() int { return c.day.MinutesPerHour * c.day.HoursPerDay }

// DaysInYear returns the number of days in a year.
func (c *Calendar) DaysInYear() int64 { return c.daysInYear }

// MonthsInYear returns the number of months in a year.
func (c *Calendar) MonthsInYear() int { return len(c.months) }

// DaysInWeek returns the number of days in a week.
func (c *Calendar) DaysInWeek() int { return len(c.weekDays) }

// DaysToSeconds converts a number of days into seconds.
func (c *Calendar) DaysToSeconds(days int64) int64 { return days * int64(c.SecondsInDay()) }

// HoursToSeconds converts a number of hours into seconds.
func (c *Calendar) HoursToSeconds(hours int64) int64 { return hours * int64(c.SecondsInHour()) }

// MinutesToSeconds converts a number of minutes into seconds.
func (c *Calendar) MinutesToSeconds(minutes int64) int64 {
	return minutes * int64(c.day.SecondsPerMinute)
}

// WeeksToSeconds converts a number of weeks into seconds.
func (c *Calendar) WeeksToSeconds(weeks int64) int64 {
	return c.DaysToSeconds(weeks * int64(c.DaysInWeek()))
}

// YearsToSeconds converts a number of years into seconds.
func (c *Calendar) YearsToSeconds(years int64) int64 {
	return c.DaysToSeconds(years * c.daysInYear)
}

// MonthsToSeconds calculates the seconds that pass between the beginning
// of a year and the end of the n-th month. Months are irregular, so this
// is always relative to the start of a year. Values of n beyond the number
// of months in the year wrap cyclically into following years.
//
// Example: MonthsToSeconds(3) = January + February + March.
func (c *Calendar) MonthsToSeconds(n int) int64 {
	years := n / len(c.months)
	rem := n % len(c.months)
	days := int64(years) * c.daysInYear
	for _, m := range c.months[:rem] {
		days += int64(m.Days)
	}
	return c.DaysToSeconds(days)
}

// DaysToMonths consumes a number of days by walking the month list
// cyclically, wrapping past the end of the year, and returns the month
// the final day lands in along with the remainder of days into that
// month. Both values are 0-indexed.
func (c *Calendar) DaysToMonths(days int64) (month int, day int) {
	rem := days
	for i := 0; ; i = (i + 1) % len(c.months) {
		monthDays := int64(c.months[i].Days)
		if rem < monthDays {
			return i, int(rem)
		}
		rem -= monthDays
	}
}

// ValidateDate checks a date's components against this calendar.
func (c *Calendar) ValidateDate(d RawDate) error {
	if d.Month < 1 || d.Month > len(c.months) {
		return &InvalidDateError{Component: "month", Value: d.Month}
	}
	if d.Day < 1 || d.Day > c.months[d.Month-1].Days {
		return &InvalidDateError{Component: "day", Value: d.Day}
	}
	return nil
}

// ValidateTime checks a time's components against this calendar.
func (c *Calendar) ValidateTime(t RawTime) error {
	if t.Hour < 0 || t.Hour >= c.day.HoursPerDay {
		return &InvalidTimeError{Component: "hour", Value: t.Hour}
	}
	if t.Minute < 0 || t.Minute >= c.day.MinutesPerHour {
		return &InvalidTimeError{Component: "minute", Value: t.Minute}
	}
	if t.Second < 0 || t.Second >= c.day.SecondsPerMinute {
		return &InvalidTimeError{Component: "second", Value: t.Second}
	}
	return nil
}

// rawCalendar is the serialized form of a Calendar.
type rawCalendar struct {
	Months           []Month   `yaml:"months"`
	WeekDays         []WeekDay `yaml:"week_days"`
	SecondsPerMinute int       `yaml:"seconds_per_minute"`
	MinutesPerHour   int       `yaml:"minutes_per_hour"`
	HoursPerDay      int       `yaml:"hours_per_day"`
	Eras             []Era     `yaml:"eras,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (c *Calendar) MarshalYAML() (interface{}, error) {
	return rawCalendar{
		Months:           c.months,
		WeekDays:         c.weekDays,
		SecondsPerMinute: c.day.SecondsPerMinute,
		MinutesPerHour:   c.day.MinutesPerHour,
		HoursPerDay:      c.day.HoursPerDay,
		Eras:             c.eras,
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A calendar that fails
// construction-time validation fails to deserialize.
func (c *Calendar) UnmarshalYAML(value *yaml.Node) error {
	var raw rawCalendar
	if err := value.Decode(&raw); err != nil {
		return err
	}
	built, err := New(raw.Months, raw.WeekDays, Day{
		SecondsPerMinute: raw.SecondsPerMinute,
		MinutesPerHour:   raw.MinutesPerHour,
		HoursPerDay:      raw.HoursPerDay,
	}, raw.Eras)
	if err != nil {
		return fmt.Errorf("invalid calendar: %w", err)
	}
	*c = *built
	return nil
}

func int64Ptr(v int64) *int64 { return &v }
