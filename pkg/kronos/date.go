package kronos

import "fmt"

// RawDate is the date component of an instant, detached from any calendar.
// It is useful for serialization and display. Month and Day follow the
// convention that the first month of the year is month 1 and the first
// day of a month is day 1.
type RawDate struct {
	Year  int64 `yaml:"year"`
	Month int   `yaml:"month"`
	Day   int   `yaml:"day"`
}

// NewRawDate builds a RawDate from 1-indexed components. Zero (or negative)
// month or day values are rejected; bounds against a specific calendar are
// checked by Calendar.ValidateDate.
func NewRawDate(year int64, month, day int) (RawDate, error) {
	if month < 1 {
		return RawDate{}, &InvalidDateError{Component: "month", Value: month}
	}
	if day < 1 {
		return RawDate{}, &InvalidDateError{Component: "day", Value: day}
	}
	return RawDate{Year: year, Month: month, Day: day}, nil
}

// String formats the date as YYYY-MM-DD, zero padded.
func (d RawDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// RawTime is the time-of-day component of an instant, detached from any
// calendar. It is useful for serialization and display.
type RawTime struct {
	Hour   int `yaml:"hour"`
	Minute int `yaml:"minute"`
	Second int `yaml:"second"`
}

// String formats the time as HH:MM:SS, zero padded.
func (t RawTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// TimeFormat specifies how the hour component of a time is interpreted.
type TimeFormat int

const (
	// Exact leaves the hour untouched.
	Exact TimeFormat = iota
	// AM leaves the hour untouched.
	AM
	// PM shifts the hour forward by half a day.
	PM
)

// TimeFromHMS builds a RawTime, applying the format's hour offset and
// validating the result against the calendar's cycle lengths.
func (c *Calendar) TimeFromHMS(hour, minute, second int, format TimeFormat) (RawTime, error) {
	if format == PM {
		hour += c.day.HoursPerDay / 2
	}
	t := RawTime{Hour: hour, Minute: minute, Second: second}
	if err := c.ValidateTime(t); err != nil {
		return RawTime{}, err
	}
	return t, nil
}

// secondsOfDay converts the time into seconds since midnight.
func (t RawTime) secondsOfDay(c *Calendar) int64 {
	return c.HoursToSeconds(int64(t.Hour)) +
		c.MinutesToSeconds(int64(t.Minute)) +
		int64(t.Second)
}
