package kronos

import "fmt"

// Instant is a signed count of seconds since the epoch
// (0001-01-01T00:00:00). It carries no reference to a calendar and is
// the only representation of a point in time that should be persisted.
type Instant int64

// Seconds returns the raw seconds count.
func (i Instant) Seconds() int64 { return int64(i) }

// Modulo returns the instant's seconds modulo a period. The result is
// strictly non-negative, so it is well-defined for instants before the
// epoch. Orbital simulations use this to compute phase.
func (i Instant) Modulo(period int64) int64 {
	return modFloor(int64(i), period)
}

// Before reports whether i is earlier than other.
func (i Instant) Before(other Instant) bool { return i < other }

// After reports whether i is later than other.
func (i Instant) After(other Instant) bool { return i > other }

// DateTime pairs an Instant with a Calendar and allows calendar-aware
// inspection and manipulation of it. It is a value: every arithmetic
// operation returns a new DateTime and leaves the receiver untouched.
type DateTime struct {
	instant Instant
	cal     *Calendar
}

// DateTime attaches this calendar to an instant.
func (c *Calendar) DateTime(i Instant) DateTime {
	return DateTime{instant: i, cal: c}
}

// FromYMD builds a DateTime at midnight on the given 1-indexed date.
// Components outside the calendar's bounds are rejected.
func (c *Calendar) FromYMD(year int64, month, day int) (DateTime, error) {
	d, err := NewRawDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	return c.FromRaw(d, RawTime{})
}

// FromRaw builds a DateTime from date and time components, validating
// both against the calendar.
func (c *Calendar) FromRaw(d RawDate, t RawTime) (DateTime, error) {
	if err := c.ValidateDate(d); err != nil {
		return DateTime{}, err
	}
	if err := c.ValidateTime(t); err != nil {
		return DateTime{}, err
	}
	days := (d.Year-1)*c.daysInYear + c.daysBeforeMonth(d.Month-1) + int64(d.Day-1)
	return c.DateTime(Instant(c.DaysToSeconds(days) + t.secondsOfDay(c))), nil
}

// daysBeforeMonth sums the lengths of the first n months.
func (c *Calendar) daysBeforeMonth(n int) int64 {
	var days int64
	for _, m := range c.months[:n] {
		days += int64(m.Days)
	}
	return days
}

// Instant returns the underlying instant.
func (dt DateTime) Instant() Instant { return dt.instant }

// Calendar returns the calendar this DateTime is relative to.
func (dt DateTime) Calendar() *Calendar { return dt.cal }

// totalDays is the number of whole days since the epoch, floored so that
// instants before the epoch still land on consistent day boundaries.
func (dt DateTime) totalDays() int64 {
	return divFloor(int64(dt.instant), int64(dt.cal.SecondsInDay()))
}

// secondsOfDay is the number of seconds since the most recent midnight.
func (dt DateTime) secondsOfDay() int64 {
	return modFloor(int64(dt.instant), int64(dt.cal.SecondsInDay()))
}

// Year returns the 1-indexed absolute year.
func (dt DateTime) Year() int64 {
	return divFloor(dt.totalDays(), dt.cal.daysInYear) + 1
}

// DayOfYear returns the number of whole days that have passed since the
// start of the year. Example: the 3rd of January is 2.
func (dt DateTime) DayOfYear() int64 {
	return modFloor(dt.totalDays(), dt.cal.daysInYear)
}

// Month returns the 1-indexed month.
func (dt DateTime) Month() int {
	month, _ := dt.cal.DaysToMonths(dt.DayOfYear())
	return month + 1
}

// Day returns the 1-indexed day of the month.
func (dt DateTime) Day() int {
	_, day := dt.cal.DaysToMonths(dt.DayOfYear())
	return day + 1
}

// MonthName returns the name of the month.
func (dt DateTime) MonthName() string {
	return dt.cal.months[dt.Month()-1].Name
}

// Week returns the 1-indexed week of the year.
func (dt DateTime) Week() int {
	return int(dt.DayOfYear()/int64(dt.cal.DaysInWeek())) + 1
}

// WeekDay returns the 1-indexed day of the week. It is computed from the
// absolute day count, so it stays continuous across year and era
// boundaries rather than resetting.
func (dt DateTime) WeekDay() int {
	return int(modFloor(dt.totalDays(), int64(dt.cal.DaysInWeek()))) + 1
}

// WeekDayName returns the name of the week day.
func (dt DateTime) WeekDayName() string {
	return dt.cal.weekDays[dt.WeekDay()-1].Name
}

// Hour returns the hour of the day.
func (dt DateTime) Hour() int {
	return int(dt.secondsOfDay() / int64(dt.cal.SecondsInHour()))
}

// Minute returns the minute of the hour.
func (dt DateTime) Minute() int {
	return int(dt.secondsOfDay()/int64(dt.cal.SecondsInMinute())) % dt.cal.MinutesInHour()
}

// Second returns the second of the minute.
func (dt DateTime) Second() int {
	return int(dt.secondsOfDay() % int64(dt.cal.SecondsInMinute()))
}

// TimeOfDay buckets the current hour into a coarse description of the day.
func (dt DateTime) TimeOfDay() TimeOfDay {
	return timeOfDayFromHour(dt.Hour(), dt.cal.HoursInDay())
}

// Era resolves the era this DateTime's year falls into, along with the
// year re-based to that era. The boolean is false when the calendar has
// no eras configured.
func (dt DateTime) Era() (Era, int64, bool) {
	return dt.cal.EraForYear(dt.Year())
}

// Date returns the date components.
func (dt DateTime) Date() RawDate {
	return RawDate{Year: dt.Year(), Month: dt.Month(), Day: dt.Day()}
}

// Time returns the time-of-day components.
func (dt DateTime) Time() RawTime {
	return RawTime{Hour: dt.Hour(), Minute: dt.Minute(), Second: dt.Second()}
}

// String formats the DateTime as YYYY-MM-DDTHH:MM:SSZ.
func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%sZ", dt.Date(), dt.Time())
}

// AddSeconds returns a new DateTime a number of seconds later. Negative
// values move backwards.
func (dt DateTime) AddSeconds(n int64) DateTime {
	return dt.cal.DateTime(dt.instant + Instant(n))
}

// AddMinutes returns a new DateTime a number of minutes later.
func (dt DateTime) AddMinutes(n int64) DateTime {
	return dt.AddSeconds(dt.cal.MinutesToSeconds(n))
}

// AddHours returns a new DateTime a number of hours later.
func (dt DateTime) AddHours(n int64) DateTime {
	return dt.AddSeconds(dt.cal.HoursToSeconds(n))
}

// AddDays returns a new DateTime a number of days later. The time of day
// is preserved.
func (dt DateTime) AddDays(n int64) DateTime {
	if n == 0 {
		return dt
	}
	return dt.AddSeconds(dt.cal.DaysToSeconds(n))
}

// AddWeeks returns a new DateTime a number of weeks later.
func (dt DateTime) AddWeeks(n int64) DateTime {
	return dt.AddDays(n * int64(dt.cal.DaysInWeek()))
}

// AddMonths returns a new DateTime a number of months later. Months are
// irregular, so the shift is computed by summing the lengths of the
// months being crossed, starting from the current one. The day of the
// month is preserved; a day that does not exist in the destination month
// rolls over into the following one.
func (dt DateTime) AddMonths(n int) DateTime {
	if n == 0 {
		return dt
	}
	months := dt.cal.months
	idx := dt.Month() - 1
	var days int64
	if n > 0 {
		for k := 0; k < n; k++ {
			days += int64(months[(idx+k)%len(months)].Days)
		}
	} else {
		for k := 0; k < -n; k++ {
			prev := int(modFloor(int64(idx-1-k), int64(len(months))))
			days -= int64(months[prev].Days)
		}
	}
	return dt.AddDays(days)
}

// AddYears returns a new DateTime a number of years later. Only the year
// component changes; month, day, and time of day are preserved. This is
// deliberately a field increment rather than a fixed seconds delta, so
// that a year step means the same thing on either side of an era
// boundary.
func (dt DateTime) AddYears(n int64) DateTime {
	days := (dt.Year()+n-1)*dt.cal.daysInYear + dt.DayOfYear()
	return dt.cal.DateTime(Instant(dt.cal.DaysToSeconds(days) + dt.secondsOfDay()))
}

// divFloor divides, rounding toward negative infinity.
func divFloor(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// modFloor returns the remainder of floored division. It is never
// negative for positive y.
func modFloor(x, y int64) int64 {
	return x - divFloor(x, y)*y
}
