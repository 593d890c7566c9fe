package kronos

// TimeOfDay is a coarse description of where in the day an instant falls.
// The day is divided into eight equal buckets regardless of how many hours
// the calendar puts in it.
type TimeOfDay int

const (
	LateNight TimeOfDay = iota
	Dawn
	Sunrise
	Morning
	Afternoon
	Sunset
	Dusk
	Night
)

var timeOfDayNames = [...]string{
	LateNight: "late in the night",
	Dawn:      "at dawn",
	Sunrise:   "just after sunrise",
	Morning:   "in the morning",
	Afternoon: "in the afternoon",
	Sunset:    "just before sunset",
	Dusk:      "in the evening",
	Night:     "at night",
}

// String returns a phrase describing the time of day, suitable for
// embedding in a sentence.
func (t TimeOfDay) String() string {
	if t < LateNight || t > Night {
		return "at an unknowable hour"
	}
	return timeOfDayNames[t]
}

// IsDay reports whether there is daylight during this part of the day.
func (t TimeOfDay) IsDay() bool {
	return t >= Sunrise && t <= Sunset
}

// timeOfDayFromHour maps an hour within [0, hoursInDay) onto a bucket.
func timeOfDayFromHour(hour, hoursInDay int) TimeOfDay {
	return TimeOfDay(hour * 8 / hoursInDay)
}
