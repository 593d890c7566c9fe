package kronos

type waitKind int

const (
	waitTime waitKind = iota
	waitMidnight
	waitMidday
)

// WaitTarget selects the time of day an instant should advance to.
type WaitTarget struct {
	kind waitKind
	time RawTime
}

// WaitTime targets the next occurrence of an exact time of day.
func WaitTime(t RawTime) WaitTarget {
	return WaitTarget{kind: waitTime, time: t}
}

// Midnight targets the start of the next day regardless of calendar.
var Midnight = WaitTarget{kind: waitMidnight}

// Midday targets the middle of the day regardless of calendar.
var Midday = WaitTarget{kind: waitMidday}

// resolve turns the target into a concrete RawTime under a calendar.
func (w WaitTarget) resolve(c *Calendar) (RawTime, error) {
	switch w.kind {
	case waitMidnight:
		return c.TimeFromHMS(0, 0, 0, Exact)
	case waitMidday:
		return c.TimeFromHMS(0, 0, 0, PM)
	default:
		if err := c.ValidateTime(w.time); err != nil {
			return RawTime{}, err
		}
		return w.time, nil
	}
}

// WaitUntil progresses time forward to the next occurrence of the target.
// If the target time of day has already passed, it wraps into the next
// day, so the result is always strictly after the receiver when the
// target equals the current time and never before it otherwise.
func (dt DateTime) WaitUntil(target WaitTarget) (DateTime, error) {
	t, err := target.resolve(dt.cal)
	if err != nil {
		return DateTime{}, err
	}
	current := dt.secondsOfDay()
	targetSeconds := t.secondsOfDay(dt.cal)
	delta := targetSeconds - current
	if delta <= 0 {
		delta += int64(dt.cal.SecondsInDay())
	}
	return dt.AddSeconds(delta), nil
}

// WaitUntilSameDay progresses time forward to the target without crossing
// a day boundary. It fails with a BackwardsWaitError when the target has
// already passed.
func (dt DateTime) WaitUntilSameDay(target WaitTarget) (DateTime, error) {
	t, err := target.resolve(dt.cal)
	if err != nil {
		return DateTime{}, err
	}
	current := dt.secondsOfDay()
	targetSeconds := t.secondsOfDay(dt.cal)
	if targetSeconds <= current {
		return DateTime{}, &BackwardsWaitError{Target: t, Current: dt.Time()}
	}
	return dt.AddSeconds(targetSeconds - current), nil
}
