package kronos

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is returned when no expression grammar matches an input.
var ErrInvalidFormat = errors.New("invalid format")

// ErrNoReferencePoint is returned when a relative expression is evaluated
// without a reference point.
var ErrNoReferencePoint = errors.New("relative time given with no reference point")

// InvalidDateError reports a date component outside the bounds of a calendar.
type InvalidDateError struct {
	Component string // "month" or "day"
	Value     int
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("%s %d is out of bounds", e.Component, e.Value)
}

// InvalidTimeError reports a time component outside the bounds of a calendar.
type InvalidTimeError struct {
	Component string // "hour", "minute" or "second"
	Value     int
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("%s %d is out of bounds", e.Component, e.Value)
}

// BackwardsWaitError reports a same-day wait whose target has already passed.
type BackwardsWaitError struct {
	Target  RawTime
	Current RawTime
}

func (e *BackwardsWaitError) Error() string {
	return fmt.Sprintf("the wait target %s is before current %s", e.Target, e.Current)
}
