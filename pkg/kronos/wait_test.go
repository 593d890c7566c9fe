package kronos

import (
	"errors"
	"testing"
)

func TestWaitUntil(t *testing.T) {
	cal := Default()

	tests := []struct {
		name       string
		startHour  int64
		targetHour int
		wantDays   int64
	}{
		{"forward", 4, 8, 0},
		{"across noon", 1, 14, 0},
		{"across midnight", 13, 2, 1},
		{"same hour wraps a full day", 6, 6, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt := cal.DateTime(0).AddHours(tt.startHour)

			got, err := dt.WaitUntil(WaitTime(RawTime{Hour: tt.targetHour}))
			if err != nil {
				t.Fatalf("WaitUntil() error = %v", err)
			}

			if got.Hour() != tt.targetHour {
				t.Errorf("Hour() = %d, want %d", got.Hour(), tt.targetHour)
			}
			if got.Minute() != 0 || got.Second() != 0 {
				t.Errorf("time = %d:%d:%d, want an exact hour", got.Hour(), got.Minute(), got.Second())
			}
			if got.Instant() <= dt.Instant() {
				t.Errorf("WaitUntil() went backwards: %d <= %d", got.Instant(), dt.Instant())
			}
			if wantDay := 1 + int(tt.wantDays); got.Day() != wantDay {
				t.Errorf("Day() = %d, want %d", got.Day(), wantDay)
			}
		})
	}
}

func TestWaitUntilMidnightAndMidday(t *testing.T) {
	cal := Default()
	dt := cal.DateTime(0).AddHours(3)

	midday, err := dt.WaitUntil(Midday)
	if err != nil {
		t.Fatalf("WaitUntil(Midday) error = %v", err)
	}
	if midday.Hour() != 12 || midday.Day() != 1 {
		t.Errorf("midday = day %d hour %d, want day 1 hour 12", midday.Day(), midday.Hour())
	}

	midnight, err := dt.WaitUntil(Midnight)
	if err != nil {
		t.Fatalf("WaitUntil(Midnight) error = %v", err)
	}
	if midnight.Hour() != 0 || midnight.Day() != 2 {
		t.Errorf("midnight = day %d hour %d, want day 2 hour 0", midnight.Day(), midnight.Hour())
	}
}

func TestWaitUntilRejectsInvalidTime(t *testing.T) {
	cal := Default()

	_, err := cal.DateTime(0).WaitUntil(WaitTime(RawTime{Hour: 99}))
	if err == nil {
		t.Fatalf("WaitUntil() accepted an out of bounds hour")
	}

	var timeErr *InvalidTimeError
	if !errors.As(err, &timeErr) {
		t.Errorf("error = %v, want an InvalidTimeError", err)
	}
}

func TestWaitUntilSameDay(t *testing.T) {
	cal := Default()
	dt := cal.DateTime(0).AddHours(13)

	if _, err := dt.WaitUntilSameDay(WaitTime(RawTime{Hour: 15})); err != nil {
		t.Errorf("WaitUntilSameDay() forward error = %v", err)
	}

	_, err := dt.WaitUntilSameDay(WaitTime(RawTime{Hour: 2}))
	if err == nil {
		t.Fatalf("WaitUntilSameDay() accepted a backwards wait")
	}

	var backwards *BackwardsWaitError
	if !errors.As(err, &backwards) {
		t.Errorf("error = %v, want a BackwardsWaitError", err)
	}
}
