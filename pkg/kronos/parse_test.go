package kronos

import (
	"errors"
	"testing"
)

func reference(t *testing.T, cal *Calendar) *DateTime {
	t.Helper()
	dt := cal.DateTime(0)
	return &dt
}

func TestParseAbsoluteDate(t *testing.T) {
	cal := Default()

	tests := []struct {
		input string
		year  int64
		month int
		day   int
	}{
		{"10-09-12", 10, 9, 12},
		{"1-1-1", 1, 1, 1},
		{"0001-10-12", 1, 10, 12},
		{"2020-01-04", 2020, 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			// Absolute dates need no reference point.
			dt, err := cal.Parse(tt.input, nil)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}

			if dt.Year() != tt.year || dt.Month() != tt.month || dt.Day() != tt.day {
				t.Errorf("Parse(%q) = %d-%d-%d, want %d-%d-%d",
					tt.input, dt.Year(), dt.Month(), dt.Day(), tt.year, tt.month, tt.day)
			}
			if dt.Hour() != 0 {
				t.Errorf("Parse(%q) hour = %d, want 0", tt.input, dt.Hour())
			}
		})
	}
}

func TestParseRelativeDuration(t *testing.T) {
	cal := Default()

	tests := []struct {
		input  string
		year   int64
		month  int
		day    int
		hour   int
		minute int
		second int
	}{
		{"5y", 6, 1, 1, 0, 0, 0},
		{"1mo", 1, 2, 1, 0, 0, 0},
		{"2mo", 1, 3, 1, 0, 0, 0},
		{"6mo", 1, 7, 1, 0, 0, 0},
		{"11mo", 1, 12, 1, 0, 0, 0},
		{"12mo", 2, 1, 1, 0, 0, 0},
		{"14mo", 2, 3, 1, 0, 0, 0},
		{"2w", 1, 1, 15, 0, 0, 0},
		{"8h", 1, 1, 1, 8, 0, 0},
		{"20m", 1, 1, 1, 0, 20, 0},
		{"20s", 1, 1, 1, 0, 0, 20},
		{"5m20s", 1, 1, 1, 0, 5, 20},
		{"1y1mo", 2, 2, 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dt, err := cal.Parse(tt.input, reference(t, cal))
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}

			if dt.Year() != tt.year || dt.Month() != tt.month || dt.Day() != tt.day {
				t.Errorf("Parse(%q) = %d-%d-%d, want %d-%d-%d",
					tt.input, dt.Year(), dt.Month(), dt.Day(), tt.year, tt.month, tt.day)
			}
			if dt.Hour() != tt.hour || dt.Minute() != tt.minute || dt.Second() != tt.second {
				t.Errorf("Parse(%q) = %d:%d:%d, want %d:%d:%d",
					tt.input, dt.Hour(), dt.Minute(), dt.Second(), tt.hour, tt.minute, tt.second)
			}
		})
	}
}

func TestParseKeywords(t *testing.T) {
	cal := Default()

	tests := []struct {
		input    string
		wantHour int
	}{
		{"short rest", 4},
		{"long rest", 8},
		{"midday", 12},
		{"midnight", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dt, err := cal.Parse(tt.input, reference(t, cal))
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}

			if got := dt.Hour(); got != tt.wantHour {
				t.Errorf("Parse(%q) hour = %d, want %d", tt.input, got, tt.wantHour)
			}
		})
	}
}

func TestParseClockTime(t *testing.T) {
	cal := Default()

	tests := []struct {
		input    string
		wantHour int
		wantDay  int
	}{
		{"8am", 8, 1},
		{"2pm", 14, 1},
		// AM applies no offset, so 12am lands on hour 12 of the same day.
		{"12am", 12, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			dt, err := cal.Parse(tt.input, reference(t, cal))
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}

			if dt.Hour() != tt.wantHour {
				t.Errorf("Parse(%q) hour = %d, want %d", tt.input, dt.Hour(), tt.wantHour)
			}
			if dt.Minute() != 0 || dt.Second() != 0 {
				t.Errorf("Parse(%q) = %d:%d:%d, want an exact hour",
					tt.input, dt.Hour(), dt.Minute(), dt.Second())
			}
			if dt.Day() != tt.wantDay {
				t.Errorf("Parse(%q) day = %d, want %d", tt.input, dt.Day(), tt.wantDay)
			}
		})
	}
}

func TestParseGracefulRejection(t *testing.T) {
	cal := Default()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"garbage", "garbage", ErrInvalidFormat},
		{"empty", "", ErrInvalidFormat},
		{"trailing junk", "1y and a bit", ErrInvalidFormat},
		{"invalid day token", "10-09-wrong", ErrInvalidFormat},
		{"invalid month token", "1-ouch-100", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cal.Parse(tt.input, reference(t, cal))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestParseOutOfBoundsDate(t *testing.T) {
	cal := Default()

	tests := []struct {
		name  string
		input string
	}{
		{"month out of bounds", "1-20-01"},
		{"day out of bounds", "1-1-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cal.Parse(tt.input, nil)
			if err == nil {
				t.Fatalf("Parse(%q) accepted an out of bounds date", tt.input)
			}

			var dateErr *InvalidDateError
			if !errors.As(err, &dateErr) {
				t.Errorf("Parse(%q) error = %v, want an InvalidDateError", tt.input, err)
			}
		})
	}
}

func TestParseNeedsReferencePoint(t *testing.T) {
	cal := Default()

	for _, input := range []string{"1y", "long rest", "midnight", "8am"} {
		t.Run(input, func(t *testing.T) {
			_, err := cal.Parse(input, nil)
			if !errors.Is(err, ErrNoReferencePoint) {
				t.Errorf("Parse(%q) error = %v, want ErrNoReferencePoint", input, err)
			}
		})
	}
}

func TestParseClockTimeOutOfBounds(t *testing.T) {
	cal := Default()

	// 13pm would be hour 25 in a 24 hour day.
	_, err := cal.Parse("13pm", reference(t, cal))
	if err == nil {
		t.Fatalf("Parse(\"13pm\") accepted an out of bounds hour")
	}

	var timeErr *InvalidTimeError
	if !errors.As(err, &timeErr) {
		t.Errorf("error = %v, want an InvalidTimeError", err)
	}
}

func TestParseExprForms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Expr
	}{
		{
			"absolute date",
			"10-09-12",
			AbsoluteDate{Year: 10, Month: 9, Day: 12},
		},
		{
			"keyword",
			"long rest",
			KeywordLongRest,
		},
		{
			"duration terms in order",
			"1y2mo3d",
			RelativeDuration{Terms: []DurationTerm{
				{Amount: 1, Unit: UnitYear},
				{Amount: 2, Unit: UnitMonth},
				{Amount: 3, Unit: UnitDay},
			}},
		},
		{
			"minutes not months",
			"20m",
			RelativeDuration{Terms: []DurationTerm{{Amount: 20, Unit: UnitMinute}}},
		},
		{
			"clock time",
			"8pm",
			ClockTime{Hour: 8, Format: PM},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseExpr(tt.input)
			if err != nil {
				t.Fatalf("ParseExpr(%q) error = %v", tt.input, err)
			}

			switch want := tt.want.(type) {
			case RelativeDuration:
				rel, ok := got.(RelativeDuration)
				if !ok {
					t.Fatalf("ParseExpr(%q) = %T, want RelativeDuration", tt.input, got)
				}
				if len(rel.Terms) != len(want.Terms) {
					t.Fatalf("ParseExpr(%q) has %d terms, want %d", tt.input, len(rel.Terms), len(want.Terms))
				}
				for i, term := range rel.Terms {
					if term != want.Terms[i] {
						t.Errorf("term %d = %+v, want %+v", i, term, want.Terms[i])
					}
				}
			default:
				if got != tt.want {
					t.Errorf("ParseExpr(%q) = %+v, want %+v", tt.input, got, tt.want)
				}
			}
		})
	}
}
