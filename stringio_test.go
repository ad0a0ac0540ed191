package civiltime_test

import (
	"errors"
	"testing"

	"github.com/gocivil/civiltime"
)

func TestSetDateFromStringFrFRPrimaryForm(t *testing.T) {
	i, err := civiltime.MakeUTC(2024, civiltime.January, 1, 10, 0, 0)
	if err != nil {
		t.Fatalf("MakeUTC: %v", err)
	}
	if err := i.SetDateFromString("fr_FR", "14/07/1989"); err != nil {
		t.Fatalf("SetDateFromString: %v", err)
	}
	if i.GetYear() != 1989 || i.GetMonth() != civiltime.July || i.GetDay() != 14 {
		t.Fatalf("after SetDateFromString = %s, want 1989-07-14", i)
	}
	// A date-only update leaves the time of day untouched.
	if i.GetHour() != 10 {
		t.Fatalf("SetDateFromString changed the time of day: got hour %d, want 10", i.GetHour())
	}
}

func TestSetDateFromStringISOFallback(t *testing.T) {
	i, err := civiltime.MakeUTC(2024, civiltime.January, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("MakeUTC: %v", err)
	}
	if err := i.SetDateFromString("fr_FR", "2001-02-03"); err != nil {
		t.Fatalf("SetDateFromString ISO fallback: %v", err)
	}
	if i.GetYear() != 2001 || i.GetMonth() != civiltime.February || i.GetDay() != 3 {
		t.Fatalf("after SetDateFromString = %s, want 2001-02-03", i)
	}
}

func TestSetTimeFromStringISORoundTrip(t *testing.T) {
	i, err := civiltime.MakeUTC(2024, civiltime.January, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("MakeUTC: %v", err)
	}
	if err := i.SetTimeFromString("fr_FR", "13:45:30"); err != nil {
		t.Fatalf("SetTimeFromString: %v", err)
	}
	if i.GetHour() != 13 || i.GetMinute() != 45 || i.GetSecond() != 30 {
		t.Fatalf("after SetTimeFromString = %s, want 13:45:30", i)
	}
}

func TestSetTimeFromStringRejectsDateShapedInput(t *testing.T) {
	// spec.md's own ambiguity note: a date-shaped string handed to the time
	// setter matches none of the time forms and is rejected outright.
	i, err := civiltime.MakeUTC(2024, civiltime.January, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("MakeUTC: %v", err)
	}
	if err := i.SetTimeFromString("fr_FR", "33/4/1987"); !errors.Is(err, civiltime.ErrInvalidInput) {
		t.Fatalf("SetTimeFromString(33/4/1987): err = %v, want ErrInvalidInput", err)
	}
}

func TestGetDateIntoStringRoundTrip(t *testing.T) {
	i, err := civiltime.MakeUTC(2024, civiltime.July, 4, 0, 0, 0)
	if err != nil {
		t.Fatalf("MakeUTC: %v", err)
	}
	s, err := i.GetDateIntoString("fr_FR", 32)
	if err != nil {
		t.Fatalf("GetDateIntoString: %v", err)
	}
	if err := i.SetDateFromString("fr_FR", s); err != nil {
		t.Fatalf("SetDateFromString(%q): %v", s, err)
	}
	if i.GetYear() != 2024 || i.GetMonth() != civiltime.July || i.GetDay() != 4 {
		t.Fatalf("round trip through GetDateIntoString/SetDateFromString lost the date: got %s", i)
	}
}

func TestGetTimeIntoStringRoundTrip(t *testing.T) {
	i, err := civiltime.MakeUTC(2024, civiltime.July, 4, 13, 45, 0)
	if err != nil {
		t.Fatalf("MakeUTC: %v", err)
	}
	s, err := i.GetTimeIntoString("en_US", 32)
	if err != nil {
		t.Fatalf("GetTimeIntoString: %v", err)
	}
	if err := i.SetTimeFromString("en_US", s); err != nil {
		t.Fatalf("SetTimeFromString(%q): %v", s, err)
	}
	if i.GetHour() != 13 || i.GetMinute() != 45 {
		t.Fatalf("round trip through GetTimeIntoString/SetTimeFromString lost the time: got %s", i)
	}
}

func TestGetDateIntoStringBufferTooSmall(t *testing.T) {
	i, err := civiltime.MakeUTC(2024, civiltime.July, 4, 0, 0, 0)
	if err != nil {
		t.Fatalf("MakeUTC: %v", err)
	}
	if _, err := i.GetDateIntoString("fr_FR", 3); !errors.Is(err, civiltime.ErrBufferTooSmall) {
		t.Fatalf("GetDateIntoString with a too-small buffer: err = %v, want ErrBufferTooSmall", err)
	}
}
