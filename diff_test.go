package civiltime_test

import (
	"errors"
	"testing"

	"github.com/gocivil/civiltime"
)

func mustUTC(t *testing.T, y int, mo civiltime.Month, d, h, mi, s int) civiltime.Instant {
	t.Helper()
	i, err := civiltime.MakeUTC(y, mo, d, h, mi, s)
	if err != nil {
		t.Fatalf("MakeUTC(%d-%d-%d %d:%d:%d): %v", y, mo, d, h, mi, s, err)
	}
	return i
}

func TestDiffRequiresSameRepresentation(t *testing.T) {
	utc := mustUTC(t, 2024, civiltime.January, 1, 0, 0, 0)
	local, err := civiltime.MakeLocal("Europe/Paris", 2024, civiltime.January, 1, 0, 0, 0)
	if err != nil {
		t.Fatalf("MakeLocal: %v", err)
	}
	if _, err := civiltime.DiffSeconds(utc, local); !errors.Is(err, civiltime.ErrRepresentationMismatch) {
		t.Fatalf("DiffSeconds across representations: err = %v, want ErrRepresentationMismatch", err)
	}
}

func TestDiffSecondsAndDaysAgree(t *testing.T) {
	a := mustUTC(t, 2024, civiltime.January, 1, 0, 0, 0)
	b := mustUTC(t, 2024, civiltime.January, 3, 12, 30, 0)

	secs, err := civiltime.DiffSeconds(a, b)
	if err != nil {
		t.Fatalf("DiffSeconds: %v", err)
	}
	days, rem, err := civiltime.DiffDays(a, b)
	if err != nil {
		t.Fatalf("DiffDays: %v", err)
	}
	if got, want := days*86400+rem, secs; got != want {
		t.Fatalf("days*86400+rem = %d, DiffSeconds = %d, want equal", got, want)
	}
	if days != 2 || rem != 12*3600+30*60 {
		t.Fatalf("DiffDays = (%d, %d), want (2, %d)", days, rem, 12*3600+30*60)
	}
}

func TestDiffDaysNegatesWhenReversed(t *testing.T) {
	a := mustUTC(t, 2024, civiltime.January, 1, 0, 0, 0)
	b := mustUTC(t, 2024, civiltime.January, 3, 12, 0, 0)

	forwardDays, forwardSecs, err := civiltime.DiffDays(a, b)
	if err != nil {
		t.Fatalf("DiffDays: %v", err)
	}
	backwardDays, backwardSecs, err := civiltime.DiffDays(b, a)
	if err != nil {
		t.Fatalf("DiffDays reversed: %v", err)
	}
	if backwardDays != -forwardDays || backwardSecs != -forwardSecs {
		t.Fatalf("DiffDays(b, a) = (%d, %d), want (%d, %d)",
			backwardDays, backwardSecs, -forwardDays, -forwardSecs)
	}
}

func TestCompareAndEquals(t *testing.T) {
	a := mustUTC(t, 2024, civiltime.January, 1, 0, 0, 0)
	b := mustUTC(t, 2024, civiltime.January, 2, 0, 0, 0)

	if cmp, _ := civiltime.Compare(a, b); cmp != -1 {
		t.Fatalf("Compare(a, b) = %d, want -1", cmp)
	}
	if cmp, _ := civiltime.Compare(b, a); cmp != 1 {
		t.Fatalf("Compare(b, a) = %d, want 1", cmp)
	}
	if cmp, _ := civiltime.Compare(a, a); cmp != 0 {
		t.Fatalf("Compare(a, a) = %d, want 0", cmp)
	}
	if civiltime.Equals(a, b) {
		t.Fatalf("Equals(a, b) = true, want false")
	}
	if !civiltime.Equals(a, a) {
		t.Fatalf("Equals(a, a) = false, want true")
	}
}

func TestDiffMonthsDecrementsOnEarlierDayOfMonth(t *testing.T) {
	// From 31 January to 1 March is one full month and one day, not two
	// full months, because 1 is earlier in its month than 31.
	a := mustUTC(t, 2024, civiltime.January, 31, 0, 0, 0)
	b := mustUTC(t, 2024, civiltime.March, 1, 0, 0, 0)

	months, days, secs, err := civiltime.DiffMonths(a, b)
	if err != nil {
		t.Fatalf("DiffMonths: %v", err)
	}
	if months != 1 || days != 1 || secs != 0 {
		t.Fatalf("DiffMonths(Jan 31, Mar 1) = (%d, %d, %d), want (1, 1, 0)", months, days, secs)
	}
}

func TestDiffCalendarDaysIgnoresTimeOfDay(t *testing.T) {
	a := mustUTC(t, 2024, civiltime.January, 1, 23, 0, 0)
	b := mustUTC(t, 2024, civiltime.January, 2, 1, 0, 0)
	if got, err := civiltime.DiffCalendarDays(a, b); err != nil || got != 1 {
		t.Fatalf("DiffCalendarDays = (%d, %v), want (1, nil)", got, err)
	}
}

func TestDiffISOYears(t *testing.T) {
	// 2003-12-29 is ISO week-year 2004; 2004-01-05 is also ISO week-year
	// 2004, so the ISO-year difference is zero even though the calendar
	// year differs.
	a := mustUTC(t, 2003, civiltime.December, 29, 0, 0, 0)
	b := mustUTC(t, 2004, civiltime.January, 5, 0, 0, 0)
	if got, err := civiltime.DiffISOYears(a, b); err != nil || got != 0 {
		t.Fatalf("DiffISOYears = (%d, %v), want (0, nil)", got, err)
	}
}
