package civiltime_test

import (
	"fmt"
	"testing"

	"github.com/gocivil/civiltime"
)

func TestDateFields(t *testing.T) {
	for _, tt := range []struct {
		year       int
		month      civiltime.Month
		day        int
		weekday    civiltime.Weekday
		isLeapYear bool
		yearDay    int
		isoYear    int
		isoWeek    int
	}{
		{1968, civiltime.May, 24, civiltime.Friday, true, 145, 1968, 21},
		{1950, civiltime.January, 1, civiltime.Sunday, false, 1, 1949, 52},
		{1958, civiltime.January, 1, civiltime.Wednesday, false, 1, 1958, 1},
		{1970, civiltime.January, 1, civiltime.Thursday, false, 1, 1970, 1},
		{200, civiltime.March, 1, civiltime.Saturday, false, 60, 200, 9},
		{2020, civiltime.December, 31, civiltime.Thursday, true, 366, 2020, 53},
		{2021, civiltime.January, 1, civiltime.Friday, false, 1, 2020, 53},
		{2000, civiltime.February, 29, civiltime.Tuesday, true, 60, 2000, 9},
		{2000, civiltime.March, 1, civiltime.Wednesday, true, 61, 2000, 9},
		{2003, civiltime.December, 29, civiltime.Monday, false, 363, 2004, 1},
		{2005, civiltime.January, 2, civiltime.Sunday, false, 2, 2004, 53},
	} {
		t.Run(fmt.Sprintf("%04d-%02d-%02d", tt.year, tt.month, tt.day), func(t *testing.T) {
			if got := civiltime.DayOfWeek(tt.year, tt.month, tt.day); got != tt.weekday {
				t.Errorf("DayOfWeek() = %s, want %s", got, tt.weekday)
			}
			if got := civiltime.IsLeapYear(tt.year); got != tt.isLeapYear {
				t.Errorf("IsLeapYear() = %v, want %v", got, tt.isLeapYear)
			}
			if got := civiltime.DayOfYear(tt.year, tt.month, tt.day); got != tt.yearDay {
				t.Errorf("DayOfYear() = %d, want %d", got, tt.yearDay)
			}
			gotYear, gotWeek := civiltime.ISOWeek(tt.year, tt.month, tt.day)
			if gotYear != tt.isoYear || gotWeek != tt.isoWeek {
				t.Errorf("ISOWeek() = (%d, %d), want (%d, %d)", gotYear, gotWeek, tt.isoYear, tt.isoWeek)
			}
		})
	}
}

func TestWeeksInISOYear(t *testing.T) {
	for _, tt := range []struct {
		isoYear int
		weeks   int
	}{
		{2004, 53},
		{2005, 52},
		{2020, 53},
		{2021, 52},
	} {
		t.Run(fmt.Sprintf("%d", tt.isoYear), func(t *testing.T) {
			if got := civiltime.WeeksInISOYear(tt.isoYear); got != tt.weeks {
				t.Errorf("WeeksInISOYear(%d) = %d, want %d", tt.isoYear, got, tt.weeks)
			}
		})
	}
}

func TestGetSecondsInLocalDay(t *testing.T) {
	for _, tt := range []struct {
		name        string
		year        int
		month       civiltime.Month
		day         int
		wantSeconds int
	}{
		{"ordinary day", 2024, civiltime.June, 15, 86400},
		{"spring-forward, Europe/Paris loses an hour", 2016, civiltime.March, 27, 82800},
		{"fall-back, Europe/Paris gains an hour", 2016, civiltime.October, 30, 90000},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := civiltime.GetSecondsInLocalDay("Europe/Paris", tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("GetSecondsInLocalDay: %v", err)
			}
			if got != tt.wantSeconds {
				t.Errorf("GetSecondsInLocalDay(%04d-%02d-%02d) = %d, want %d",
					tt.year, tt.month, tt.day, got, tt.wantSeconds)
			}
		})
	}
}

func TestDaysInMonthLeapYear(t *testing.T) {
	if got := civiltime.DaysInMonth(2000, civiltime.February); got != 29 {
		t.Errorf("DaysInMonth(2000, February) = %d, want 29", got)
	}
	if got := civiltime.DaysInMonth(1900, civiltime.February); got != 28 {
		t.Errorf("DaysInMonth(1900, February) = %d, want 28 (century non-leap)", got)
	}
	if got := civiltime.DaysInMonth(2001, civiltime.February); got != 28 {
		t.Errorf("DaysInMonth(2001, February) = %d, want 28", got)
	}
}
