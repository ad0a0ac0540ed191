package civiltime

import "github.com/gocivil/civiltime/tzservice"

// This file implements C5, the calendar engine: mostly stateless pure
// functions over (year, month, day, weekday) that never consult a zone
// provider. The leap year rule, ordinal-date accumulation, and ISO week/year
// formulas are grounded on the teacher's date.go (isLeapYear, getOrdinalDate,
// getISOWeek), adapted from its Julian-Day-Number-keyed internals to operate
// directly on Gregorian (year, month, day) triples, which is all
// civiltime.Instant stores. GetSecondsInLocalDay is the one exception: a
// civil day's length is a property of the zone, not the calendar alone.

// IsLeapYear reports whether year is a leap year in the proleptic Gregorian
// calendar: divisible by 4, except centuries, unless also divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year int, month Month) int {
	if month == February && IsLeapYear(year) {
		return 29
	}
	return daysInMonths[month-1]
}

// isValidDate reports whether (year, month, day) is a real Gregorian date.
func isValidDate(year int, month Month, day int) bool {
	if month < January || month > December {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// ordinalDate returns the 1-based day-of-year for (year, month, day), without
// validating that day is in range for month (callers that need validation
// should call isValidDate first).
func ordinalDate(year int, month Month, day int) int {
	total := day
	for m := January; m < month; m++ {
		total += daysInMonths[m-1]
	}
	if IsLeapYear(year) && month > February {
		total++
	}
	return total
}

// DayOfYear returns the 1-based day of the year for (year, month, day).
func DayOfYear(year int, month Month, day int) int {
	return ordinalDate(year, month, day)
}

// dayOfWeekFromRataDie converts a Rata Die day number (day 1 = 0001-01-01,
// proleptic Gregorian) into an ISO weekday (Monday = 1).
func dayOfWeekFromRataDie(rd int64) Weekday {
	// 0001-01-01 was a Monday; Rata Die day 1 therefore maps to Monday.
	m := ((rd-1)%7 + 7) % 7
	return Weekday(m + 1)
}

// rataDie converts (year, month, day) to its Rata Die day number: the count
// of days since 0000-12-31 in the proleptic Gregorian calendar.
func rataDie(year int, month Month, day int) int64 {
	y := int64(year)
	if month <= February {
		y--
	}
	m := int64(month)
	era := y
	if era < 0 {
		era -= 399
	}
	era /= 400
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468 + 719163
}

// DayOfWeek returns the ISO 8601 weekday (Monday = 1) for (year, month, day).
func DayOfWeek(year int, month Month, day int) Weekday {
	return dayOfWeekFromRataDie(rataDie(year, month, day))
}

// ISOWeek returns the ISO 8601 week-based year and week number for
// (year, month, day). Following the derivation in original_source/dates.h's
// ISO-week comments: with wd the ISO weekday (Monday=1..Sunday=7) and yday
// the 1-based day of year, raw = (yday - wd + 10) / 7 lands in [0, 53]; 0
// means the date belongs to the last week of the previous ISO year, and 53
// means it belongs to week 1 of the next ISO year unless the current year
// itself runs to a 53rd week.
func ISOWeek(year int, month Month, day int) (isoYear, isoWeek int) {
	wd := int(DayOfWeek(year, month, day))
	yday := ordinalDate(year, month, day)

	raw := isoWeekRaw(yday, wd)
	switch {
	case raw < 1:
		return year - 1, isoWeekRaw(yday+daysInYear(year-1), wd)
	case raw > 52:
		if next := isoWeekRaw(yday-daysInYear(year), wd); next >= 1 {
			return year + 1, next
		}
		return year, raw
	default:
		return year, raw
	}
}

// isoWeekRaw computes (yday - wd + 10) / 7, using floor division so that a
// synthetic negative yday (used to probe the previous or next ISO year)
// still resolves correctly.
func isoWeekRaw(yday, wd int) int {
	return floorDiv(yday-wd+10, 7)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func daysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// WeeksInISOYear returns the number of ISO 8601 weeks (52 or 53) in isoYear,
// using the fact that 28 December always falls in the last ISO week of its
// own ISO year.
func WeeksInISOYear(isoYear int) int {
	_, week := ISOWeek(isoYear, December, 28)
	return week
}

// GetSecondsInLocalDay returns the number of seconds between local midnight
// at the start of (year, month, day) and local midnight at the start of the
// following day, in zone ("" selects the default zone). This is ordinarily
// 86400, but 82800 (23h) on a day containing a spring-forward transition or
// 90000 (25h) on a day containing a fall-back transition.
func GetSecondsInLocalDay(zone string, year int, month Month, day int) (int, error) {
	ny, nm, nd := addDaysToDate(year, month, day, 1)
	start, err := defaultProvider.FromCivil(zone, year, int(month), day, 0, 0, 0, tzservice.DSTUnknown)
	if err != nil {
		return 0, newError("GetSecondsInLocalDay", InvalidInput, "%v", err)
	}
	end, err := defaultProvider.FromCivil(zone, ny, int(nm), nd, 0, 0, 0, tzservice.DSTUnknown)
	if err != nil {
		return 0, newError("GetSecondsInLocalDay", InvalidInput, "%v", err)
	}
	return int(end.Absolute.Sub(start.Absolute).Seconds()), nil
}

// FirstWeekdayInMonth returns the day-of-month of the first occurrence of dow
// in the given month and year.
func FirstWeekdayInMonth(year int, month Month, dow Weekday) int {
	first := DayOfWeek(year, month, 1)
	delta := (int(dow) - int(first) + 7) % 7
	return 1 + delta
}

// LastWeekdayInMonth returns the day-of-month of the last occurrence of dow
// in the given month and year.
func LastWeekdayInMonth(year int, month Month, dow Weekday) int {
	last := DaysInMonth(year, month)
	lastDow := DayOfWeek(year, month, last)
	delta := (int(lastDow) - int(dow) + 7) % 7
	return last - delta
}

// FirstWeekdayInISOYear returns the Gregorian (year, month, day) of the first
// occurrence of dow on or after the Monday that begins ISO week 1 of isoYear.
func FirstWeekdayInISOYear(isoYear int, dow Weekday) (year int, month Month, day int) {
	// ISO week 1 always contains 4 January; its Monday is the ISO year's start.
	jan4Dow := DayOfWeek(isoYear, January, 4)
	mondayOffset := -(int(jan4Dow) - int(Monday))
	y, m, d := addDaysToDate(isoYear, January, 4, mondayOffset)
	delta := (int(dow) - int(Monday) + 7) % 7
	return addDaysToDate(y, m, d, delta)
}

// addDaysToDate adds n days to (year, month, day) using the Rata Die
// representation, without any zone or time-of-day involvement - this is pure
// Gregorian calendar arithmetic used internally by the calendar engine.
func addDaysToDate(year int, month Month, day, n int) (int, Month, int) {
	rd := rataDie(year, month, day) + int64(n)
	return fromRataDie(rd)
}

// fromRataDie is the inverse of rataDie.
func fromRataDie(rd int64) (int, Month, int) {
	z := rd + 719468 - 719163
	era := z
	if z < 0 {
		era -= 146096
	}
	era /= 146097
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), Month(m), int(d)
}
