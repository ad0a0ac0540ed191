package civiltime

import "time"

// This file implements C6, the difference engine, grounded on
// original_source/dates.h's tm_diffseconds/tm_diffdays/tm_diffmonths/
// tm_diffyears family. Every operation requires both operands to share a
// representation tag; spec.md §4.6 treats a mismatch as invalid input
// rather than silently picking one side.

func requireSameRepresentation(op string, a, b Instant) error {
	if a.representation != b.representation {
		return newError(op, RepresentationMismatch,
			"operands have representations %s and %s", a.representation, b.representation)
	}
	return nil
}

// DiffSeconds returns the signed number of seconds from a to b on the
// absolute timeline: positive when b is later than a.
func DiffSeconds(a, b Instant) (int64, error) {
	if err := requireSameRepresentation("DiffSeconds", a, b); err != nil {
		return 0, err
	}
	return int64(b.absolute.Sub(a.absolute) / time.Second), nil
}

// Compare returns -1, 0, or +1 as a is before, equal to, or after b on the
// absolute timeline.
func Compare(a, b Instant) (int, error) {
	if err := requireSameRepresentation("Compare", a, b); err != nil {
		return 0, err
	}
	switch {
	case a.absolute.Before(b.absolute):
		return -1, nil
	case a.absolute.After(b.absolute):
		return 1, nil
	default:
		return 0, nil
	}
}

// Equals reports whether a and b agree on every visible field, their
// representation, their UTC offset, and their zone abbreviation.
func Equals(a, b Instant) bool {
	return a.year == b.year && a.month == b.month && a.day == b.day &&
		a.hour == b.hour && a.minute == b.minute && a.second == b.second &&
		a.representation == b.representation &&
		a.utcOffsetSeconds == b.utcOffsetSeconds &&
		a.zoneName == b.zoneName
}

// DiffCalendarDays returns the signed number of date changes from a to b,
// independent of wall-clock: a day containing a DST transition still
// counts as exactly one day.
func DiffCalendarDays(a, b Instant) (int64, error) {
	if err := requireSameRepresentation("DiffCalendarDays", a, b); err != nil {
		return 0, err
	}
	return rataDie(b.year, b.month, b.day) - rataDie(a.year, a.month, a.day), nil
}

// DiffDays returns the number of complete 24-hour (86400-second) periods
// between a and b on the absolute timeline, and the unsigned seconds
// remainder after the earlier operand has had that many days added to it.
// If a > b, both values are negated.
func DiffDays(a, b Instant) (days int64, seconds int64, err error) {
	if err = requireSameRepresentation("DiffDays", a, b); err != nil {
		return
	}
	lo, hi := a, b
	negate := false
	cmp, _ := Compare(a, b)
	if cmp > 0 {
		lo, hi = b, a
		negate = true
	}
	total := int64(hi.absolute.Sub(lo.absolute) / time.Second)
	days = total / 86400
	seconds = total % 86400
	if negate {
		days, seconds = -days, -seconds
	}
	return
}

// DiffWeeks decomposes DiffDays' day count into whole weeks and a
// remainder of days, carrying the seconds remainder through unchanged.
func DiffWeeks(a, b Instant) (weeks int64, days int64, seconds int64, err error) {
	d, s, derr := DiffDays(a, b)
	if derr != nil {
		err = derr
		return
	}
	weeks = d / 7
	days = d % 7
	seconds = s
	return
}

// DiffCalendarMonths returns 12*(b.year-a.year) + (b.month-a.month),
// ignoring day/time-of-day entirely.
func DiffCalendarMonths(a, b Instant) (int, error) {
	if err := requireSameRepresentation("DiffCalendarMonths", a, b); err != nil {
		return 0, err
	}
	return 12*(b.year-a.year) + (int(b.month) - int(a.month)), nil
}

// DiffMonths returns the number of full months from a to b: the calendar
// month difference, decremented by one if b's day/hour/minute/second is
// strictly earlier in its month than a's, plus the DiffDays remainder
// between a shifted forward by that many months and b.
func DiffMonths(a, b Instant) (months int64, days int64, seconds int64, err error) {
	if err = requireSameRepresentation("DiffMonths", a, b); err != nil {
		return
	}
	calendarMonths, _ := DiffCalendarMonths(a, b)
	months = int64(calendarMonths)
	if monthInternalOffsetBefore(b, a) {
		months--
	}
	shifted := a
	if aerr := shifted.AddMonths(int(months)); aerr != nil {
		err = aerr
		return
	}
	days, seconds, err = DiffDays(shifted, b)
	return
}

func monthInternalOffsetBefore(x, y Instant) bool {
	if x.day != y.day {
		return x.day < y.day
	}
	if x.hour != y.hour {
		return x.hour < y.hour
	}
	if x.minute != y.minute {
		return x.minute < y.minute
	}
	return x.second < y.second
}

// DiffCalendarYears returns b.year - a.year.
func DiffCalendarYears(a, b Instant) (int, error) {
	if err := requireSameRepresentation("DiffCalendarYears", a, b); err != nil {
		return 0, err
	}
	return b.year - a.year, nil
}

// DiffYears returns the number of full years and months from a to b (via
// DiffMonths divided by 12, with remainder), plus the trailing days and
// seconds remainder.
func DiffYears(a, b Instant) (years int64, months int64, days int64, seconds int64, err error) {
	totalMonths, d, s, derr := DiffMonths(a, b)
	if derr != nil {
		err = derr
		return
	}
	years = totalMonths / 12
	months = totalMonths % 12
	days = d
	seconds = s
	return
}

// DiffISOYears returns the difference between b's and a's ISO 8601 week-
// based year.
func DiffISOYears(a, b Instant) (int, error) {
	if err := requireSameRepresentation("DiffISOYears", a, b); err != nil {
		return 0, err
	}
	ay, _ := ISOWeek(a.year, a.month, a.day)
	by, _ := ISOWeek(b.year, b.month, b.day)
	return by - ay, nil
}
