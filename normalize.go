package civiltime

import (
	"time"

	"github.com/gocivil/civiltime/tzservice"
)

// normalize is C3: it cascades i's broken-down fields through any overflow
// (month=13, day=40, second=3600, ...) and then interprets the result
// against i.representation, consulting i.provider for Local. allowGap
// controls what happens when the cascaded civil time falls in a daylight
// saving time gap: strict constructors pass false (Gap is reported as
// ErrInvalidInput), arithmetic operations pass true (the result is shifted
// forward past the gap, per spec.md's derived-wall-time rule).
func (i *Instant) normalize(allowGap bool) error {
	y, mo, d, h, mi, s := normalizeFields(i.year, i.month, i.day, i.hour, i.minute, i.second)

	switch i.representation {
	case UTC:
		i.year, i.month, i.day = y, mo, d
		i.hour, i.minute, i.second = h, mi, s
		i.utcOffsetSeconds = 0
		i.dstFlag = DSTOff
		i.zoneName = "UTC"
		i.absolute = time.Date(y, time.Month(mo), d, h, mi, s, 0, time.UTC)

	default: // Local
		if i.provider == nil {
			i.provider = defaultProvider
		}
		res, err := i.provider.FromCivil(i.zone, y, int(mo), d, h, mi, s, tzservice.DSTFlag(i.dstFlag))
		if err != nil {
			return newError("normalize", InvalidInput, "%v", err)
		}
		if res.Kind == tzservice.Gap && !allowGap {
			return newError("normalize", InvalidInput,
				"%04d-%02d-%02d %02d:%02d:%02d falls in a daylight saving time gap", y, mo, d, h, mi, s)
		}
		cy, cmo, cd, ch, cmi, cs := civilFieldsFromAbsolute(res.Absolute, res.Offset)
		i.year, i.month, i.day = cy, Month(cmo), cd
		i.hour, i.minute, i.second = ch, cmi, cs
		i.utcOffsetSeconds = res.Offset
		i.zoneName = res.Abbrev
		if res.IsDST {
			i.dstFlag = DSTOn
		} else {
			i.dstFlag = DSTOff
		}
		i.absolute = res.Absolute
	}

	i.dayOfWeek = DayOfWeek(i.year, i.month, i.day)
	i.dayOfYear = DayOfYear(i.year, i.month, i.day)
	return nil
}

// setFromAbsolute is the dual of normalize: given an absolute instant, it
// fills i's broken-down fields by projecting that instant into i's zone
// (Local) or into plain UTC fields (UTC), without consulting or cascading
// any pre-existing broken-down fields.
func (i *Instant) setFromAbsolute(absolute time.Time) error {
	switch i.representation {
	case UTC:
		y, mo, d, h, mi, s := civilFieldsFromAbsolute(absolute, 0)
		i.year, i.month, i.day = y, Month(mo), d
		i.hour, i.minute, i.second = h, mi, s
		i.utcOffsetSeconds = 0
		i.dstFlag = DSTOff
		i.zoneName = "UTC"
		i.absolute = absolute.UTC()

	default: // Local
		if i.provider == nil {
			i.provider = defaultProvider
		}
		res, err := i.provider.FromAbsolute(i.zone, absolute)
		if err != nil {
			return newError("setFromAbsolute", InvalidInput, "%v", err)
		}
		y, mo, d, h, mi, s := civilFieldsFromAbsolute(res.Absolute, res.Offset)
		i.year, i.month, i.day = y, Month(mo), d
		i.hour, i.minute, i.second = h, mi, s
		i.utcOffsetSeconds = res.Offset
		i.zoneName = res.Abbrev
		if res.IsDST {
			i.dstFlag = DSTOn
		} else {
			i.dstFlag = DSTOff
		}
		i.absolute = res.Absolute
	}

	i.dayOfWeek = DayOfWeek(i.year, i.month, i.day)
	i.dayOfYear = DayOfYear(i.year, i.month, i.day)
	return nil
}

// normalizeFields performs the calendar-only overflow cascade described in
// spec.md §4.3, before any zone interpretation: seconds/minutes/hours fold
// into day carries, then month folds into year carries, then the
// (possibly out-of-range) day folds through the Rata Die representation.
func normalizeFields(year int, month Month, day, hour, minute, second int) (y int, mo Month, d, h, mi, s int) {
	totalSeconds := hour*3600 + minute*60 + second
	dayCarry := floorDiv(totalSeconds, 86400)
	secondsOfDay := totalSeconds - dayCarry*86400
	h = secondsOfDay / 3600
	mi = (secondsOfDay % 3600) / 60
	s = secondsOfDay % 60

	day += dayCarry

	cascadedYear, cascadedMonth := cascadeMonthOnly(year, month)
	y, mo, d = cascadeCalendar(cascadedYear, cascadedMonth, day)
	return
}

// cascadeMonthOnly folds an out-of-range month (month=13, month=0, ...)
// into a year carry, without touching day.
func cascadeMonthOnly(year int, month Month) (int, Month) {
	idx := int(month) - 1
	yearCarry := floorDiv(idx, 12)
	return year + yearCarry, Month(idx - yearCarry*12 + 1)
}

// cascadeCalendar folds an out-of-range day (day=40, day=0, day<0, ...)
// against a valid (year, month) by walking the Rata Die representation.
func cascadeCalendar(year int, month Month, day int) (int, Month, int) {
	rd := rataDie(year, month, 1) + int64(day-1)
	return fromRataDie(rd)
}

// civilFieldsFromAbsolute derives broken-down date/time fields from an
// absolute instant and a UTC offset in seconds - the inverse of combining
// civil fields with a zone's offset into an absolute instant.
func civilFieldsFromAbsolute(absolute time.Time, offsetSeconds int) (year, month, day, hour, minute, second int) {
	shifted := absolute.UTC().Add(time.Duration(offsetSeconds) * time.Second)
	y, m, d := shifted.Date()
	h, mi, s := shifted.Clock()
	return y, int(m), d, h, mi, s
}
