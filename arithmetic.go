package civiltime

import "time"

// This file implements C4, the arithmetic engine: seconds/days/months/years
// addition, time-trim, and daylight-saving-time fold selection, grounded on
// original_source/dates.h's tm_addseconds/tm_adddays/tm_addmonths family and
// adapted to civiltime's Instant rather than the source's JDN+big.Int pair.

// AddSeconds adds the extent n to i on the absolute timeline. The DST flag
// is not reset - the wall clock that results is whatever the zone naturally
// shows at that absolute instant, which already reflects any transition
// crossed along the way (a day containing a spring-forward transition is
// 23 hours long on the wall clock; a fall-back day is 25).
func (i *Instant) AddSeconds(n Extent) error {
	return i.setFromAbsolute(i.absolute.Add(time.Duration(n.Seconds()) * time.Second))
}

// AddDays adds n to the day field, resets dstFlag to Unknown so it is
// re-resolved from the zone, and normalizes. Hour/minute/second are
// preserved across the change of date, except when the resulting wall
// time falls in a spring-forward gap, in which case it is shifted forward
// out of the gap (see normalize's allowGap=true path).
func (i *Instant) AddDays(n int) error {
	next := *i
	next.day += n
	next.dstFlag = DSTUnknown
	if err := next.normalize(true); err != nil {
		return err
	}
	*i = next
	return nil
}

// AddMonths adds n to the month field, resets dstFlag to Unknown, and
// normalizes. If the day-of-month does not exist in the resulting month
// (e.g. 31 January + 1 month), it is re-clamped to the last day of that
// month rather than spilling into the month after.
func (i *Instant) AddMonths(n int) error {
	next := *i
	next.month = next.month + Month(n)
	next.dstFlag = DSTUnknown

	y, mo := cascadeMonthOnly(next.year, next.month)
	if next.day > DaysInMonth(y, mo) {
		// Re-clamp: "day 0 of the month after the intended one" is exactly
		// the last day of the intended month.
		y, mo = cascadeMonthOnly(y, mo+1)
		next.day = 0
	}
	next.year, next.month = y, mo

	if err := next.normalize(true); err != nil {
		return err
	}
	*i = next
	return nil
}

// AddYears adds n years; equivalent to AddMonths(12 * n).
func (i *Instant) AddYears(n int) error {
	return i.AddMonths(12 * n)
}

// TrimTime sets hour, minute, and second to 0, resets dstFlag to Unknown,
// and normalizes, preserving the date and representation.
func (i *Instant) TrimTime() error {
	next := *i
	next.hour, next.minute, next.second = 0, 0, 0
	next.dstFlag = DSTUnknown
	if err := next.normalize(true); err != nil {
		return err
	}
	*i = next
	return nil
}

// ToExtraSummerTime and ToExtraWinterTime switch i between the two civil
// instants that share its wall time during a fall-back overlap: they flip
// dstFlag and renormalize, succeeding only if the flip actually changes
// the absolute instant (i.e. i really is inside an overlap). Both apply
// only in Local representation.
func (i *Instant) ToExtraSummerTime() error { return i.toggleDSTFold("ToExtraSummerTime") }
func (i *Instant) ToExtraWinterTime() error { return i.toggleDSTFold("ToExtraWinterTime") }

func (i *Instant) toggleDSTFold(op string) error {
	if i.representation != Local {
		return newError(op, NotApplicable, "only applicable to Local representation")
	}
	before := i.absolute
	flipped := *i
	if flipped.dstFlag == DSTOn {
		flipped.dstFlag = DSTOff
	} else {
		flipped.dstFlag = DSTOn
	}
	if err := flipped.normalize(true); err != nil {
		return err
	}
	if flipped.absolute.Equal(before) {
		return newError(op, NotApplicable, "not inside a daylight saving time overlap")
	}
	*i = flipped
	return nil
}
