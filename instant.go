package civiltime

import (
	"fmt"
	"os"
	"time"

	"github.com/gocivil/civiltime/tzservice"
)

// defaultProvider is the zone service consulted by constructors that are
// not given a provider explicitly. It is a package variable, not a
// constructor parameter, purely so Instant's zero-value stays usable
// without wiring - every codepath that cares about injection still goes
// through Provider, never through process-global TZ mutation.
var defaultProvider tzservice.Provider = tzservice.System()

// defaultZoneName is the zone recorded by MakeNow, MakeToday, and
// FromBinary: the TZ environment variable if set, or "" (meaning the
// host's system zone) otherwise.
func defaultZoneName() string {
	return os.Getenv("TZ")
}

// Instant is a broken-down civil time, tagged Local or UTC. The tag is
// display metadata only: it never changes the absolute instant the value
// denotes. Zero value is not meaningful; use one of the Make* constructors.
type Instant struct {
	year   int
	month  Month
	day    int
	hour   int
	minute int
	second int

	dayOfWeek Weekday
	dayOfYear int

	dstFlag          DSTFlag
	utcOffsetSeconds int
	zoneName         string
	representation   Representation

	// zone is the IANA zone identifier consulted for Local representation
	// ("" means the provider's notion of the system default zone).
	// Unexported: callers interact with it only through GetZoneName (the
	// abbreviation) and the zone-aware constructors/projections.
	zone     string
	provider tzservice.Provider
	absolute time.Time
}

// MakeNow reads the wall clock and returns an Instant tagged Local in the
// default zone.
func MakeNow() Instant {
	return makeNowWithClock(defaultClock)
}

func makeNowWithClock(clock WallClock) Instant {
	i := Instant{
		representation: Local,
		zone:           defaultZoneName(),
		provider:       defaultProvider,
	}
	_ = i.setFromAbsolute(clock.Now())
	return i
}

// MakeToday is MakeNow followed by TrimTime: same date, wall-clock zeroed.
func MakeToday() Instant {
	i := MakeNow()
	_ = i.TrimTime()
	return i
}

// MakeLocal builds an Instant tagged Local from broken-down fields in zone
// ("" selects the host's local zone, time.Local). It returns
// ErrInvalidInput if any of the six supplied fields had to change during
// normalization - an out-of-range field, an impossible date, or a wall
// time that falls in a daylight-saving-time gap.
func MakeLocal(zone string, year int, month Month, day, hour, minute, second int) (Instant, error) {
	i := Instant{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second,
		dstFlag:        DSTUnknown,
		representation: Local,
		zone:           zone,
		provider:       defaultProvider,
	}
	if err := i.normalize(false); err != nil {
		return Instant{}, err
	}
	if i.year != year || i.month != month || i.day != day ||
		i.hour != hour || i.minute != minute || i.second != second {
		return Instant{}, newError("MakeLocal", InvalidInput,
			"%04d-%02d-%02d %02d:%02d:%02d is not a valid civil time in zone %q",
			year, month, day, hour, minute, second, zone)
	}
	return i, nil
}

// MakeUTC builds an Instant tagged UTC from broken-down fields. It returns
// ErrInvalidInput if any of the six supplied fields had to change during
// normalization.
func MakeUTC(year int, month Month, day, hour, minute, second int) (Instant, error) {
	i := Instant{
		year: year, month: month, day: day,
		hour: hour, minute: minute, second: second,
		dstFlag:        DSTOff,
		representation: UTC,
	}
	if err := i.normalize(false); err != nil {
		return Instant{}, err
	}
	if i.year != year || i.month != month || i.day != day ||
		i.hour != hour || i.minute != minute || i.second != second {
		return Instant{}, newError("MakeUTC", InvalidInput,
			"%04d-%02d-%02d %02d:%02d:%02d is not a valid date/time",
			year, month, day, hour, minute, second)
	}
	return i, nil
}

// Set replaces i's broken-down fields, re-validating them the same way
// MakeLocal or MakeUTC would according to i's current representation. On
// error, i is left unchanged.
func (i *Instant) Set(year int, month Month, day, hour, minute, second int) error {
	switch i.representation {
	case UTC:
		next, err := MakeUTC(year, month, day, hour, minute, second)
		if err != nil {
			return err
		}
		*i = next
	default:
		next, err := MakeLocal(i.zone, year, month, day, hour, minute, second)
		if err != nil {
			return err
		}
		*i = next
	}
	return nil
}

// Clone returns an independent copy of i; Instant holds no pointers shared
// across copies, so this is only useful as a readability marker at call
// sites that care about "I need my own copy before mutating".
func (i Instant) Clone() Instant {
	return i
}

// String renders i in ISO 8601 extended form, with the UTC offset suffix
// ("Z" for UTC, "+HH:MM"/"-HH:MM" for Local).
func (i Instant) String() string {
	offset := "Z"
	if i.representation == Local {
		sign := "+"
		off := i.utcOffsetSeconds
		if off < 0 {
			sign = "-"
			off = -off
		}
		offset = fmt.Sprintf("%s%02d:%02d", sign, off/3600, (off%3600)/60)
	}
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s",
		i.year, i.month, i.day, i.hour, i.minute, i.second, offset)
}

func (i Instant) GetYear() int             { return i.year }
func (i Instant) GetMonth() Month          { return i.month }
func (i Instant) GetDay() int              { return i.day }
func (i Instant) GetHour() int             { return i.hour }
func (i Instant) GetMinute() int           { return i.minute }
func (i Instant) GetSecond() int           { return i.second }
func (i Instant) GetDayOfYear() int        { return i.dayOfYear }
func (i Instant) GetDayOfWeek() Weekday    { return i.dayOfWeek }
func (i Instant) GetUtcOffset() int        { return i.utcOffsetSeconds }
func (i Instant) GetZoneName() string      { return i.zoneName }
func (i Instant) GetRepresentation() Representation { return i.representation }
func (i Instant) IsUtcRepresentation() bool   { return i.representation == UTC }
func (i Instant) IsLocalRepresentation() bool { return i.representation == Local }

// GetIsoWeek returns the ISO 8601 week number (1..53) of i's date.
func (i Instant) GetIsoWeek() int {
	_, week := ISOWeek(i.year, i.month, i.day)
	return week
}

// GetIsoYear returns the ISO 8601 week-based year of i's date.
func (i Instant) GetIsoYear() int {
	year, _ := ISOWeek(i.year, i.month, i.day)
	return year
}

// GetSecondsOfDay returns the number of seconds since the start of i's
// civil day (0..86399).
func (i Instant) GetSecondsOfDay() int {
	return i.hour*3600 + i.minute*60 + i.second
}

// IsDaylightSavingTime reports whether i's civil representation currently
// observes daylight saving time.
func (i Instant) IsDaylightSavingTime() bool {
	return i.dstFlag == DSTOn
}

// IsDaylightSavingExtraSummerTime reports whether i is the pre-transition
// instant of a fall-back overlap - the repeated hour's first occurrence,
// still on summer time. True only in Local representation.
func (i Instant) IsDaylightSavingExtraSummerTime() bool {
	if i.representation != Local || i.dstFlag != DSTOn {
		return false
	}
	probe := i
	probe.dstFlag = DSTOff
	if err := probe.normalize(true); err != nil {
		return false
	}
	return probe.dstFlag == DSTOff
}

// ToUtc re-tags i as UTC representation and re-derives its broken-down
// UTC fields from its absolute instant. The representation tag is
// display metadata only: the absolute instant i denotes is unchanged, and
// ToUtc is idempotent - calling it on an Instant already tagged UTC leaves
// it as it was.
func (i *Instant) ToUtc() error {
	next := *i
	next.representation = UTC
	if err := next.setFromAbsolute(i.absolute); err != nil {
		return err
	}
	*i = next
	return nil
}

// ToLocal re-tags i as Local representation in its current zone and
// re-projects its broken-down fields from its absolute instant via C2. The
// absolute instant is unchanged, and ToLocal is idempotent - calling it on
// an Instant already tagged Local in the same zone leaves it as it was.
func (i *Instant) ToLocal() error {
	next := *i
	next.representation = Local
	if next.provider == nil {
		next.provider = defaultProvider
	}
	if err := next.setFromAbsolute(i.absolute); err != nil {
		return err
	}
	*i = next
	return nil
}

// IsDaylightSavingExtraWinterTime reports whether i is the post-transition
// instant of a fall-back overlap - the repeated hour's second occurrence,
// already on standard time. True only in Local representation.
func (i Instant) IsDaylightSavingExtraWinterTime() bool {
	if i.representation != Local || i.dstFlag != DSTOff {
		return false
	}
	probe := i
	probe.dstFlag = DSTOn
	if err := probe.normalize(true); err != nil {
		return false
	}
	return probe.dstFlag == DSTOn
}
