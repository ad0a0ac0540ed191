package civiltime

import "fmt"

// Weekday specifies the ISO 8601 day of the week (Monday = 1, ..., Sunday = 7).
// Not compatible with the standard library's time.Weekday (in which Sunday = 0).
type Weekday int

// The days of the week, numbered per ISO 8601.
const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("%%!Weekday(%d)", int(d))
	}
	return longDayNames[d-1]
}

var longDayNames = [7]string{
	Monday - 1:    "Monday",
	Tuesday - 1:   "Tuesday",
	Wednesday - 1: "Wednesday",
	Thursday - 1:  "Thursday",
	Friday - 1:    "Friday",
	Saturday - 1:  "Saturday",
	Sunday - 1:    "Sunday",
}

// Month specifies the month of the year (January = 1, ..., December = 12).
type Month int

// The months of the year.
const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (m Month) String() string {
	if m < January || m > December {
		return fmt.Sprintf("%%!Month(%d)", int(m))
	}
	return longMonthNames[m-1]
}

var longMonthNames = [12]string{
	January - 1:   "January",
	February - 1:  "February",
	March - 1:     "March",
	April - 1:     "April",
	May - 1:       "May",
	June - 1:      "June",
	July - 1:      "July",
	August - 1:    "August",
	September - 1: "September",
	October - 1:   "October",
	November - 1:  "November",
	December - 1:  "December",
}

var daysInMonths = [12]int{
	January - 1:   31,
	February - 1:  28,
	March - 1:     31,
	April - 1:     30,
	May - 1:       31,
	June - 1:      30,
	July - 1:      31,
	August - 1:    31,
	September - 1: 30,
	October - 1:   31,
	November - 1:  30,
	December - 1:  31,
}

// Representation distinguishes whether an Instant's broken-down fields are
// to be interpreted as civil ("wall clock") time in a named zone, or as UTC.
// The tag is display metadata only: it never changes which absolute instant
// the Instant denotes.
type Representation int

const (
	// Local indicates the Instant's fields are civil time in a named zone.
	Local Representation = iota
	// UTC indicates the Instant's fields are Coordinated Universal Time.
	UTC
)

func (r Representation) String() string {
	switch r {
	case Local:
		return "Local"
	case UTC:
		return "UTC"
	default:
		return fmt.Sprintf("%%!Representation(%d)", int(r))
	}
}

// DSTFlag records whether daylight saving time is in effect for an Instant's
// civil representation. Unknown is only ever a request to the normalizer
// ("work this out from the zone"); after normalization it is always Off or On.
type DSTFlag int

const (
	// DSTOff indicates standard time is in effect.
	DSTOff DSTFlag = iota
	// DSTOn indicates daylight saving time is in effect.
	DSTOn
	// DSTUnknown asks the normalizer to resolve DST from the zone's rules.
	DSTUnknown
)

func (f DSTFlag) String() string {
	switch f {
	case DSTOff:
		return "Off"
	case DSTOn:
		return "On"
	case DSTUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("%%!DSTFlag(%d)", int(f))
	}
}
