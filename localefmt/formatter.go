// Package localefmt supplies the locale-aware parse/format primitives that
// civiltime's string constructors and accessors delegate to. It wraps
// github.com/go-playground/locales, which renders a civil date or time into
// locale-correct text but - unlike a strftime/strptime pair - never parses
// one back. ParseDate and ParseTime make up the missing half by reusing the
// same field order and separator a locale's short format renders with.
package localefmt

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/fr_FR"
)

// Clock supplies the current year two-digit-year resolution is anchored to.
// It is satisfied by civiltime.WallClock without either package importing
// the other.
type Clock interface {
	Now() time.Time
}

// Formatter is the locale collaborator civiltime.Instant's string accessors
// are built on: it knows how to render a date or time in a named locale's
// conventional short form, and how to read one back.
type Formatter interface {
	ParseDate(locale, s string) (year, month, day int, err error)
	ParseTime(locale, s string) (hour, minute, second int, err error)
	FormatDate(locale string, year, month, day int) (string, error)
	FormatTime(locale string, hour, minute, second int) (string, error)
}

// datePattern describes the field order and separator a locale's short date
// uses, derived by hand from its FmtDateShort output (go-playground/locales
// exposes no machine-readable pattern, only the rendered string).
type datePattern struct {
	order [3]byte // subset of {'Y','M','D'}, in the order fields appear
	sep   string
}

type timePattern struct {
	order      []byte // subset of {'H','M','S'}, in the order fields appear
	sep        string
	twelveHour bool
}

type localeSpec struct {
	translator locales.Translator
	datePrimary, dateAlternate datePattern
	timePrimary, timeAlternate timePattern
}

var registry = map[string]localeSpec{
	// French short forms are day-first with a four-digit year and a
	// 24-hour clock; the alternate form accepted here is also day-first,
	// with "-" as separator. Either form may carry a two-digit year.
	"fr_FR": {
		translator:    fr_FR.New(),
		datePrimary:   datePattern{order: [3]byte{'D', 'M', 'Y'}, sep: "/"},
		dateAlternate: datePattern{order: [3]byte{'D', 'M', 'Y'}, sep: "-"},
		// CLDR's "short" time format never carries seconds (that's
		// "medium"); the alternate pattern accepts a seconds field anyway,
		// for input that spells it out explicitly.
		timePrimary:   timePattern{order: []byte{'H', 'M'}, sep: ":"},
		timeAlternate: timePattern{order: []byte{'H', 'M', 'S'}, sep: ":"},
	},
	// US short forms are month-first with a 12-hour clock and an AM/PM
	// suffix; the alternate accepts an explicit seconds field.
	"en_US": {
		translator:    en_US.New(),
		datePrimary:   datePattern{order: [3]byte{'M', 'D', 'Y'}, sep: "/"},
		dateAlternate: datePattern{order: [3]byte{'Y', 'M', 'D'}, sep: "-"},
		timePrimary:   timePattern{order: []byte{'H', 'M'}, sep: ":", twelveHour: true},
		timeAlternate: timePattern{order: []byte{'H', 'M', 'S'}, sep: ":", twelveHour: true},
	},
}

type translatorFormatter struct {
	clock Clock
}

// New returns a Formatter backed by the registered go-playground/locales
// translators, using clock to anchor two-digit-year resolution to the
// current year rather than a fixed epoch.
func New(clock Clock) Formatter {
	return &translatorFormatter{clock: clock}
}

func (f *translatorFormatter) spec(locale string) (localeSpec, error) {
	spec, ok := registry[locale]
	if !ok {
		return localeSpec{}, fmt.Errorf("localefmt: unknown locale %q", locale)
	}
	return spec, nil
}

// ParseDate tries locale's primary short-date form, then its alternate
// form, then falls back to ISO 8601 (YYYY-MM-DD).
func (f *translatorFormatter) ParseDate(locale, s string) (year, month, day int, err error) {
	s = strings.TrimSpace(s)
	if spec, specErr := f.spec(locale); specErr == nil {
		currentYear := f.clock.Now().Year()
		if y, m, d, perr := parseDateWithPattern(s, spec.datePrimary, currentYear); perr == nil {
			return y, m, d, nil
		}
		if y, m, d, perr := parseDateWithPattern(s, spec.dateAlternate, currentYear); perr == nil {
			return y, m, d, nil
		}
	}
	if y, m, d, perr := parseISODate(s); perr == nil {
		return y, m, d, nil
	}
	return 0, 0, 0, fmt.Errorf("localefmt: %q does not match locale %q or ISO 8601", s, locale)
}

// ParseTime tries locale's primary short-time form, then its alternate
// form, then falls back to ISO 8601 (HH:MM:SS or HH:MM).
func (f *translatorFormatter) ParseTime(locale, s string) (hour, minute, second int, err error) {
	s = strings.TrimSpace(s)
	if spec, specErr := f.spec(locale); specErr == nil {
		if h, m, sec, perr := parseTimeWithPattern(s, spec.timePrimary); perr == nil {
			return h, m, sec, nil
		}
		if h, m, sec, perr := parseTimeWithPattern(s, spec.timeAlternate); perr == nil {
			return h, m, sec, nil
		}
	}
	if h, m, sec, perr := parseISOTime(s); perr == nil {
		return h, m, sec, nil
	}
	return 0, 0, 0, fmt.Errorf("localefmt: %q does not match locale %q or ISO 8601", s, locale)
}

// FormatDate renders year/month/day as locale's short date, via the
// vendored translator directly - this direction needs no hand-rolled layout.
func (f *translatorFormatter) FormatDate(locale string, year, month, day int) (string, error) {
	spec, err := f.spec(locale)
	if err != nil {
		return "", err
	}
	probe := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return spec.translator.FmtDateShort(probe), nil
}

// FormatTime renders hour/minute/second as locale's short time.
func (f *translatorFormatter) FormatTime(locale string, hour, minute, second int) (string, error) {
	spec, err := f.spec(locale)
	if err != nil {
		return "", err
	}
	probe := time.Date(2000, time.January, 1, hour, minute, second, 0, time.UTC)
	return spec.translator.FmtTimeShort(probe), nil
}

func parseDateWithPattern(s string, p datePattern, currentYear int) (year, month, day int, err error) {
	parts := strings.Split(s, p.sep)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 fields separated by %q", p.sep)
	}
	fields := map[byte]int{}
	rawYear := ""
	for idx, part := range parts {
		part = strings.TrimSpace(part)
		v, convErr := strconv.Atoi(part)
		if convErr != nil {
			return 0, 0, 0, convErr
		}
		field := p.order[idx]
		fields[field] = v
		if field == 'Y' {
			rawYear = part
		}
	}
	y, ok := fields['Y']
	m, mok := fields['M']
	d, dok := fields['D']
	if !ok || !mok || !dok {
		return 0, 0, 0, fmt.Errorf("pattern missing a year, month, or day field")
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, 0, fmt.Errorf("month %d or day %d out of range", m, d)
	}
	if len(rawYear) <= 2 {
		y = resolveTwoDigitYear(y, currentYear)
	}
	return y, m, d, nil
}

func parseTimeWithPattern(s string, p timePattern) (hour, minute, second int, err error) {
	pm := false
	sawPeriod := false
	if p.twelveHour {
		upper := strings.ToUpper(s)
		switch {
		case strings.HasSuffix(upper, "PM"):
			pm, sawPeriod = true, true
			s = strings.TrimSpace(s[:len(s)-2])
		case strings.HasSuffix(upper, "AM"):
			sawPeriod = true
			s = strings.TrimSpace(s[:len(s)-2])
		}
		if !sawPeriod {
			return 0, 0, 0, fmt.Errorf("expected an AM/PM suffix")
		}
	}
	parts := strings.Split(s, p.sep)
	if len(parts) != len(p.order) {
		return 0, 0, 0, fmt.Errorf("expected %d fields separated by %q", len(p.order), p.sep)
	}
	fields := map[byte]int{}
	for idx, part := range parts {
		v, convErr := strconv.Atoi(strings.TrimSpace(part))
		if convErr != nil {
			return 0, 0, 0, convErr
		}
		fields[p.order[idx]] = v
	}
	hour, hok := fields['H']
	if !hok {
		return 0, 0, 0, fmt.Errorf("pattern missing an hour field")
	}
	minute = fields['M']
	second = fields['S']
	if p.twelveHour {
		if hour == 12 {
			hour = 0
		}
		if pm {
			hour += 12
		}
	}
	return hour, minute, second, nil
}

// Anchored at both ends so a successful match consumes the whole (trimmed)
// string - fmt.Sscanf happily stops at the first unconverted byte and
// reports success, which would silently accept trailing garbage.
var (
	isoDateRe        = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	isoTimeWithSecRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2})$`)
	isoTimeRe        = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

func parseISODate(s string) (year, month, day int, err error) {
	m := isoDateRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, fmt.Errorf("not an ISO 8601 date: %q", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	return y, mo, d, nil
}

func parseISOTime(s string) (hour, minute, second int, err error) {
	if m := isoTimeWithSecRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		sec, _ := strconv.Atoi(m[3])
		return h, mi, sec, nil
	}
	if m := isoTimeRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		return h, mi, 0, nil
	}
	return 0, 0, 0, fmt.Errorf("not an ISO 8601 time: %q", s)
}

// resolveTwoDigitYear expands a two-digit year to the four-digit year of
// the same century-relative position nearest currentYear: year += round((
// currentYear - year) / 100) * 100.
func resolveTwoDigitYear(year, currentYear int) int {
	if year < 0 || year > 99 {
		return year
	}
	delta := math.Round(float64(currentYear-year) / 100.0)
	return year + int(delta)*100
}
