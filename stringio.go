package civiltime

import "github.com/gocivil/civiltime/localefmt"

// defaultFormatter is the locale collaborator consulted by every *FromString
// and *IntoString method below; it is package state purely so callers don't
// have to thread a Formatter through every call, mirroring defaultProvider.
var defaultFormatter localefmt.Formatter = localefmt.New(defaultClock)

// SetDateFromString parses s as a date in locale (trying locale's short
// format, its alternate format, then ISO 8601 YYYY-MM-DD) and replaces i's
// year, month, and day, preserving its time-of-day. It returns
// ErrInvalidInput if s matches none of those forms or the resulting date is
// not a valid civil time.
func (i *Instant) SetDateFromString(locale, s string) error {
	year, month, day, err := defaultFormatter.ParseDate(locale, s)
	if err != nil {
		return newError("SetDateFromString", InvalidInput, "%v", err)
	}
	return i.Set(year, Month(month), day, i.hour, i.minute, i.second)
}

// SetTimeFromString parses s as a time in locale (trying locale's short
// format, its alternate format, then ISO 8601 HH:MM:SS or HH:MM) and
// replaces i's hour, minute, and second, preserving its date. It returns
// ErrInvalidInput if s matches none of those forms.
func (i *Instant) SetTimeFromString(locale, s string) error {
	hour, minute, second, err := defaultFormatter.ParseTime(locale, s)
	if err != nil {
		return newError("SetTimeFromString", InvalidInput, "%v", err)
	}
	return i.Set(i.year, i.month, i.day, hour, minute, second)
}

// GetDateIntoString renders i's date in locale's short format. max bounds
// the result the way the original C API's char*/size_t pair did: it returns
// ErrBufferTooSmall (rather than a silently truncated string) if the
// rendered text, plus a terminator, would not fit in max bytes.
func (i Instant) GetDateIntoString(locale string, max int) (string, error) {
	s, err := defaultFormatter.FormatDate(locale, i.year, int(i.month), i.day)
	if err != nil {
		return "", newError("GetDateIntoString", InvalidInput, "%v", err)
	}
	if len(s) >= max {
		return "", newError("GetDateIntoString", BufferTooSmall,
			"formatted date %q needs %d bytes, have %d", s, len(s)+1, max)
	}
	return s, nil
}

// GetTimeIntoString renders i's time-of-day in locale's short format, with
// the same max-bytes truncation contract as GetDateIntoString.
func (i Instant) GetTimeIntoString(locale string, max int) (string, error) {
	s, err := defaultFormatter.FormatTime(locale, i.hour, i.minute, i.second)
	if err != nil {
		return "", newError("GetTimeIntoString", InvalidInput, "%v", err)
	}
	if len(s) >= max {
		return "", newError("GetTimeIntoString", BufferTooSmall,
			"formatted time %q needs %d bytes, have %d", s, len(s)+1, max)
	}
	return s, nil
}
