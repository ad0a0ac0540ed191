package civiltime

// Projection is the broken-down civil time yielded by GetInTimezone: an
// instant's absolute timeline position, reinterpreted in a different named
// zone. It does not carry a representation tag of its own - it is always a
// reading of a zone's civil time, not something arithmetic is performed on
// directly.
type Projection struct {
	Year   int
	Month  Month
	Day    int
	Hour   int
	Minute int
	Second int
	IsDST  bool
}

// GetInTimezone reinterprets i's absolute instant in targetZone, without
// mutating i.
func GetInTimezone(i Instant, targetZone string) (Projection, error) {
	provider := i.provider
	if provider == nil {
		provider = defaultProvider
	}
	res, err := provider.FromAbsolute(targetZone, i.absolute)
	if err != nil {
		return Projection{}, newError("GetInTimezone", InvalidInput, "%v", err)
	}
	y, mo, d, h, mi, s := civilFieldsFromAbsolute(res.Absolute, res.Offset)
	return Projection{
		Year: y, Month: Month(mo), Day: d,
		Hour: h, Minute: mi, Second: s,
		IsDST: res.IsDST,
	}, nil
}
