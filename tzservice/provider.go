// Package tzservice is the zone service collaborator civiltime.Instant
// consults to interpret civil (wall-clock) times against IANA zone data and
// to project absolute instants back into civil fields.
//
// Providers are injected explicitly wherever a zone is needed - nothing in
// this package or its caller mutates process-global state such as the TZ
// environment variable, matching the injected-collaborator approach over a
// "current zone" global.
package tzservice

import (
	"fmt"
	"sync"
	"time"
)

// DSTFlag mirrors civiltime.DSTFlag without importing the root package,
// which would create an import cycle (civiltime imports tzservice).
type DSTFlag int

const (
	DSTOff DSTFlag = iota
	DSTOn
	DSTUnknown
)

// Kind classifies how a requested civil time maps onto the zone's timeline.
type Kind int

const (
	// Unique means exactly one absolute instant corresponds to the civil time.
	Unique Kind = iota
	// Gap means the civil time never occurred (a spring-forward transition
	// skipped over it); Absolute holds the instant reached by shifting
	// forward by the size of the gap.
	Gap
	// Overlap means the civil time occurred twice (a fall-back transition
	// repeated it); Absolute holds whichever candidate dstHint selected.
	Overlap
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "Unique"
	case Gap:
		return "Gap"
	case Overlap:
		return "Overlap"
	default:
		return fmt.Sprintf("%%!Kind(%d)", int(k))
	}
}

// CivilResult is what a Provider returns for a requested civil time: the
// absolute instant it resolved to, the offset and abbreviation in effect at
// that instant, whether DST was in effect, and how the civil time mapped
// onto the zone's timeline.
type CivilResult struct {
	Absolute time.Time
	Offset   int
	Abbrev   string
	IsDST    bool
	Kind     Kind
}

// Provider resolves civil (wall-clock) times against a named IANA zone and
// projects absolute instants back into civil fields for that zone.
type Provider interface {
	// FromCivil resolves (year, month, day, hour, min, sec) as a wall-clock
	// time in zone. dstHint disambiguates a fall-back Overlap: DSTOn selects
	// the pre-transition candidate, DSTOff the post-transition candidate,
	// DSTUnknown selects the pre-transition candidate by default since that
	// is what falls out of bracketing with the day-before offset first.
	FromCivil(zone string, year, month, day, hour, min, sec int, dstHint DSTFlag) (CivilResult, error)

	// FromAbsolute projects absolute (a UTC instant with no civil fields of
	// its own) into zone's civil representation.
	FromAbsolute(zone string, absolute time.Time) (CivilResult, error)
}

// systemProvider backs Provider with the host's IANA tzdata via the
// standard library, caching parsed *time.Location values in a sync.Map
// since loading a zone from disk is comparatively expensive and the same
// zone name is looked up repeatedly.
type systemProvider struct {
	cache sync.Map // zone name -> *time.Location
}

// System returns the default Provider, backed by the platform's IANA tzdata
// through time.LoadLocation.
func System() Provider {
	return systemInstance
}

var systemInstance = &systemProvider{}

func (p *systemProvider) location(zone string) (*time.Location, error) {
	if zone == "" {
		// "" means "the process's local zone", not UTC - the TZ-equivalent
		// "system default" the civil representation falls back to when no
		// zone was supplied explicitly.
		return time.Local, nil
	}
	if zone == "UTC" {
		return time.UTC, nil
	}
	if v, ok := p.cache.Load(zone); ok {
		return v.(*time.Location), nil
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("tzservice: load zone %q: %w", zone, err)
	}
	actual, _ := p.cache.LoadOrStore(zone, loc)
	return actual.(*time.Location), nil
}

func (p *systemProvider) FromAbsolute(zone string, absolute time.Time) (CivilResult, error) {
	loc, err := p.location(zone)
	if err != nil {
		return CivilResult{}, err
	}
	in := absolute.In(loc)
	abbrev, offset := in.Zone()
	return CivilResult{
		Absolute: absolute,
		Offset:   offset,
		Abbrev:   abbrev,
		IsDST:    isDST(in),
		Kind:     Unique,
	}, nil
}

// FromCivil resolves a wall-clock time in zone by bracketing it with the
// zone's offset one calendar day before and one calendar day after the
// requested date. Real IANA zones never schedule two transitions within 24
// hours of each other, so those two offsets are guaranteed to cover every
// offset the zone could plausibly be in at the requested wall-clock moment.
// Constructing the candidate absolute instant under each bracketing offset
// and checking whether re-projecting it through the real zone reproduces
// the requested civil fields tells us which of Unique, Gap, or Overlap
// applies, without needing any zone-internal transition table.
func (p *systemProvider) FromCivil(zone string, year, month, day, hour, min, sec int, dstHint DSTFlag) (CivilResult, error) {
	loc, err := p.location(zone)
	if err != nil {
		return CivilResult{}, err
	}

	civil := time.Date(year, time.Month(month), day, hour, min, sec, 0, time.UTC)
	before := civil.AddDate(0, 0, -1)
	after := civil.AddDate(0, 0, 1)

	_, offsetBefore := before.In(loc).Zone()
	_, offsetAfter := after.In(loc).Zone()

	candidate := func(offsetSeconds int) time.Time {
		return time.Date(year, time.Month(month), day, hour, min, sec, 0, time.FixedZone("", offsetSeconds)).UTC()
	}

	candBefore := candidate(offsetBefore)
	candAfter := candidate(offsetAfter)

	matches := func(cand time.Time) bool {
		civilBack := cand.In(loc)
		return civilBack.Year() == year && int(civilBack.Month()) == month && civilBack.Day() == day &&
			civilBack.Hour() == hour && civilBack.Minute() == min && civilBack.Second() == sec
	}

	beforeOK := matches(candBefore)
	afterOK := offsetAfter != offsetBefore && matches(candAfter)

	switch {
	case beforeOK && afterOK:
		chosen := candBefore
		if dstHint == DSTOff {
			chosen = candAfter
		}
		return p.resultFor(chosen, loc, Overlap)
	case beforeOK:
		return p.resultFor(candBefore, loc, Unique)
	case afterOK:
		return p.resultFor(candAfter, loc, Unique)
	default:
		// Gap: the wall-clock instant never existed. Shift forward by the
		// size of the gap (the difference between the bracketing offsets)
		// to land on the first real instant after the transition.
		shift := offsetBefore - offsetAfter
		if shift < 0 {
			shift = -shift
		}
		landed := candAfter.Add(time.Duration(shift) * time.Second)
		res, err := p.resultFor(landed, loc, Gap)
		return res, err
	}
}

func (p *systemProvider) resultFor(absolute time.Time, loc *time.Location, kind Kind) (CivilResult, error) {
	in := absolute.In(loc)
	abbrev, offset := in.Zone()
	return CivilResult{
		Absolute: absolute,
		Offset:   offset,
		Abbrev:   abbrev,
		IsDST:    isDST(in),
		Kind:     kind,
	}, nil
}

// isDST reports whether t's zone offset is ahead of the zone's standard
// (non-DST) offset. The standard offset is taken as the smaller of the
// offsets in effect on 1 January and 1 July of t's year - whichever of
// those two months is outside any DST period in that hemisphere - since a
// zone's standard offset is never the larger of the two.
func isDST(t time.Time) bool {
	loc := t.Location()
	year := t.Year()
	_, jan := time.Date(year, time.January, 1, 0, 0, 0, 0, loc).Zone()
	_, jul := time.Date(year, time.July, 1, 0, 0, 0, 0, loc).Zone()
	standard := jan
	if jul < standard {
		standard = jul
	}
	_, offset := t.Zone()
	return offset != standard
}
