package civiltime

import "time"

// ToBinary returns i's absolute instant as whole seconds since the Unix
// epoch (1970-01-01T00:00:00Z) - the flat int64 encoding this library uses
// in place of the teacher's JDN+big.Int pair, which exists only to track
// sub-second precision this library is specified not to support.
func ToBinary(i Instant) int64 {
	return i.absolute.Unix()
}

// FromBinary reconstructs an Instant with the same absolute instant as
// epochSeconds, tagged Local in the default zone.
func FromBinary(epochSeconds int64) Instant {
	i := Instant{
		representation: Local,
		zone:           defaultZoneName(),
		provider:       defaultProvider,
	}
	_ = i.setFromAbsolute(time.Unix(epochSeconds, 0).UTC())
	return i
}
