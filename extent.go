package civiltime

// Extent represents a span of time measured in seconds - the resolution this
// library is specified to operate at (sub-second resolution is out of
// scope). It is the parameter type of AddSeconds.
type Extent int64

// Common time-based spans relative to 1 second.
const (
	Second Extent = 1
	Minute        = 60 * Second
	Hour          = 60 * Minute
	Day           = 24 * Hour
)

// Seconds returns the extent as a whole number of seconds.
func (e Extent) Seconds() int64 {
	return int64(e)
}

// Minutes returns the extent as a floating point number of minutes.
func (e Extent) Minutes() float64 {
	return float64(e) / float64(Minute)
}

// Hours returns the extent as a floating point number of hours.
func (e Extent) Hours() float64 {
	return float64(e) / float64(Hour)
}
