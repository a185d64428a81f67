package freq

import "strings"

// Band is a named half-open frequency interval [Low, High) in Hz.
type Band struct {
	Name string
	Low  float64
	High float64
}

// Contains reports whether f lies in [Low, High).
func (b Band) Contains(f float64) bool {
	return f >= b.Low && f < b.High
}

// Width returns High - Low.
func (b Band) Width() float64 {
	return b.High - b.Low
}

var defaultBands = [...]Band{
	{Name: "Delta", Low: 0.5, High: 4},
	{Name: "Theta", Low: 4, High: 7.5},
	{Name: "Alpha", Low: 7.5, High: 12.5},
	{Name: "Beta", Low: 12.5, High: 20},
}

// DefaultBands returns the canonical EEG bands in ascending order.
// The returned slice is a fresh copy.
func DefaultBands() []Band {
	out := make([]Band, len(defaultBands))
	copy(out, defaultBands[:])
	return out
}

// LookupBand returns the band called name from bands, ignoring case.
func LookupBand(bands []Band, name string) (Band, bool) {
	for _, b := range bands {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Band{}, false
}
