// Package peak locates local maxima in an intensity array and maps them
// back to the frequencies they were sampled at.
package peak

import "errors"

// ErrLengthMismatch is returned when intensity and frequency arrays differ
// in length.
var ErrLengthMismatch = errors.New("peak: intensity and frequency length mismatch")

// Peak is a detected local maximum.
type Peak struct {
	Index     int     // position in the input arrays
	Frequency float64 // freq[Index]
	Amplitude float64 // intensity[Index]
}

// Find returns the strict local maxima of intensity: samples greater than
// both neighbors. The first and last samples are never peaks. Peaks are
// reported in ascending index order, so freq should be sorted for the result
// to be ordered by frequency. Flat or monotonic input yields no peaks.
func Find(intensity, freq []float64) ([]Peak, error) {
	if len(intensity) != len(freq) {
		return nil, ErrLengthMismatch
	}

	var peaks []Peak
	for i := 1; i < len(intensity)-1; i++ {
		if intensity[i] > intensity[i-1] && intensity[i] > intensity[i+1] {
			peaks = append(peaks, Peak{Index: i, Frequency: freq[i], Amplitude: intensity[i]})
		}
	}
	return peaks, nil
}

// Frequencies returns the frequency of each peak.
func Frequencies(peaks []Peak) []float64 {
	out := make([]float64, len(peaks))
	for i, p := range peaks {
		out[i] = p.Frequency
	}
	return out
}
