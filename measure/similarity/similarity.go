// Package similarity compares two spectra sampled on the same axis.
//
// The overlap is the normalized inner product
//
//	S = ∫ a·b dx / sqrt(∫ a² dx · ∫ b² dx)
//
// evaluated with the trapezoidal rule, which lies in [-1, 1] and equals 1
// for identical non-zero spectra. The sign-mismatch count is a cruder,
// qualitative measure: the number of samples where the spectra have
// opposite signs.
package similarity

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// Errors returned by similarity metrics.
var (
	ErrLengthMismatch = errors.New("similarity: spectrum and axis lengths differ")
	ErrTooFewPoints   = errors.New("similarity: at least 2 points are required")
	ErrZeroNorm       = errors.New("similarity: spectrum has zero norm")
)

// ErrorSpectrum returns reference - candidate, pointwise.
func ErrorSpectrum(reference, candidate []float64) ([]float64, error) {
	if len(reference) != len(candidate) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(reference))
	floats.SubTo(out, reference, candidate)
	return out, nil
}

// Overlap returns the normalized overlap integral of a and b over x.
// x must be increasing. ErrZeroNorm is returned when either spectrum
// integrates to zero energy.
func Overlap(x, a, b []float64) (float64, error) {
	if len(a) != len(x) || len(b) != len(x) {
		return 0, ErrLengthMismatch
	}
	if len(x) < 2 {
		return 0, ErrTooFewPoints
	}

	prod := make([]float64, len(x))

	vecmath.MulBlock(prod, a, a)
	normA := integrate.Trapezoidal(x, prod)

	vecmath.MulBlock(prod, b, b)
	normB := integrate.Trapezoidal(x, prod)

	if !(normA > 0) || !(normB > 0) {
		return 0, ErrZeroNorm
	}

	vecmath.MulBlock(prod, a, b)
	cross := integrate.Trapezoidal(x, prod)

	return cross / math.Sqrt(normA*normB), nil
}

// SignMismatches returns the number of samples where a[i]*b[i] < 0.
func SignMismatches(a, b []float64) (int, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	n := 0
	for i := range a {
		if a[i]*b[i] < 0 {
			n++
		}
	}
	return n, nil
}
